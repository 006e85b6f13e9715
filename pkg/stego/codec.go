package stego

import (
	"fmt"
	"sort"
	"strings"
)

// Method constants matching the Rust/Python implementations
const (
	// No method - reserved
	METHOD_NONE = 0x00

	// Invisible-payload methods (0x01-0x0F)
	METHOD_EMOJI = 0x01 // Variation selectors appended to one cover character

	// Look-alike methods (0x10-0x1F)
	METHOD_HOMOGLYPH = 0x10 // Confusable substitution across a cover text
)

// Codec represents a single steganographic text codec
type Codec interface {
	// Method returns the method identifier (e.g., METHOD_EMOJI)
	Method() uint8

	// Name returns the human-readable name
	Name() string

	// Encode hides message inside cover and returns the carrier text
	Encode(message []byte, cover string) (string, error)

	// Decode recovers the hidden message bytes from carrier text
	Decode(text string) ([]byte, error)

	// EstimateCapacity returns how many message bytes the cover can
	// carry, or -1 when the method has no capacity limit
	EstimateCapacity(cover string) int
}

// BaseCodec provides common functionality for codecs
type BaseCodec struct {
	MethodID   uint8
	MethodName string
}

func (c *BaseCodec) Method() uint8 {
	return c.MethodID
}

func (c *BaseCodec) Name() string {
	return c.MethodName
}

func (c *BaseCodec) EstimateCapacity(cover string) int {
	return -1 // Default: unbounded
}

// Registry maps method IDs to codec implementations
var Registry = make(map[uint8]Codec)

// Register registers a codec implementation
func Register(c Codec) {
	Registry[c.Method()] = c
}

// Get retrieves a codec by method ID
func Get(id uint8) (Codec, error) {
	c, ok := Registry[id]
	if !ok {
		return nil, fmt.Errorf("method 0x%02x: %w", id, ErrMethodNotImplemented)
	}
	return c, nil
}

// Named methods for parsing
var namedMethods = map[string]uint8{
	"emoji":     METHOD_EMOJI,
	"homoglyph": METHOD_HOMOGLYPH,
}

// ParseMethod parses a method name to its ID
func ParseMethod(name string) (uint8, error) {
	id, ok := namedMethods[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return METHOD_NONE, fmt.Errorf("unknown method %q (known: %s): %w",
			name, strings.Join(MethodNames(), ", "), ErrMethodNotImplemented)
	}
	return id, nil
}

// MethodName returns the name of a method by ID
func MethodName(id uint8) string {
	switch id {
	case METHOD_NONE:
		return "none"
	case METHOD_EMOJI:
		return "emoji"
	case METHOD_HOMOGLYPH:
		return "homoglyph"
	default:
		return fmt.Sprintf("unknown_%02x", id)
	}
}

// MethodNames returns the parseable method names, sorted
func MethodNames() []string {
	names := make([]string, 0, len(namedMethods))
	for name := range namedMethods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
