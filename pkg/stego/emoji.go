package stego

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

func init() {
	// Register emoji codec on package init
	Register(NewEmojiCodec())
}

// Variation selector code point ranges. The two ranges together hold
// exactly 256 code points, one per byte value; all of them render
// invisibly after a preceding character.
const (
	variationSelectorStart uint32 = 0xFE00 // VS1..VS16, bytes 0-15
	variationSelectorEnd   uint32 = 0xFE0F

	variationSelectorSupplementStart uint32 = 0xE0100 // VS17..VS256, bytes 16-255
	variationSelectorSupplementEnd   uint32 = 0xE01EF
)

// EmojiCodec hides message bytes as Unicode variation selectors
// appended to a single visible cover character.
type EmojiCodec struct {
	BaseCodec
}

// NewEmojiCodec creates a new emoji codec
func NewEmojiCodec() *EmojiCodec {
	return &EmojiCodec{
		BaseCodec: BaseCodec{
			MethodID:   METHOD_EMOJI,
			MethodName: "emoji",
		},
	}
}

// Encode appends one variation selector per message byte after the
// cover character. The cover must be exactly one character long;
// the message may be any length, including empty.
func (c *EmojiCodec) Encode(message []byte, cover string) (string, error) {
	if utf8.RuneCountInString(cover) != 1 {
		return "", ErrInvalidCover
	}

	var sb strings.Builder
	sb.Grow(len(cover) + len(message)*4)
	sb.WriteString(cover)

	for _, b := range message {
		r, err := selectorForByte(b)
		if err != nil {
			return "", err
		}
		sb.WriteRune(r)
	}

	return sb.String(), nil
}

// Decode scans text for variation selectors and maps each one back to
// its byte. Every other character, the cover included, is skipped.
// Decode never fails.
func (c *EmojiCodec) Decode(text string) ([]byte, error) {
	buffer := make([]byte, 0, len(text)/4)
	for _, r := range text {
		if b, ok := byteForSelector(r); ok {
			buffer = append(buffer, b)
		}
	}
	return buffer, nil
}

// selectorForByte maps a byte to its variation selector. Bytes 0-15
// land in the BMP range, 16-255 in the supplement. The arithmetic can
// only produce code points inside the two reserved ranges, so a
// ValidRune failure means the constants themselves are broken.
func selectorForByte(b byte) (rune, error) {
	var codePoint uint32
	if b < 16 {
		codePoint = variationSelectorStart + uint32(b)
	} else {
		codePoint = variationSelectorSupplementStart + uint32(b) - 16
	}

	r := rune(codePoint)
	if !utf8.ValidRune(r) {
		return 0, fmt.Errorf("byte 0x%02x maps to invalid code point U+%04X", b, codePoint)
	}
	return r, nil
}

// byteForSelector reverses selectorForByte. Reports false for any
// rune outside the two reserved ranges.
func byteForSelector(r rune) (byte, bool) {
	codePoint := uint32(r)
	switch {
	case codePoint >= variationSelectorStart && codePoint <= variationSelectorEnd:
		return byte(codePoint - variationSelectorStart), true
	case codePoint >= variationSelectorSupplementStart && codePoint <= variationSelectorSupplementEnd:
		return byte(codePoint - variationSelectorSupplementStart + 16), true
	default:
		return 0, false
	}
}
