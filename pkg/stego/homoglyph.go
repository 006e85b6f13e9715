package stego

import (
	"strings"

	"github.com/unistego/unistego/internal/bitio"
)

func init() {
	// Register homoglyph codec on package init
	Register(NewHomoglyphCodec())
}

// homoglyphs maps each base character to its visually near-identical
// look-alike. The exact pairs are load-bearing: text encoded by one
// implementation must decode under another, so these scalar values
// must never change. The map is injective and its domain and codomain
// are disjoint.
var homoglyphs = map[rune]rune{
	'\u002d': '\u2010', // hyphen-minus -> hyphen
	'\u003b': '\u037e', // semicolon -> Greek question mark
	'\u0043': '\u216d', // C -> Roman numeral one hundred
	'\u0044': '\u216e', // D -> Roman numeral five hundred
	'\u004b': '\u212a', // K -> Kelvin sign
	'\u004c': '\u216c', // L -> Roman numeral fifty
	'\u004d': '\u216f', // M -> Roman numeral one thousand
	'\u0056': '\u2164', // V -> Roman numeral five
	'\u0058': '\u2169', // X -> Roman numeral ten
	'\u0063': '\u217d', // c -> small Roman numeral one hundred
	'\u0064': '\u217e', // d -> small Roman numeral five hundred
	'\u0069': '\u2170', // i -> small Roman numeral one
	'\u006a': '\u0458', // j -> Cyrillic je
	'\u006c': '\u217c', // l -> small Roman numeral fifty
	'\u0076': '\u2174', // v -> small Roman numeral five
	'\u0078': '\u2179', // x -> small Roman numeral ten
}

// lookalikes is the reverse mapping, built once at init. Membership
// in either map decides whether a character carries a bit.
var lookalikes = make(map[rune]rune, len(homoglyphs))

func init() {
	for base, glyph := range homoglyphs {
		lookalikes[glyph] = base
	}
}

// HomoglyphCodec hides message bits by substituting look-alike
// characters for eligible characters of a cover text, one bit per
// eligible character.
type HomoglyphCodec struct {
	BaseCodec
}

// NewHomoglyphCodec creates a new homoglyph codec
func NewHomoglyphCodec() *HomoglyphCodec {
	return &HomoglyphCodec{
		BaseCodec: BaseCodec{
			MethodID:   METHOD_HOMOGLYPH,
			MethodName: "homoglyph",
		},
	}
}

// Encode walks the cover character by character. An eligible character
// consumes the next pending message bit: the look-alike stands for 1,
// the base character for 0. Ineligible characters pass through
// untouched. If bits remain once the cover is exhausted, Encode fails
// with a *CapacityError and no output.
func (c *HomoglyphCodec) Encode(message []byte, cover string) (string, error) {
	bits := bitio.Unpack(message)
	required := len(bits)

	var sb strings.Builder
	sb.Grow(len(cover))

	hidden := 0
	for _, r := range cover {
		if hidden < len(bits) {
			if glyph, ok := homoglyphs[r]; ok {
				if bits[hidden] {
					sb.WriteRune(glyph)
				} else {
					sb.WriteRune(r)
				}
				hidden++
				continue
			}
		}
		sb.WriteRune(r)
	}

	if hidden < required {
		return "", &CapacityError{
			Hidden:    hidden,
			Required:  required,
			Remaining: required - hidden,
		}
	}

	return sb.String(), nil
}

// Decode classifies each character of text against the homoglyph
// table: a base character yields a 0 bit, a look-alike a 1 bit, and
// anything else is skipped. Bits are packed LSB-first; a trailing
// group of fewer than 8 bits is truncated (see bitio.Pack). Decode
// never fails.
func (c *HomoglyphCodec) Decode(text string) ([]byte, error) {
	bits := make([]bool, 0, len(text))
	for _, r := range text {
		if _, ok := homoglyphs[r]; ok {
			bits = append(bits, false)
		} else if _, ok := lookalikes[r]; ok {
			bits = append(bits, true)
		}
	}
	return bitio.Pack(bits), nil
}

// EstimateCapacity counts eligible characters in the cover and
// reports how many whole message bytes they can carry.
func (c *HomoglyphCodec) EstimateCapacity(cover string) int {
	eligible := 0
	for _, r := range cover {
		if _, ok := homoglyphs[r]; ok {
			eligible++
		}
	}
	return eligible / 8
}
