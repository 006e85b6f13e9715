package bitio

import (
	"bytes"
	"testing"
)

func TestUnpack(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []bool
	}{
		{
			name:     "empty",
			input:    []byte{},
			expected: []bool{},
		},
		{
			name:     "zero byte",
			input:    []byte{0x00},
			expected: []bool{false, false, false, false, false, false, false, false},
		},
		{
			name:     "one is LSB-first",
			input:    []byte{0x01},
			expected: []bool{true, false, false, false, false, false, false, false},
		},
		{
			name:     "high bit lands last",
			input:    []byte{0x80},
			expected: []bool{false, false, false, false, false, false, false, true},
		},
		{
			name:  "letter A",
			input: []byte{'A'}, // 0x41
			expected: []bool{
				true, false, false, false, false, false, true, false,
			},
		},
		{
			name:  "byte order preserved",
			input: []byte{0x01, 0x02},
			expected: []bool{
				true, false, false, false, false, false, false, false,
				false, true, false, false, false, false, false, false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Unpack(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("Unpack(%v) has %d bits, want %d", tt.input, len(result), len(tt.expected))
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("Unpack(%v)[%d] = %v, want %v", tt.input, i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestPack_TruncatesPartialByte(t *testing.T) {
	tests := []struct {
		name     string
		input    []bool
		expected []byte
	}{
		{
			name:     "empty",
			input:    []bool{},
			expected: []byte{},
		},
		{
			name:     "fewer than eight bits yields nothing",
			input:    []bool{true, true, true},
			expected: []byte{},
		},
		{
			name:     "exactly one byte",
			input:    []bool{true, false, false, false, false, false, false, false},
			expected: []byte{0x01},
		},
		{
			name: "nine bits drops the ninth",
			input: []bool{
				true, false, false, false, false, false, false, false,
				true,
			},
			expected: []byte{0x01},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Pack(tt.input)
			if !bytes.Equal(result, tt.expected) {
				t.Errorf("Pack(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0xFF},
		[]byte("Hello world"),
		bytes.Repeat([]byte{0xA5}, 1024),
	}

	for _, input := range inputs {
		result := Pack(Unpack(input))
		if !bytes.Equal(result, input) {
			t.Errorf("roundtrip failed: %v -> %v", input, result)
		}
	}
}
