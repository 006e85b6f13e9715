package stego

import (
	"errors"
	"testing"
)

func TestRegistry(t *testing.T) {
	for _, id := range []uint8{METHOD_EMOJI, METHOD_HOMOGLYPH} {
		codec, err := Get(id)
		if err != nil {
			t.Fatalf("Get(0x%02x) failed: %v", id, err)
		}
		if codec.Method() != id {
			t.Errorf("Get(0x%02x) returned codec with method 0x%02x", id, codec.Method())
		}
		if codec.Name() != MethodName(id) {
			t.Errorf("codec name %q does not match MethodName %q", codec.Name(), MethodName(id))
		}
	}

	_, err := Get(0xFF)
	if !errors.Is(err, ErrMethodNotImplemented) {
		t.Errorf("Get(0xFF) error = %v, want ErrMethodNotImplemented", err)
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected uint8
		wantErr  bool
	}{
		{name: "emoji", input: "emoji", expected: METHOD_EMOJI},
		{name: "homoglyph", input: "homoglyph", expected: METHOD_HOMOGLYPH},
		{name: "case insensitive", input: "EMOJI", expected: METHOD_EMOJI},
		{name: "surrounding whitespace", input: " homoglyph ", expected: METHOD_HOMOGLYPH},
		{name: "unknown", input: "morse", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseMethod(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrMethodNotImplemented) {
					t.Errorf("ParseMethod(%q) error = %v, want ErrMethodNotImplemented", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMethod(%q) unexpected error: %v", tt.input, err)
			}
			if id != tt.expected {
				t.Errorf("ParseMethod(%q) = 0x%02x, want 0x%02x", tt.input, id, tt.expected)
			}
		})
	}
}

func TestMethodNames(t *testing.T) {
	names := MethodNames()
	if len(names) != 2 {
		t.Fatalf("MethodNames() = %v, want two entries", names)
	}
	for _, name := range names {
		if _, err := ParseMethod(name); err != nil {
			t.Errorf("MethodNames entry %q does not parse: %v", name, err)
		}
	}
}
