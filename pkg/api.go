package pkg

import (
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"

	"github.com/unistego/unistego/pkg/stego"
)

// Encode hides text inside cover using the given method and returns
// the carrier text.
func Encode(method uint8, text, cover string) (string, error) {
	return EncodeWithLogger(method, text, cover, hclog.NewNullLogger())
}

// Decode recovers the hidden message from carrier text. Recovered
// bytes that do not form valid UTF-8 are replaced with the
// substitution character rather than reported as an error.
func Decode(method uint8, text string) (string, error) {
	return DecodeWithLogger(method, text, hclog.NewNullLogger())
}

// EncodeWithLogger is Encode with caller-supplied logging. The codecs
// themselves never log; all observability lives at this layer.
func EncodeWithLogger(method uint8, text, cover string, logger hclog.Logger) (string, error) {
	codec, err := stego.Get(method)
	if err != nil {
		return "", err
	}

	logger.Debug("🫥 Encoding message",
		"method", codec.Name(),
		"message_bytes", len(text),
		"cover_chars", utf8.RuneCountInString(cover),
	)

	out, err := codec.Encode([]byte(text), cover)
	if err != nil {
		logger.Error("❌ Encoding failed", "method", codec.Name(), "error", err)
		return "", err
	}

	return out, nil
}

// DecodeWithLogger is Decode with caller-supplied logging.
func DecodeWithLogger(method uint8, text string, logger hclog.Logger) (string, error) {
	codec, err := stego.Get(method)
	if err != nil {
		return "", err
	}

	recovered, err := codec.Decode(text)
	if err != nil {
		logger.Error("❌ Decoding failed", "method", codec.Name(), "error", err)
		return "", err
	}

	logger.Debug("🔎 Decoded message",
		"method", codec.Name(),
		"recovered_bytes", len(recovered),
		"valid_utf8", utf8.Valid(recovered),
	)

	return strings.ToValidUTF8(string(recovered), "�"), nil
}

// EstimateCapacity reports how many message bytes the cover can carry
// under the given method, or -1 when the method is unbounded.
func EstimateCapacity(method uint8, cover string) (int, error) {
	codec, err := stego.Get(method)
	if err != nil {
		return 0, err
	}
	return codec.EstimateCapacity(cover), nil
}
