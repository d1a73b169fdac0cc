package mailfmt

import (
	"encoding/base64"

	"golang.org/x/text/encoding/unicode"
)

// Encode returns the standard base64 encoding of text, padded. Input that
// is not valid UTF-8 is coerced first, invalid bytes become U+FFFD. Empty
// input yields an empty string. No line wrapping is applied.
func Encode(text string) string {
	if text == "" {
		return ""
	}
	clean, err := unicode.UTF8.NewDecoder().String(text)
	if err != nil {
		clean = text
	}
	return base64.StdEncoding.EncodeToString([]byte(clean))
}
