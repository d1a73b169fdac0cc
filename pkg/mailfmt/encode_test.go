package mailfmt

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	assert.Equal(t, "", Encode(""))
	assert.Equal(t, "YQ==", Encode("a"))
	assert.Equal(t, "aGVsbG8=", Encode("hello"))
}

func TestEncodeRoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"ab",
		"abc",
		"Hello, World!",
		"héllo wörld",
		"line1\nline2\r\nline3",
		"日本語テキスト",
	}
	for _, in := range inputs {
		decoded, err := base64.StdEncoding.DecodeString(Encode(in))
		require.NoError(t, err)
		assert.Equal(t, in, string(decoded))
	}
}

func TestEncodeDistinctInputs(t *testing.T) {
	assert.NotEqual(t, Encode("a"), Encode("b"))
	assert.NotEqual(t, Encode("ab"), Encode("ba"))
}

func TestEncodeInvalidUTF8(t *testing.T) {
	// A lone 0xff byte is coerced to U+FFFD before encoding.
	assert.Equal(t, "77+9", Encode("\xff"))
}
