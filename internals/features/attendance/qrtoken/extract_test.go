package qrtoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractValue(t *testing.T) {
	assert.Equal(t, "abc", ExtractValue(" abc "))
	assert.Equal(t, "abc", ExtractValue("https://x.test/scan?token=abc"))
	assert.Equal(t, "https://x.test/scan", ExtractValue("https://x.test/scan"))
}

func TestContent(t *testing.T) {
	tok := Token{Value: "abc"}
	assert.Equal(t, "abc", Content("", tok))
	assert.Equal(t, "https://x.test/scan?token=abc", Content("https://x.test/scan", tok))
	assert.Equal(t, "https://x.test/scan?src=qr&token=abc", Content("https://x.test/scan?src=qr", tok))
}
