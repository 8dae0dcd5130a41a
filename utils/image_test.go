package utils

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataURL(contentType string, payload []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(payload)
}

func TestDecodeImagePNG(t *testing.T) {
	raw := []byte("png bytes")
	data, contentType, ext, err := DecodeImage(dataURL("image/png", raw))
	require.NoError(t, err)
	assert.Equal(t, raw, data)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, ".png", ext)
}

func TestDecodeImageJPEG(t *testing.T) {
	_, contentType, ext, err := DecodeImage(dataURL("image/jpeg", []byte("jpg")))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
	assert.Equal(t, ".jpg", ext)
}

func TestDecodeImageRejectsUnsupportedType(t *testing.T) {
	_, _, _, err := DecodeImage(dataURL("image/gif", []byte("gif")))
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	for _, input := range []string{
		"",
		"not a data url",
		"data:image/png;base64,%%%not-base64%%%",
	} {
		_, _, _, err := DecodeImage(input)
		assert.ErrorIs(t, err, ErrInvalidImage, "input %q", input)
	}
}

func TestDecodeImageRejectsOversized(t *testing.T) {
	big := bytes.Repeat([]byte{0xFF}, MaxImageBytes+1)
	_, _, _, err := DecodeImage(dataURL("image/png", big))
	assert.ErrorIs(t, err, ErrInvalidImage)
}
