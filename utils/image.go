package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// MaxImageBytes caps uploads at 10 MB, matching the register form limit.
const MaxImageBytes = 10 << 20

// ErrInvalidImage marks client-side payload problems (bad encoding, wrong
// type, oversized) so handlers can answer 400 instead of 500.
var ErrInvalidImage = errors.New("invalid image")

var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
}

// DecodeImage parses a "data:<mime>;base64,<data>" payload and returns the
// raw bytes, content type and file extension.
func DecodeImage(dataURL string) ([]byte, string, string, error) {
	parts := strings.SplitN(dataURL, ",", 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:") {
		return nil, "", "", fmt.Errorf("%w: expected a base64 data URL", ErrInvalidImage)
	}

	meta := strings.TrimPrefix(parts[0], "data:")
	contentType := strings.SplitN(meta, ";", 2)[0]

	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return nil, "", "", fmt.Errorf("%w: only PNG and JPG are supported", ErrInvalidImage)
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", "", fmt.Errorf("%w: failed to decode: %v", ErrInvalidImage, err)
	}
	if len(data) > MaxImageBytes {
		return nil, "", "", fmt.Errorf("%w: file exceeds 10 MB", ErrInvalidImage)
	}

	return data, contentType, ext, nil
}
