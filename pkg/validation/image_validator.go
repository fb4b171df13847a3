package validation

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	apperrors "go-jobpost-verifier/internal/errors"
)

// magic prefixes of the accepted upload formats
var imageSignatures = [][]byte{
	{0xFF, 0xD8, 0xFF},                   // JPEG
	{0x89, 0x50, 0x4E, 0x47},             // PNG
	{0x47, 0x49, 0x46, 0x38},             // GIF
	{0x42, 0x4D},                         // BMP
	{0x52, 0x49, 0x46, 0x46},             // WEBP (RIFF)
}

// ImageValidator checks that uploaded bytes are a decodable image
type ImageValidator struct {
	maxBytes int64
}

func NewImageValidator(maxBytes int64) *ImageValidator {
	return &ImageValidator{maxBytes: maxBytes}
}

// ValidateImageData rejects empty, oversized or non-image payloads. It
// verifies both the magic bytes and that the standard decoders accept the
// header, without decoding full pixel data.
func (v *ImageValidator) ValidateImageData(data []byte) error {
	if len(data) == 0 {
		return apperrors.NewInvalidImageError("Image data is empty", nil)
	}
	if v.maxBytes > 0 && int64(len(data)) > v.maxBytes {
		return apperrors.NewInvalidImageError("Image data exceeds the size limit", nil)
	}
	if !hasImageSignature(data) {
		return apperrors.NewInvalidImageError("Data does not look like a supported image format", nil)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return apperrors.NewInvalidImageError("Image header could not be parsed", err)
	}
	return nil
}

func hasImageSignature(data []byte) bool {
	for _, sig := range imageSignatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}
