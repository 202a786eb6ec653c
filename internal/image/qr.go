package imagepkg

import (
	qrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultQRSize = 400
	MaxQRSize     = 2048
)

// GenerateQRPNG returns PNG bytes of a QR code for the given text. Sizes
// outside (0, MaxQRSize] fall back to DefaultQRSize.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	if size <= 0 || size > MaxQRSize {
		size = DefaultQRSize
	}
	return qrcode.Encode(text, qrcode.Medium, size)
}
