package artwork

import (
	qrcode "github.com/skip2/go-qrcode"
)

// ScanCode renders text as a QR code PNG and returns it as a data URI,
// ready for placement on a poster.
func ScanCode(text string, size int) (string, error) {
	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return "", err
	}
	return EncodeDataURI("image/png", pngBytes), nil
}
