package qrcode

import (
	"encoding/base64"
	"fmt"

	goqrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	MinSize     = 64
	MaxSize     = 1024
)

// PNG encodes data as a QR code image of size x size pixels.
func PNG(data string, size int) ([]byte, error) {
	if data == "" {
		return nil, fmt.Errorf("qrcode: empty content")
	}
	png, err := goqrcode.Encode(data, goqrcode.Medium, ClampSize(size))
	if err != nil {
		return nil, fmt.Errorf("qrcode: %w", err)
	}
	return png, nil
}

// DataURL is PNG as an inline data: URL for <img src>.
func DataURL(data string, size int) (string, error) {
	png, err := PNG(data, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func ClampSize(size int) int {
	switch {
	case size <= 0:
		return DefaultSize
	case size < MinSize:
		return MinSize
	case size > MaxSize:
		return MaxSize
	}
	return size
}
