// Package qrcode renders QR codes as PNG images.
package qrcode

import (
	"fmt"

	"github.com/pkg/errors"
	goqrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultScale = 20
	MaxScale     = 40
)

// ErrInvalidInput marks failures caused by the caller's text or scale.
var ErrInvalidInput = errors.New("invalid qr code input")

// RenderPNG encodes text with error correction level Q (25% recovery).
// scale is the width in pixels of one module.
func RenderPNG(text string, scale int) ([]byte, error) {
	if scale < 1 || scale > MaxScale {
		return nil, fmt.Errorf("%w: scale must be between 1 and %d, got %d", ErrInvalidInput, MaxScale, scale)
	}

	// go-qrcode only fails to encode when text exceeds the symbol capacity.
	code, err := goqrcode.New(text, goqrcode.High)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	// A negative size is interpreted as pixels per module.
	png, err := code.PNG(-scale)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render qr code")
	}
	return png, nil
}
