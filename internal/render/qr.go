package render

import (
	"image"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// EncodeQR generates a QR symbol for the payload scaled to a square raster
// of the given pixel size. Scaling fails when the target is smaller than
// the module count; callers treat any error as a blank symbol.
func EncodeQR(payload string, sizePx int) (image.Image, error) {
	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return nil, err
	}

	scaled, err := barcode.Scale(code, sizePx, sizePx)
	if err != nil {
		return nil, err
	}
	return scaled, nil
}
