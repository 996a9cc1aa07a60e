// Package proof prepares proof-of-shipment images for upload: oversized
// photos straight off a phone camera are downscaled and re-encoded before
// they hit the wire.
package proof

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/payingzee/sellerpanel/internal/model"
)

const (
	maxWidth    = 800
	jpegQuality = 80
)

var ErrUnsupportedFormat = errors.New("unsupported image format, use JPEG or PNG")

// Prepare decodes one uploaded image, downscales it to at most maxWidth
// pixels wide and re-encodes it as JPEG under a fresh UUID filename.
func Prepare(r io.Reader, filename string) (model.ProofImage, error) {
	var img image.Image
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		img, err = png.Decode(r)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(r)
	default:
		return model.ProofImage{}, ErrUnsupportedFormat
	}
	if err != nil {
		return model.ProofImage{}, fmt.Errorf("decode %s: %w", filename, err)
	}

	if img.Bounds().Dx() > maxWidth {
		img = resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return model.ProofImage{}, fmt.Errorf("encode %s: %w", filename, err)
	}

	return model.ProofImage{
		Filename: uuid.New().String() + ".jpg",
		Data:     buf.Bytes(),
	}, nil
}
