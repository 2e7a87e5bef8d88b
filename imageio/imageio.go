// Package imageio decodes and re-encodes exported view images. The host
// application writes BMP/PNG/JPG/TIFF natively; this package covers format
// conversion for everything else (WebP output, TGA input).
package imageio

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"goinvent/viewstyle"
)

const jpegQuality = 90

// Decode reads an image file (png, jpg, bmp, tif, tga; webp is not
// decodable). The codec is picked by file extension: the TGA format has no
// magic bytes, so content sniffing cannot tell it apart from the others.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err = png.Decode(f)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(f)
	case ".bmp":
		img, err = bmp.Decode(f)
	case ".tif", ".tiff":
		img, err = tiff.Decode(f)
	case ".tga":
		img, err = tga.Decode(f)
	default:
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return img, nil
}

// Encode writes an image file in the given format.
func Encode(path string, img image.Image, format viewstyle.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case viewstyle.PNG:
		err = png.Encode(f, img)
	case viewstyle.JPG:
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
	case viewstyle.BMP:
		err = bmp.Encode(f, img)
	case viewstyle.TIF:
		err = tiff.Encode(f, img, nil)
	case viewstyle.WebP:
		err = nativewebp.Encode(f, toNRGBA(img), nil)
	default:
		return fmt.Errorf("imageio: unsupported encode format %q", string(format))
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	return nil
}

// Convert decodes src and writes it to dst in the given format.
func Convert(src, dst string, format viewstyle.Format) error {
	img, err := Decode(src)
	if err != nil {
		return err
	}
	return Encode(dst, img, format)
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}
