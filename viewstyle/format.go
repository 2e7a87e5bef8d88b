package viewstyle

import (
	"fmt"
	"strings"
)

// Format is a raster image output format for view export.
type Format string

const (
	PNG  Format = "png"
	JPG  Format = "jpg"
	BMP  Format = "bmp"
	TIF  Format = "tif"
	WebP Format = "webp"
)

// ParseFormat normalizes a format name or file extension ("JPEG", ".tiff")
// to a canonical Format.
func ParseFormat(name string) (Format, error) {
	f := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	switch f {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIF, nil
	case "webp":
		return WebP, nil
	}
	return "", fmt.Errorf("viewstyle: unsupported image format %q (valid: png, jpg, bmp, tif, webp)", name)
}

// HostNative reports whether the host application can write the format
// directly from its view export. Non-native formats are exported as BMP and
// transcoded afterwards.
func (f Format) HostNative() bool {
	return f != WebP
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}
