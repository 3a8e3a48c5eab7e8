package workers

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedKind is returned for an image kind no codec handles.
var ErrUnsupportedKind = errors.New("unsupported image kind")

// NormalizeKind maps a file type as sent by clients (".png", "JPG", "tif")
// to a codec name.
func NormalizeKind(kind string) string {
	k := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(kind)), ".")
	switch k {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	}
	return k
}

// Decode decodes img. The format is sniffed from the data; kind is only
// used to report errors.
func Decode(img []byte, kind string) (image.Image, error) {
	r := bytes.NewReader(img)
	_, format, err := image.DecodeConfig(r)
	if err != nil {
		return nil, errors.Wrapf(err, "detect %s image", NormalizeKind(kind))
	}
	r.Reset(img)

	var out image.Image
	switch format {
	case "jpeg":
		out, err = jpeg.Decode(r)
	case "png":
		out, err = png.Decode(r)
	case "gif":
		out, err = gif.Decode(r)
	case "bmp":
		out, err = bmp.Decode(r)
	case "tiff":
		out, err = tiff.Decode(r)
	default:
		out, _, err = image.Decode(r)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s image", format)
	}
	return out, nil
}

// Encode encodes img as kind. An empty kind means png.
func Encode(img image.Image, kind string) ([]byte, error) {
	var (
		buf bytes.Buffer
		err error
	)
	switch NormalizeKind(kind) {
	case "png", "":
		err = png.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	case "gif":
		err = gif.Encode(&buf, img, &gif.Options{NumColors: 256})
	case "bmp":
		err = bmp.Encode(&buf, img)
	case "tiff":
		err = tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return nil, errors.Wrap(ErrUnsupportedKind, kind)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s image", NormalizeKind(kind))
	}
	return buf.Bytes(), nil
}
