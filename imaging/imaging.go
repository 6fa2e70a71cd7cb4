// Package imaging normalizes uploaded scan images for analysis: it sniffs and
// decodes the common scanner formats and re-encodes everything to PNG so
// providers see a single input format.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	// Scanner formats beyond the stdlib set register their sniffers on import.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/delamyth/timecard/analyze"
)

// Normalized is a decoded upload re-encoded for the analyzer.
type Normalized struct {
	// PNG is the re-encoded payload handed to the analysis provider.
	PNG []byte
	// SourceFormat is the sniffed format of the original upload ("png",
	// "jpeg", "tiff", "bmp").
	SourceFormat string
	// Width and Height are the pixel dimensions of the decoded image.
	Width  int
	Height int
}

// Normalize decodes an uploaded image and re-encodes it to PNG. Payloads that
// do not decode as a supported image are rejected before any analyzer runs.
func Normalize(data []byte) (Normalized, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Normalized{}, fmt.Errorf("decode upload: %w", err)
	}
	bounds := img.Bounds()
	out := Normalized{
		SourceFormat: format,
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
	}
	if format == "png" {
		// Already in the target format; keep the original bytes.
		out.PNG = data
		return out, nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Normalized{}, fmt.Errorf("encode png: %w", err)
	}
	out.PNG = buf.Bytes()
	return out, nil
}

// ToInput wraps a normalized image as an analysis input.
func ToInput(id string, n Normalized, opts ...analyze.InputOption) analyze.Input {
	return analyze.NewInput(id, n.PNG, analyze.ImageFormatPNG, opts...)
}
