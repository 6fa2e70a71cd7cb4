// Package tesseract provides a local document analyzer backed by the
// gosseract client. Recognized words are clustered geometrically into lines
// and a table grid, yielding the same block graph shape a cloud
// table-detection service would emit.
package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/google/uuid"
	"github.com/otiai10/gosseract/v2"

	"github.com/delamyth/timecard/analyze"
)

func init() {
	analyze.SetDefaultAnalyzer(NewAnalyzer())
}

// Analyzer implements analyze.Analyzer and analyze.BatchAnalyzer using the
// gosseract client as the OCR provider.
type Analyzer struct {
	clientFactory func() *gosseract.Client
	newID         func() string
}

// NewAnalyzer constructs a Tesseract-backed document analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		clientFactory: gosseract.NewClient,
		newID:         uuid.NewString,
	}
}

func (a *Analyzer) Name() string { return "tesseract" }

// Analyze performs OCR and grid synthesis on a single input.
func (a *Analyzer) Analyze(ctx context.Context, in analyze.Input) (analyze.Analysis, error) {
	c := a.clientFactory()
	defer c.Close()
	return a.analyzeWithClient(ctx, c, in)
}

// AnalyzeBatch processes multiple inputs sequentially, one client per input.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, inputs []analyze.Input) ([]analyze.Analysis, error) {
	results := make([]analyze.Analysis, 0, len(inputs))
	for _, in := range inputs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		c := a.clientFactory()
		res, err := a.analyzeWithClient(ctx, c, in)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("analyze %s: %w", in.ID, err)
		}
		c.Close()
		results = append(results, res)
	}
	return results, nil
}

func (a *Analyzer) analyzeWithClient(ctx context.Context, c *gosseract.Client, in analyze.Input) (analyze.Analysis, error) {
	imgData, err := cropImage(in.Image, in.Region)
	if err != nil {
		return analyze.Analysis{}, err
	}
	if err := c.SetImageFromBytes(imgData); err != nil {
		return analyze.Analysis{}, fmt.Errorf("set image: %w", err)
	}
	if len(in.Languages) > 0 {
		if err := c.SetLanguage(in.Languages...); err != nil {
			return analyze.Analysis{}, fmt.Errorf("set languages: %w", err)
		}
	}
	if in.DPI > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(in.DPI)); err != nil {
			return analyze.Analysis{}, fmt.Errorf("set dpi: %w", err)
		}
	}
	for k, v := range in.Metadata {
		if err := c.SetVariable(gosseract.SettableVariable(k), v); err != nil {
			return analyze.Analysis{}, fmt.Errorf("set variable %s: %w", k, err)
		}
	}

	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return analyze.Analysis{}, fmt.Errorf("recognize words: %w", err)
	}
	words := make([]wordBox, 0, len(boxes))
	for _, b := range boxes {
		if b.Word == "" {
			continue
		}
		words = append(words, wordBox{
			Text:       b.Word,
			Confidence: b.Confidence / 100.0,
			Bounds: analyze.Region{
				X:      float64(b.Box.Min.X),
				Y:      float64(b.Box.Min.Y),
				Width:  float64(b.Box.Dx()),
				Height: float64(b.Box.Dy()),
			},
		})
	}
	return analyze.Analysis{Blocks: buildBlocks(words, a.newID)}, nil
}

func cropImage(data []byte, region *analyze.Region) ([]byte, error) {
	if region == nil || region.IsEmpty() {
		return data, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode for region: %w", err)
	}
	rect := image.Rect(
		int(math.Round(region.X)),
		int(math.Round(region.Y)),
		int(math.Round(region.X+region.Width)),
		int(math.Round(region.Y+region.Height)),
	).Intersect(img.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("region outside image bounds")
	}
	subImg, ok := img.(interface {
		SubImage(r image.Rectangle) image.Image
	})
	if !ok {
		return nil, fmt.Errorf("image does not support sub-image")
	}
	cropped := subImg.SubImage(rect)
	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return nil, fmt.Errorf("encode cropped image: %w", err)
	}
	return buf.Bytes(), nil
}
