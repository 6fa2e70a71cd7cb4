package analyze

import "context"

// ImageFormat identifies the content type of a document-analysis input image.
type ImageFormat string

const (
	ImageFormatPNG  ImageFormat = "image/png"
	ImageFormatJPEG ImageFormat = "image/jpeg"
	ImageFormatTIFF ImageFormat = "image/tiff"
)

// Region describes a rectangular area in pixel coordinates with the origin in
// the upper-left corner of the image.
type Region struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// IsEmpty reports whether the region has non-positive dimensions.
func (r Region) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// BlockType enumerates the kinds of blocks a provider can emit.
type BlockType string

const (
	BlockTypePage  BlockType = "PAGE"
	BlockTypeTable BlockType = "TABLE"
	BlockTypeCell  BlockType = "CELL"
	BlockTypeLine  BlockType = "LINE"
	BlockTypeWord  BlockType = "WORD"
)

// RelationshipType tags a link from a container block to the blocks it holds.
type RelationshipType string

const (
	// RelationshipChild links a container to the ids it visually contains.
	RelationshipChild RelationshipType = "CHILD"
)

// Relationship is an ordered link from one block to a list of target ids.
type Relationship struct {
	Type RelationshipType `json:"type"`
	IDs  []string         `json:"ids"`
}

// Block is one atomic unit of provider output. Only the fields relevant to a
// block's type are populated: Text on WORD and LINE blocks, RowIndex and
// ColumnIndex (1-based) on CELL blocks.
type Block struct {
	ID            string         `json:"id"`
	Type          BlockType      `json:"type"`
	Text          string         `json:"text,omitempty"`
	Confidence    float64        `json:"confidence,omitempty"`
	Page          int            `json:"page,omitempty"`
	RowIndex      int            `json:"rowIndex,omitempty"`
	ColumnIndex   int            `json:"columnIndex,omitempty"`
	Bounds        Region         `json:"bounds,omitempty"`
	Relationships []Relationship `json:"relationships,omitempty"`
}

// Analysis is the full result for one document: an ordered block sequence.
// Order is provider-defined; consumers must not assume row/column ordering.
type Analysis struct {
	Blocks []Block `json:"blocks"`
}

// Input encapsulates a single document submitted for analysis.
type Input struct {
	// ID is an optional caller-provided identifier that is echoed back by
	// providers that support correlation.
	ID string
	// Image is the encoded image payload in the format specified by Format.
	Image []byte
	// Format declares the image content type (e.g., image/png).
	Format ImageFormat
	// DPI carries the effective dots-per-inch for the image. Providers such as
	// Tesseract use this for scaling and layout heuristics; zero means unknown.
	DPI int
	// Languages is a list of language hints (e.g., "eng", "deu") that providers
	// can use to select trained data.
	Languages []string
	// Region restricts analysis to a subsection of the image. Nil means the
	// full image should be processed.
	Region *Region
	// Metadata allows callers to pass through engine-specific knobs (e.g.,
	// "psm" for Tesseract) without hard-coding them into the API surface.
	Metadata map[string]string
}

// Analyzer is the simplest provider contract: one document in, one analysis out.
type Analyzer interface {
	Name() string
	Analyze(ctx context.Context, input Input) (Analysis, error)
}

// BatchAnalyzer handles multiple documents in a single call, enabling
// providers that amortize setup costs or remote round-trips.
type BatchAnalyzer interface {
	Analyzer
	AnalyzeBatch(ctx context.Context, inputs []Input) ([]Analysis, error)
}
