package analyze

import (
	"context"
	"fmt"
)

var defaultAnalyzer Analyzer = &noopAnalyzer{}

// DefaultAnalyzer returns the library's default document analyzer. It is a
// no-op until a provider (such as analyze/tesseract) registers itself.
func DefaultAnalyzer() Analyzer {
	return defaultAnalyzer
}

// SetDefaultAnalyzer sets the library's default document analyzer.
func SetDefaultAnalyzer(a Analyzer) {
	defaultAnalyzer = a
}

// AnalyzeAll runs the provided analyzer over a batch of inputs. If the
// analyzer supports batch operation, it is used; otherwise calls are executed
// sequentially.
func AnalyzeAll(ctx context.Context, analyzer Analyzer, inputs []Input) ([]Analysis, error) {
	if b, ok := analyzer.(BatchAnalyzer); ok {
		return b.AnalyzeBatch(ctx, inputs)
	}
	results := make([]Analysis, 0, len(inputs))
	for _, in := range inputs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		res, err := analyzer.Analyze(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("analyze %s: %w", in.ID, err)
		}
		results = append(results, res)
	}
	return results, nil
}

type noopAnalyzer struct{}

func (n noopAnalyzer) Name() string {
	return "noop"
}

func (n noopAnalyzer) Analyze(ctx context.Context, input Input) (Analysis, error) {
	return Analysis{}, nil
}
