package timesheet

import (
	"context"

	"github.com/delamyth/timecard/analyze"
	"github.com/delamyth/timecard/blockgraph"
	"github.com/delamyth/timecard/observability"
	"github.com/delamyth/timecard/recovery"
	"github.com/delamyth/timecard/table"
)

// Interpreter runs the interpretation pipeline over analysis results. The
// zero-configuration interpreter is ready to use; all state is per call, so a
// single Interpreter may serve concurrent requests.
type Interpreter struct {
	log    observability.Logger
	tracer observability.Tracer
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger attaches a logger for per-fragment diagnostics.
func WithLogger(l observability.Logger) Option {
	return func(it *Interpreter) { it.log = l }
}

// WithTracer attaches a tracer spanning each interpretation.
func WithTracer(t observability.Tracer) Option {
	return func(it *Interpreter) { it.tracer = t }
}

// New constructs an Interpreter.
func New(opts ...Option) *Interpreter {
	it := &Interpreter{log: observability.NopLogger{}, tracer: observability.NopTracer()}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Interpret turns one analysis into a summary. Malformed fragments are
// skipped locally: given a well-typed block list this never fails, only
// degrades toward an empty summary.
func (it *Interpreter) Interpret(ctx context.Context, a analyze.Analysis) Summary {
	summary, _ := it.InterpretWithStrategy(ctx, a, recovery.NewLenientStrategy())
	return summary
}

// InterpretWithStrategy runs the pipeline consulting the given recovery
// strategy for every fragment that cannot be interpreted. With a fail-fast
// strategy the first malformed fragment aborts and returns its error.
func (it *Interpreter) InterpretWithStrategy(ctx context.Context, a analyze.Analysis, strategy recovery.Strategy) (Summary, error) {
	ctx, span := it.tracer.StartSpan(ctx, "timesheet.interpret")
	defer span.Finish()

	g := blockgraph.New(a.Blocks)
	month := ExtractMonth(a.Blocks)
	tbl := table.Build(g)

	records := make([]EmployeeRecord, 0, tbl.Len())
	recordIdx := make(map[string]int)
	var skipped int

	for _, row := range tbl.Rows() {
		name, ok := CleanName(tbl.Cell(row, 1))
		if !ok {
			continue
		}

		daily := make(map[int]float64)
		var weekly float64
		var failed error

		for _, col := range tbl.Columns(row) {
			if col == 1 {
				continue
			}
			times := ExtractTimes(tbl.Cell(row, col))
			intervals, cont := PairIntervals(times, func(err error, fragment string) bool {
				loc := recovery.Location{
					Row:       row,
					Column:    col,
					Component: recovery.ComponentInterval,
					Fragment:  fragment,
				}
				if strategy.OnError(err, loc) == recovery.ActionFail {
					failed = err
					return false
				}
				skipped++
				it.log.Debug("skipping unparseable punch",
					observability.Int("row", row),
					observability.Int("column", col),
					observability.String("fragment", fragment),
					observability.Error("cause", err))
				return true
			})
			if !cont {
				span.SetError(failed)
				return Summary{}, failed
			}

			var cellSeconds int
			for _, iv := range intervals {
				cellSeconds += iv.Seconds()
			}
			hours := QuarterHours(cellSeconds)
			daily[col] = hours
			weekly += hours
		}

		rec := EmployeeRecord{Name: name, DailyHours: daily, WeeklyTotal: weekly}
		if i, dup := recordIdx[name]; dup {
			records[i] = rec
		} else {
			recordIdx[name] = len(records)
			records = append(records, rec)
		}
	}

	summary := summarize(month, records)
	span.SetTag(observability.MetricRowCount, tbl.Len())
	span.SetTag(observability.MetricEmployeeCount, len(records))
	it.log.Info("interpreted timesheet",
		observability.String("month", summary.Month),
		observability.Int("rows", tbl.Len()),
		observability.Int("employees", len(records)),
		observability.Int("skipped_fragments", skipped))
	return summary, nil
}
