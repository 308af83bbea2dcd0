package pattern

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/stdcell"
	"github.com/gogpu/stdcell/layout"
)

// Option configures Generate.
type Option func(*generateOptions)

type generateOptions struct {
	workers int
}

// WithWorkers bounds how many cells are built at once. Default GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *generateOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Generate builds every pattern of set with b and places the cells on a
// grid in a new sealed top cell named after the set.
//
// Cells are built concurrently; the first failure cancels the rest and is
// returned with the failing pattern's name.
func Generate(ctx context.Context, b *stdcell.Builder, set *Set, opts ...Option) (*layout.Cell, error) {
	o := generateOptions{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}

	cells, err := buildAll(ctx, b, set.Patterns, o.workers)
	if err != nil {
		return nil, err
	}

	canvas := layout.NewCanvas(set.Name)
	if err := Place(canvas, cells, set.Spacing); err != nil {
		return nil, err
	}
	top := canvas.Finish()

	stdcell.Logger().Debug("pattern batch generated",
		"set", set.Name,
		"cells", len(cells),
		"workers", o.workers)
	return top, nil
}

func buildAll(ctx context.Context, b *stdcell.Builder, patterns []Pattern, workers int) ([]*layout.Cell, error) {
	cells := make([]*layout.Cell, len(patterns))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range patterns {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := p.Build(b)
			if err != nil {
				return fmt.Errorf("pattern %q: %w", p.Name, err)
			}
			cells[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cells, nil
}

// Place inserts cells into sink row by row. A row holds floor(sqrt(n))
// cells; consecutive origins are pitch apart in x and rows pitch apart in y.
func Place(sink layout.Sink, cells []*layout.Cell, pitch float64) error {
	cols := GridColumns(len(cells))
	for i, c := range cells {
		x := float64(i%cols) * pitch
		y := float64(i/cols) * pitch
		if err := sink.Insert(c, layout.Translate(x, y)); err != nil {
			return fmt.Errorf("pattern: place %d: %w", i, err)
		}
	}
	return nil
}

// GridColumns returns the row length used by Place for n cells.
func GridColumns(n int) int {
	return max(1, int(math.Sqrt(float64(n))))
}
