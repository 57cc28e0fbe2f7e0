package sequence

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/pstuifzand/tui-renamer/internal/rename"
)

// PreviewBatch previews every name, using its index as the relative
// count. Results are in the order of names. Names are evaluated on up to
// workers goroutines; workers <= 0 uses GOMAXPROCS. seq must not change
// while the batch runs.
func PreviewBatch[T rename.Operation](ctx context.Context, seq *Sequence[T], names []string, workers int) ([]*ResultSequence, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*ResultSequence, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, name := range names {
		i, name := i, name
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = seq.Preview(name, i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
