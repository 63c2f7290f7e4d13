package flattree

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/flattree/element"
	"github.com/hupe1980/flattree/tree"
)

// EncodeAll encodes independent trees concurrently, at most WithConcurrency
// at a time. The result is in input order. The first error cancels the
// remaining encodes.
func EncodeAll[N any, T comparable](ctx context.Context, sources []tree.Source[N, T], sentinel T, kind element.Kind[T], opts ...Option) ([]Encoding[T], error) {
	o := applyOptions(opts)

	out := make([]Encoding[T], len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			enc, err := encode(gctx, src, sentinel, kind, o)
			if err != nil {
				return fmt.Errorf("tree %d: %w", i, err)
			}
			out[i] = enc
			return nil
		})
	}

	err := g.Wait()
	o.logger.LogBatchEncode(ctx, len(sources), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}
