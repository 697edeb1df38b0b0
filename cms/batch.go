package cms

import (
	"context"

	"github.com/olgasafonova/notion-cms-mcp-server/metrics"
	"github.com/olgasafonova/notion-cms-mcp-server/tracing"
)

type batchResult struct {
	index int
	item  Item
	err   error
}

// Batch fetches every slug concurrently, one request per slug with no
// concurrency cap. result[i] is the item for slugs[i]. Batch returns as soon
// as any fetch fails, with that error and no items; the other requests are
// not cancelled and finish in the background.
func (c *Client) Batch(ctx context.Context, slugs []string) ([]Item, error) {
	items := make([]Item, len(slugs))
	if len(slugs) == 0 {
		return items, nil
	}

	ctx, span := tracing.StartBatchSpan(ctx, c.cfg.Namespace, c.cfg.APIPath, len(slugs))
	defer span.End()
	metrics.RecordBatch(len(slugs))

	// Buffered so late senders never block once Batch has returned
	results := make(chan batchResult, len(slugs))
	for i, slug := range slugs {
		go func() {
			item, err := c.GetBySlug(ctx, slug)
			results <- batchResult{index: i, item: item, err: err}
		}()
	}

	for range slugs {
		r := <-results
		if r.err != nil {
			tracing.AddBatchFailure(span, r.index, slugs[r.index])
			tracing.Finish(span, r.err)
			return nil, r.err
		}
		items[r.index] = r.item
	}

	tracing.Finish(span, nil)
	c.Logger.Debug("Batch fetch completed", "slugs", len(slugs))
	return items, nil
}
