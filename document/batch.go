package document

import (
	"context"

	"github.com/moengage/p2ee/pool"
	"github.com/moengage/p2ee/schema"
)

// BatchResult is the outcome of building one document in a batch.
type BatchResult struct {
	// Index is the row's position in the input slice.
	Index int

	// Doc is the built document, nil if the row was rejected.
	Doc *Document

	// Err is the validation failure for this row, nil on success.
	Err error
}

// NewBatch builds one document per input row, validating rows concurrently
// with at most workers goroutines. Results are returned in row order;
// rejected rows carry their validation error and do not stop the batch.
//
// Validation is stateless and descriptors are read-only, so concurrent
// construction against a shared definition is safe.
func NewBatch(ctx context.Context, def *schema.Definition, rows []map[string]any, workers int) ([]BatchResult, error) {
	tasks := make([]pool.Task, len(rows))
	for i, row := range rows {
		tasks[i] = func(ctx context.Context) (any, error) {
			return New(def, row)
		}
	}
	results, err := pool.Run(ctx, tasks, pool.Options{Workers: workers})
	if err != nil {
		return nil, err
	}
	out := make([]BatchResult, len(results))
	for i, r := range results {
		out[i] = BatchResult{Index: i, Err: r.Err}
		if r.Err == nil {
			out[i].Doc = r.Value.(*Document)
		}
	}
	return out, nil
}
