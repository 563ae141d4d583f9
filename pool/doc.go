// Package pool runs a bounded number of tasks concurrently and collects
// their results.
//
//	tasks := make([]pool.Task, len(rows))
//	for i, row := range rows {
//		tasks[i] = func(ctx context.Context) (any, error) {
//			return process(ctx, row)
//		}
//	}
//	results, err := pool.Run(ctx, tasks, pool.Options{Workers: 8})
//
// Run returns results in submission order; Stream delivers them as they
// complete. Individual task failures are recorded per result and never
// abort the run.
package pool
