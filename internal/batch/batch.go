package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/alexiusacademia/gopurlin/internal/purlin"
)

var ErrNoItems = errors.New("no items")

// Input is a list of designs evaluated together
type Input struct {
	Items []purlin.Input `json:"items"`
}

// Item is the outcome of one design. Exactly one of Result and Error is set.
type Item struct {
	Index  int                  `json:"index"` // position in the input list
	Result *purlin.DesignResult `json:"result,omitempty"`
	Error  string               `json:"error,omitempty"`

	err error
}

// Err returns the design error of the item
func (it Item) Err() error { return it.err }

// Result holds the batch outcome in input order
type Result struct {
	Items    []Item `json:"items"`
	Adequate int    `json:"adequate"` // designs passing every check
	Failing  int    `json:"failing"`  // designs with at least one failed check
	Errors   int    `json:"errors"`   // designs that could not be evaluated
}

// Run evaluates every design with up to workers goroutines (GOMAXPROCS when
// workers < 1). A design error is recorded on its item and does not stop
// the batch. Items not started before ctx is done carry the context error.
func Run(ctx context.Context, items []purlin.Input, workers int) (Result, error) {
	return run(ctx, items, nil, workers)
}

// RunRows evaluates parsed worksheet rows. Rows that failed to parse are
// reported with their parse error and are not designed.
func RunRows(ctx context.Context, rows []Row, workers int) ([]purlin.Input, Result, error) {
	inputs := make([]purlin.Input, len(rows))
	failed := make(map[int]error)
	for i, r := range rows {
		inputs[i] = r.Input
		if r.Err != nil {
			failed[i] = fmt.Errorf("row %d: %w", r.Line, r.Err)
		}
	}
	res, err := run(ctx, inputs, failed, workers)
	return inputs, res, err
}

func run(ctx context.Context, items []purlin.Input, failed map[int]error, workers int) (Result, error) {
	if len(items) == 0 {
		return Result{}, ErrNoItems
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(items))

	out := make([]Item, len(items))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = evaluate(ctx, i, items[i])
			}
		}()
	}

	for i := range items {
		if err, ok := failed[i]; ok {
			out[i] = Item{Index: i, Error: err.Error(), err: err}
			continue
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	res := Result{Items: out}
	for _, it := range out {
		switch {
		case it.err != nil:
			res.Errors++
		case it.Result.Check.Adequate():
			res.Adequate++
		default:
			res.Failing++
		}
	}
	return res, nil
}

func evaluate(ctx context.Context, i int, in purlin.Input) Item {
	if err := ctx.Err(); err != nil {
		return Item{Index: i, Error: err.Error(), err: err}
	}
	r, err := purlin.Design(in)
	if err != nil {
		return Item{Index: i, Error: err.Error(), err: err}
	}
	return Item{Index: i, Result: r}
}
