package raytrace

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// bandsPerWorker splits each frame finer than the worker count so that
// expensive rows (the floor, shadowed regions) do not stall one worker.
const bandsPerWorker = 4

// pool runs row bands of a frame on a fixed number of goroutines.
type pool struct {
	workers int
}

func newPool(workers int) *pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &pool{workers: workers}
}

// run calls fn for disjoint [y0, y1) bands covering [0, height) and returns
// once every band is done. A panic in fn is re-raised on the caller.
func (p *pool) run(height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	bands := p.workers * bandsPerWorker
	if bands > height {
		bands = height
	}
	if p.workers == 1 || bands == 1 {
		fn(0, height)
		return
	}

	var g errgroup.Group
	g.SetLimit(p.workers)
	for b := 0; b < bands; b++ {
		y0 := b * height / bands
		y1 := (b + 1) * height / bands
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("raytrace: band %d-%d: %v", y0, y1, r)
				}
			}()
			fn(y0, y1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
}
