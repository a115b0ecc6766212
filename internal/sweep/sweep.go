// Package sweep evaluates the drift model over parameter grids, fanning the
// cells out across a bounded worker pool. Results come back in deterministic
// grid order regardless of completion order.
package sweep

import (
	"context"
	"math"

	"golang.org/x/sync/semaphore"

	"sszqubits/domain/physics"
)

// Point is one evaluated grid cell.
type Point struct {
	Height    float64 // [m]
	Frequency float64 // [Hz], linear
	Time      float64 // [s]

	Drift    float64 // [rad]
	Warnings []physics.WarningCode
}

// Engine runs grid sweeps with bounded concurrency.
type Engine struct {
	constants physics.Constants
	sem       *semaphore.Weighted
}

// NewEngine builds an engine allowing at most workers concurrent cell
// evaluations.
func NewEngine(c physics.Constants, workers int64) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{constants: c, sem: semaphore.NewWeighted(workers)}
}

// PhaseDriftGrid evaluates drift for every (height, frequency, time) cell.
// The returned slice is ordered height-major, then frequency, then time. The
// first cell error cancels the remaining work.
func (e *Engine) PhaseDriftGrid(ctx context.Context, heights, frequencies, times []float64) ([]Point, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	total := len(heights) * len(frequencies) * len(times)
	points := make([]Point, total)
	errs := make(chan error, total)

	idx := 0
	for _, h := range heights {
		for _, f := range frequencies {
			for _, elapsed := range times {
				if err := e.sem.Acquire(ctx, 1); err != nil {
					return nil, err
				}
				go func(i int, h, f, elapsed float64) {
					defer e.sem.Release(1)
					p, err := e.evaluate(h, f, elapsed)
					if err != nil {
						errs <- err
						cancel()
						return
					}
					points[i] = p
					errs <- nil
				}(idx, h, f, elapsed)
				idx++
			}
		}
	}

	var firstErr error
	for i := 0; i < idx; i++ {
		if err := <-errs; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return points, nil
}

func (e *Engine) evaluate(h, f, elapsed float64) (Point, error) {
	c := e.constants
	omega := 2 * math.Pi * f
	drift, warnings, err := c.PhaseDrift(omega, h, elapsed, c.ReferenceMass, c.ReferenceRadius)
	if err != nil {
		return Point{}, err
	}
	return Point{
		Height:    h,
		Frequency: f,
		Time:      elapsed,
		Drift:     drift,
		Warnings:  warnings,
	}, nil
}
