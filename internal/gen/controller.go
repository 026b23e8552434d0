// Package gen runs sector generation on background workers and streams
// completed sectors to the main thread over a channel.
package gen

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"sandbox/internal/meshing"
	"sandbox/internal/world"
)

// Result is one completed sector: its world coordinate, the full block
// data, and the CPU-side mesh. Geo is nil when the sector has no
// visible faces.
type Result struct {
	Index world.SectorIndex
	Data  *world.SectorData
	Geo   *meshing.PreGeometry
}

// Span is an inclusive box of sector indices to generate.
type Span struct {
	MinX, MaxX int
	MinY, MaxY int
	MinZ, MaxZ int
}

// count returns the number of sector indices in the span.
func (s Span) count() int {
	return (s.MaxX - s.MinX + 1) * (s.MaxY - s.MinY + 1) * (s.MaxZ - s.MinZ + 1)
}

// splitX slices the span into at most n X-slabs of near-equal width.
// Each slab is one worker's assignment.
func (s Span) splitX(n int) []Span {
	width := s.MaxX - s.MinX + 1
	if n > width {
		n = width
	}
	slabs := make([]Span, 0, n)
	lo := s.MinX
	for i := 0; i < n; i++ {
		size := width / n
		if i < width%n {
			size++
		}
		slab := s
		slab.MinX = lo
		slab.MaxX = lo + size - 1
		slabs = append(slabs, slab)
		lo += size
	}
	return slabs
}

// PanicPolicy names what Close does with a panic recovered from a
// generation worker.
type PanicPolicy int

const (
	// PanicFatal re-panics on the closing goroutine. Default.
	PanicFatal PanicPolicy = iota
	// PanicIsolate returns the failure as an error from Close and
	// leaves sibling workers untouched.
	PanicIsolate
)

// GenerateFunc synthesizes the block data for one sector index.
type GenerateFunc func(world.SectorIndex) *world.SectorData

// Options tune a controller launch. The zero value picks the defaults.
type Options struct {
	Workers     int  // worker goroutines, default 1
	Buffer      int  // result channel capacity, default 256
	Span        Span // sector range to generate
	Generate    GenerateFunc
	PanicPolicy PanicPolicy
}

// Controller owns a pool of generation workers. Completed sectors
// arrive on Results in each worker's scan order; no order is guaranteed
// across workers.
type Controller struct {
	results chan Result
	cancel  context.CancelFunc
	group   *errgroup.Group
	policy  PanicPolicy
}

// Launch starts the worker pool and returns immediately; it never
// waits for any sector to complete. Each worker deep-copies nothing
// but its slab bounds and the atlas metadata, so workers share no
// mutable state with each other or the caller.
func Launch(atlas meshing.Atlas, opts Options) *Controller {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Buffer <= 0 {
		opts.Buffer = 256
	}
	if opts.Generate == nil {
		opts.Generate = world.GenerateSuperflat
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		results: make(chan Result, opts.Buffer),
		cancel:  cancel,
		group:   &errgroup.Group{},
		policy:  opts.PanicPolicy,
	}

	for _, slab := range opts.Span.splitX(opts.Workers) {
		c.group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("generation worker (x %d..%d): panic: %v",
						slab.MinX, slab.MaxX, r)
				}
			}()
			runWorker(ctx, slab, opts.Generate, atlas, c.results)
			return nil
		})
	}

	return c
}

// runWorker scans the slab in a fixed x, y, z order, generating and
// meshing one sector per step. Cancellation is only observed between
// sectors, on the send: a sector's generation plus meshing is one
// atomic unit of work.
func runWorker(ctx context.Context, slab Span, generate GenerateFunc, atlas meshing.Atlas, out chan<- Result) {
	for x := slab.MinX; x <= slab.MaxX; x++ {
		for y := slab.MinY; y <= slab.MaxY; y++ {
			for z := slab.MinZ; z <= slab.MaxZ; z++ {
				idx := world.SectorIndex{X: x, Y: y, Z: z}
				data := generate(idx)
				geo := meshing.BuildSectorMesh(data, atlas)

				select {
				case out <- Result{Index: idx, Data: data, Geo: geo}:
				case <-ctx.Done():
					// Consumer is gone. Quit without finishing the
					// slab; this is the teardown path, not a failure.
					return
				}
			}
		}
	}
}

// Results returns the receive endpoint for completed sectors. The
// channel is never closed; drain it with non-blocking receives.
func (c *Controller) Results() <-chan Result {
	return c.results
}

// Close cancels outstanding work and joins every worker before
// returning. A worker parked on a full results channel is released by
// the cancellation, so Close completes even when the consumer stopped
// draining. A recovered worker panic surfaces here according to the
// configured policy.
func (c *Controller) Close() error {
	c.cancel()
	err := c.group.Wait()
	if err != nil && c.policy == PanicFatal {
		panic(err)
	}
	return err
}
