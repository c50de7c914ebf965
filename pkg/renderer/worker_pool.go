package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/kjmray/photon-forge/pkg/core"
)

// rowWorkerPool parallelizes rendering across image rows: each worker pulls
// row indices off a shared channel, renders every pixel in that row, and
// writes directly into the buffer. Rows are disjoint, so no further
// synchronization is needed on the buffer itself.
type rowWorkerPool struct {
	renderer   *Renderer
	buffer     *Buffer
	numWorkers int
}

func newRowWorkerPool(r *Renderer, buffer *Buffer) *rowWorkerPool {
	numWorkers := r.workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &rowWorkerPool{renderer: r, buffer: buffer, numWorkers: numWorkers}
}

// run dispatches all rows to the pool and blocks until they're rendered or
// ctx is canceled. On cancellation, rows already dispatched still finish;
// undispatched rows are skipped and ctx.Err() is returned.
func (p *rowWorkerPool) run(ctx context.Context) error {
	rows := make(chan int, p.renderer.height)
	for row := 0; row < p.renderer.height; row++ {
		rows <- row
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < p.numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			sampler := p.renderer.newSampler(int64(workerID))
			for row := range rows {
				select {
				case <-ctx.Done():
					return
				default:
				}
				p.renderRow(row, sampler)
				if p.renderer.progress != nil {
					p.renderer.progress.Add(1)
				}
			}
		}(w)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}

func (p *rowWorkerPool) renderRow(row int, sampler core.Sampler) {
	for col := 0; col < p.renderer.width; col++ {
		color := p.renderer.renderPixel(col, row, sampler)
		p.buffer.Set(col, row, color)
	}
}
