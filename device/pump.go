// SPDX-License-Identifier: EPL-2.0

package device

import (
	"context"
	"time"
)

// pump calls render once per block period on its own goroutine and hands
// each block to sink. It stands in for a hardware clock.
type pump struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

func startPump(period time.Duration, block []float32, render RenderFunc, sink func([]float32) error) *pump {
	ctx, cancel := context.WithCancel(context.Background())
	p := &pump{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(p.done)

		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			clear(block)
			render(block)

			if sink == nil {
				continue
			}
			if err := sink(block); err != nil {
				p.err = err
				return
			}
		}
	}()

	return p
}

// stop cancels the pump and waits for the goroutine to exit. It returns the
// sink error that ended the pump early, if any.
func (p *pump) stop() error {
	p.cancel()
	<-p.done

	return p.err
}
