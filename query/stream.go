/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"context"

	"github.com/suparena/queryflow/querymodels"
)

// PageResult is one element of a streamed page sequence.
type PageResult struct {
	Page *querymodels.Page
	Err  error
}

// Stream adapts the pager to channel-based consumption. A background
// goroutine pulls pages and the channel is closed when the sequence
// terminates; an error, if any, is delivered as the final element. Cancel
// the context to stop early.
//
// Unlike Next, a buffered stream may fetch up to bufferSize pages ahead of
// the consumer. Use the pull API when "no call before the consumer asks"
// matters.
func (p *Pager) Stream(ctx context.Context, bufferSize int) <-chan PageResult {
	if bufferSize < 1 {
		bufferSize = 1
	}
	ch := make(chan PageResult, bufferSize)

	go func() {
		defer close(ch)
		for {
			page, err := p.Next(ctx)
			if err != nil {
				select {
				case ch <- PageResult{Err: err}:
				case <-ctx.Done():
				}
				return
			}
			if page == nil {
				return
			}
			select {
			case ch <- PageResult{Page: page}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}
