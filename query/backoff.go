/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"context"
	"fmt"
	"time"

	"github.com/suparena/queryflow/querymodels"
)

// backoffStage absorbs throttling: a throttled send is retried after a delay
// drawn from the backoff policy, fed with the count of consecutive throttles
// so delays never shrink while the store stays saturated. The counter resets
// after a success, so the next throttle starts from the baseline again.
// Any non-throttling error propagates immediately.
type backoffStage struct {
	st         *sequenceState
	policy     querymodels.BackoffPolicy
	maxRetries int // 0 means retry until success or cancellation
}

func (b *backoffStage) Process(ctx context.Context, ex *Exchange, next Runner) error {
	retries := 0
	for {
		err := next.Run(ctx, ex)
		if err == nil {
			b.st.throttles = 0
			ex.ThrottleRetries = retries
			return nil
		}
		if !IsThrottle(err) {
			return err
		}

		retries++
		b.st.throttles++
		if b.maxRetries > 0 && retries > b.maxRetries {
			return fmt.Errorf("request still throttled after %d retries: %w", b.maxRetries, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(b.policy(b.st.throttles)):
		}
	}
}
