/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import "context"

// limitStage accounts matched records and scanned items against the caller's
// caps. Before the send it recomputes the page-size hint from the remaining
// allowances; after the send it updates the cumulative counters, trims the
// final page to the exact record allowance, and signals termination once a
// cap is reached, even when the store offered a continuation cursor.
type limitStage struct {
	st          *sequenceState
	recordLimit *int
	scanLimit   *int
	batchSize   *int
}

func (l *limitStage) Process(ctx context.Context, ex *Exchange, next Runner) error {
	if hint := pageSizeHint(l.recordLimit, l.scanLimit, l.batchSize, l.st.matched, l.st.scanned); hint != nil {
		ex.Input.Limit = hint
	}
	if err := next.Run(ctx, ex); err != nil {
		return err
	}

	out := ex.Output
	l.st.scanned += int(out.ScannedCount)
	l.st.matched += len(out.Items)

	if l.recordLimit != nil && l.st.matched >= *l.recordLimit {
		if over := l.st.matched - *l.recordLimit; over > 0 {
			out.Items = out.Items[:len(out.Items)-over]
			l.st.matched = *l.recordLimit
		}
		l.st.done = true
	}
	if l.scanLimit != nil && l.st.scanned >= *l.scanLimit {
		// Records already returned passed the filter, so no trimming here.
		l.st.done = true
	}
	return nil
}
