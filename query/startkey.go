/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import "context"

// startKeyStage propagates the continuation cursor between pages: it injects
// the cursor captured from the previous response into the outgoing request,
// and signals termination when a response carries no cursor.
type startKeyStage struct {
	st *sequenceState
}

func (s *startKeyStage) Process(ctx context.Context, ex *Exchange, next Runner) error {
	if s.st.startKey != nil {
		ex.Input.ExclusiveStartKey = s.st.startKey
	}
	if err := next.Run(ctx, ex); err != nil {
		return err
	}
	if len(ex.Output.LastEvaluatedKey) == 0 {
		s.st.done = true
	} else {
		s.st.startKey = ex.Output.LastEvaluatedKey
	}
	return nil
}
