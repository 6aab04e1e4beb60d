/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"context"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Exchange carries one request/response cycle through the stage list.
type Exchange struct {
	// Input is the outgoing request; stages may adjust it before it is sent.
	Input *sdk.QueryInput
	// Output is the store's response, set by the terminal send step.
	Output *sdk.QueryOutput
	// ThrottleRetries counts throttled attempts absorbed during this cycle.
	ThrottleRetries int
}

// Runner executes the remainder of the stage list for one cycle.
type Runner interface {
	Run(ctx context.Context, ex *Exchange) error
}

// Stage processes one request/response cycle, delegating the actual send to
// next. A stage may adjust the request before calling next and inspect or
// rewrite the response after it returns.
type Stage interface {
	Process(ctx context.Context, ex *Exchange, next Runner) error
}

// sequenceState is the mutable state of one page sequence, shared by its
// stages. A sequence is driven by a single goroutine, so no locking.
type sequenceState struct {
	// matched and scanned accumulate across pages against the caller's caps.
	matched int
	scanned int
	// startKey is the continuation cursor for the next request.
	startKey map[string]types.AttributeValue
	// throttles counts consecutive throttled sends, reset after a success.
	throttles int
	// done is the cooperative termination flag any stage may set.
	done bool
}

// pipeline is an ordered stage list terminated by the raw send step. Stages
// are invoked in order; each wraps everything after itself.
type pipeline struct {
	stages []Stage
	send   Runner
}

func (p *pipeline) Run(ctx context.Context, ex *Exchange) error {
	return p.runFrom(ctx, ex, 0)
}

func (p *pipeline) runFrom(ctx context.Context, ex *Exchange, i int) error {
	if i == len(p.stages) {
		return p.send.Run(ctx, ex)
	}
	return p.stages[i].Process(ctx, ex, stageRunner{p: p, next: i + 1})
}

// stageRunner resumes the pipeline at a fixed position.
type stageRunner struct {
	p    *pipeline
	next int
}

func (r stageRunner) Run(ctx context.Context, ex *Exchange) error {
	return r.p.runFrom(ctx, ex, r.next)
}

// sender is the terminal step: one network call, one response.
type sender struct {
	client QueryAPI
}

func (s sender) Run(ctx context.Context, ex *Exchange) error {
	out, err := s.client.Query(ctx, ex.Input)
	if err != nil {
		return err
	}
	ex.Output = out
	return nil
}
