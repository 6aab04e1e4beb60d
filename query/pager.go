/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"context"
	"time"

	"github.com/suparena/queryflow/querymodels"
)

// Pager is a lazy, pull-based sequence of response pages. No request is sent
// until Next is called, at most one request is in flight at any time, and a
// pager that stops being consumed sends nothing further. A Pager is bound to
// a single goroutine; run independent pagers for concurrent sequences.
type Pager struct {
	req *querymodels.QueryRequest
	st  *sequenceState
	pl  *pipeline

	pages     int
	exhausted bool
	err       error
}

// NewPager compiles the spec into a request and prepares the execution
// pipeline. Compilation happens here, so malformed queries fail before any
// network call.
func NewPager(client QueryAPI, spec *Spec, opts ...querymodels.ExecOption) (*Pager, error) {
	options := querymodels.DefaultExecOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Backoff == nil {
		options.Backoff = querymodels.DefaultBackoff
	}

	req, err := Build(spec)
	if err != nil {
		return nil, err
	}

	st := &sequenceState{startKey: spec.StartKey}
	pl := &pipeline{
		stages: []Stage{
			&startKeyStage{st: st},
			&limitStage{
				st:          st,
				recordLimit: spec.RecordLimit,
				scanLimit:   spec.ScanLimit,
				batchSize:   spec.BatchSize,
			},
			&backoffStage{
				st:         st,
				policy:     options.Backoff,
				maxRetries: options.MaxThrottleRetries,
			},
		},
		send: sender{client: client},
	}

	return &Pager{req: req, st: st, pl: pl}, nil
}

// Next drives the pipeline through one request/response cycle and returns
// the resulting page. It returns (nil, nil) once the sequence has terminated:
// a cap was reached, the store returned no continuation cursor, or a prior
// error ended the sequence.
func (p *Pager) Next(ctx context.Context) (*querymodels.Page, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.exhausted || p.st.done {
		p.exhausted = true
		return nil, nil
	}

	ex := &Exchange{Input: p.req.Input()}
	if err := p.pl.Run(ctx, ex); err != nil {
		p.err = err
		return nil, err
	}

	p.pages++
	return &querymodels.Page{
		Items:            ex.Output.Items,
		ScannedCount:     ex.Output.ScannedCount,
		LastEvaluatedKey: ex.Output.LastEvaluatedKey,
		Meta: querymodels.PageMeta{
			PageNumber:      p.pages,
			ThrottleRetries: ex.ThrottleRetries,
			Timestamp:       time.Now(),
		},
	}, nil
}

// Done reports whether the sequence has terminated.
func (p *Pager) Done() bool {
	return p.err != nil || p.exhausted || p.st.done
}

// Request returns the compiled request the sequence started from, useful for
// inspection and dry runs. Mutating it after the first Next is undefined.
func (p *Pager) Request() *querymodels.QueryRequest {
	return p.req
}
