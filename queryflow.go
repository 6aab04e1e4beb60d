/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package queryflow

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/suparena/queryflow/query"
	"github.com/suparena/queryflow/querymodels"
	"github.com/suparena/queryflow/schema"
)

// Queryer binds a DynamoDB client and a table schema and issues typed
// queries whose items unmarshal into T.
type Queryer[T any] struct {
	client query.QueryAPI
	table  schema.Table
}

// New creates a Queryer for the given table schema.
func New[T any](client query.QueryAPI, table schema.Table) *Queryer[T] {
	return &Queryer[T]{client: client, table: table}
}

// NewForTable creates a Queryer for a table previously registered with the
// schema registry (typically via schema.LoadFile).
func NewForTable[T any](client query.QueryAPI, tableName string) (*Queryer[T], error) {
	table, err := schema.GetTable(tableName)
	if err != nil {
		return nil, err
	}
	return New[T](client, table), nil
}

// Query compiles the options and returns a lazy typed page sequence. No
// request is sent until the first call to Next.
func (q *Queryer[T]) Query(opts query.Options, execOpts ...querymodels.ExecOption) (*Pages[T], error) {
	spec, err := query.ParseOptions(q.table, opts)
	if err != nil {
		return nil, err
	}
	pager, err := query.NewPager(q.client, spec, execOpts...)
	if err != nil {
		return nil, err
	}
	return &Pages[T]{pager: pager}, nil
}

// QueryAll drains the sequence and returns every matched item. Prefer the
// page or stream APIs for result sets that may not fit in memory.
func (q *Queryer[T]) QueryAll(ctx context.Context, opts query.Options, execOpts ...querymodels.ExecOption) ([]T, error) {
	pages, err := q.Query(opts, execOpts...)
	if err != nil {
		return nil, err
	}

	var all []T
	for {
		page, err := pages.Next(ctx)
		if err != nil {
			return nil, err
		}
		if page == nil {
			return all, nil
		}
		all = append(all, page.Items...)
	}
}

// Stream executes the query and emits items one at a time on a channel. The
// channel is closed when the sequence terminates; cancel the context to stop
// early. Unmarshal failures are reported per item via the Error field and do
// not end the stream, while request errors end it with a final error element.
func (q *Queryer[T]) Stream(ctx context.Context, opts query.Options, execOpts ...querymodels.ExecOption) (<-chan querymodels.StreamResult[T], error) {
	options := querymodels.DefaultExecOptions()
	for _, opt := range execOpts {
		opt(&options)
	}

	spec, err := query.ParseOptions(q.table, opts)
	if err != nil {
		return nil, err
	}
	pager, err := query.NewPager(q.client, spec, execOpts...)
	if err != nil {
		return nil, err
	}

	ch := make(chan querymodels.StreamResult[T], options.BufferSize)
	go func() {
		defer close(ch)
		var index int64
		for {
			page, err := pager.Next(ctx)
			if err != nil {
				select {
				case ch <- querymodels.StreamResult[T]{Error: err}:
				case <-ctx.Done():
				}
				return
			}
			if page == nil {
				return
			}
			for _, raw := range page.Items {
				result := querymodels.StreamResult[T]{
					Raw: raw,
					Meta: querymodels.StreamMeta{
						Index:      index,
						PageNumber: page.Meta.PageNumber,
						Timestamp:  time.Now(),
					},
				}
				var item T
				if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
					result.Error = fmt.Errorf("failed to unmarshal item %d: %w", index, err)
				} else {
					result.Item = item
				}
				index++

				select {
				case ch <- result:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch, nil
}

// TypedPage is one page of a typed sequence.
type TypedPage[T any] struct {
	// Items are the page's records, unmarshaled into T.
	Items []T
	// Meta carries per-page execution metadata.
	Meta querymodels.PageMeta
}

// Pages is a pull-based typed page sequence backed by a query.Pager.
type Pages[T any] struct {
	pager *query.Pager
}

// Next returns the next page, or (nil, nil) once the sequence has terminated.
// An item that fails to unmarshal aborts the sequence; use the untyped pager
// for per-item error handling.
func (p *Pages[T]) Next(ctx context.Context) (*TypedPage[T], error) {
	page, err := p.pager.Next(ctx)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, nil
	}

	items := make([]T, 0, len(page.Items))
	for i, raw := range page.Items {
		var item T
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item %d of page %d: %w", i, page.Meta.PageNumber, err)
		}
		items = append(items, item)
	}
	return &TypedPage[T]{Items: items, Meta: page.Meta}, nil
}

// Done reports whether the sequence has terminated.
func (p *Pages[T]) Done() bool {
	return p.pager.Done()
}

// Request exposes the compiled request backing the sequence.
func (p *Pages[T]) Request() *querymodels.QueryRequest {
	return p.pager.Request()
}
