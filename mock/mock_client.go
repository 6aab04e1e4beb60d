/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a scripted DynamoDB query client for testing the
// compiler and execution pipeline without a network.
package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Response is one scripted reply: either an output or an error.
type Response struct {
	Output *sdk.QueryOutput
	Err    error
}

// QueryClient replays scripted responses in order and records every request
// it receives. It satisfies query.QueryAPI.
type QueryClient struct {
	mu        sync.Mutex
	responses []Response
	calls     []*sdk.QueryInput
}

// NewQueryClient creates a client that replies with the given responses.
func NewQueryClient(responses ...Response) *QueryClient {
	return &QueryClient{responses: responses}
}

// Enqueue appends further scripted responses.
func (c *QueryClient) Enqueue(responses ...Response) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses = append(c.responses, responses...)
}

// Query pops the next scripted response. Running past the script is an
// error, which makes unexpected extra requests fail tests loudly.
func (c *QueryClient) Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, params)
	if len(c.calls) > len(c.responses) {
		return nil, fmt.Errorf("mock query client: unexpected request #%d", len(c.calls))
	}
	r := c.responses[len(c.calls)-1]
	return r.Output, r.Err
}

// Calls returns the requests received so far, in order.
func (c *QueryClient) Calls() []*sdk.QueryInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*sdk.QueryInput(nil), c.calls...)
}

// CallCount returns the number of requests received so far.
func (c *QueryClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// Page builds a successful response with the given items, scanned count,
// and optional continuation cursor.
func Page(items []map[string]types.AttributeValue, scanned int32, lastKey map[string]types.AttributeValue) Response {
	return Response{Output: &sdk.QueryOutput{
		Items:            items,
		Count:            int32(len(items)),
		ScannedCount:     scanned,
		LastEvaluatedKey: lastKey,
	}}
}

// Throttle builds a throttling error response.
func Throttle() Response {
	return Response{Err: &types.ProvisionedThroughputExceededException{
		Message: aws.String("throughput exceeded for mock table"),
	}}
}

// Items builds n records with a string attribute "ID" of the form prefix-i,
// a convenience for pagination tests.
func Items(prefix string, n int) []map[string]types.AttributeValue {
	items := make([]map[string]types.AttributeValue, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, map[string]types.AttributeValue{
			"ID": &types.AttributeValueMemberS{Value: fmt.Sprintf("%s-%d", prefix, i)},
		})
	}
	return items
}

// Cursor builds a single-attribute continuation cursor.
func Cursor(value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: value},
	}
}
