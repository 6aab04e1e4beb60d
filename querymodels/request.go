/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package querymodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// QueryRequest is one fully compiled DynamoDB Query request.
//
// Expression fields hold plain strings and maps; empty values are dropped
// when the request is converted to wire form, so the store never sees an
// empty expression or an empty placeholder table.
type QueryRequest struct {
	// TableName is the DynamoDB table name.
	TableName string
	// KeyConditionExpression is the primary condition for the query.
	KeyConditionExpression string
	// FilterExpression is an optional secondary condition applied after the key lookup.
	FilterExpression string
	// ProjectionExpression optionally narrows the returned attributes.
	ProjectionExpression string
	// ExpressionAttributeNames maps name placeholders to attribute names.
	ExpressionAttributeNames map[string]string
	// ExpressionAttributeValues maps value placeholders to literal operands.
	ExpressionAttributeValues map[string]types.AttributeValue
	// Limit is the page-size hint sent to the store, if any.
	Limit *int32
	// ConsistentRead requests a strongly consistent read.
	ConsistentRead *bool
	// ScanIndexForward specifies the order for index traversal.
	ScanIndexForward *bool
	// Select controls which attributes the store returns (e.g. COUNT).
	Select types.Select
	// IndexName is optional if you wish to query a secondary index.
	IndexName *string
	// ExclusiveStartKey is the continuation cursor to resume from.
	ExclusiveStartKey map[string]types.AttributeValue
}

// Input converts the request to a fresh dynamodb.QueryInput, omitting every
// empty or absent field. Each call returns a new value, so the execution
// pipeline can mutate one page's input without affecting the next.
func (r *QueryRequest) Input() *dynamodb.QueryInput {
	in := &dynamodb.QueryInput{
		TableName:         &r.TableName,
		Limit:             r.Limit,
		ConsistentRead:    r.ConsistentRead,
		ScanIndexForward:  r.ScanIndexForward,
		Select:            r.Select,
		IndexName:         r.IndexName,
		ExclusiveStartKey: r.ExclusiveStartKey,
	}
	if r.KeyConditionExpression != "" {
		expr := r.KeyConditionExpression
		in.KeyConditionExpression = &expr
	}
	if r.FilterExpression != "" {
		expr := r.FilterExpression
		in.FilterExpression = &expr
	}
	if r.ProjectionExpression != "" {
		expr := r.ProjectionExpression
		in.ProjectionExpression = &expr
	}
	if len(r.ExpressionAttributeNames) > 0 {
		in.ExpressionAttributeNames = r.ExpressionAttributeNames
	}
	if len(r.ExpressionAttributeValues) > 0 {
		in.ExpressionAttributeValues = r.ExpressionAttributeValues
	}
	return in
}
