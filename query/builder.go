/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"fmt"

	qferrors "github.com/suparena/queryflow/errors"
	"github.com/suparena/queryflow/expression"
	"github.com/suparena/queryflow/querymodels"
)

// Build compiles a Spec into one complete query request.
//
// A single pair of placeholder tables is created here and threaded through
// the key-condition, filter, and projection compile steps, so an attribute
// name shared between them is referenced by one token. Fields that compile
// to nothing are left empty and later omitted from the wire request.
func Build(spec *Spec) (*querymodels.QueryRequest, error) {
	if spec.HashValue == nil {
		return nil, fmt.Errorf("option %q: %w", OptHashValue, qferrors.ErrMissingHashValue)
	}

	hashKey, rangeKey := spec.HashKey, spec.RangeKey
	if hashKey == "" {
		key, err := spec.Table.KeyFor(spec.IndexName)
		if err != nil {
			return nil, err
		}
		hashKey = key.HashKey
		if rangeKey == "" {
			rangeKey = key.RangeKey
		}
	}

	keyConds := expression.NewConditionSet().Add(hashKey, expression.Eq(spec.HashValue))
	if len(spec.RangeConditions) > 0 {
		if rangeKey == "" {
			return nil, qferrors.NewInvalidQueryError(OptRangeKey,
				"range conditions given but the key schema has no range key")
		}
		keyConds.Add(rangeKey, spec.RangeConditions...)
	}

	names := expression.NewNameTable()
	values := expression.NewValueTable()

	keyExpr, err := expression.Compile(keyConds, names, values)
	if err != nil {
		return nil, err
	}
	filterExpr, err := expression.Compile(spec.Filters, names, values)
	if err != nil {
		return nil, err
	}
	projExpr := expression.CompileProjection(spec.Project, names)

	req := &querymodels.QueryRequest{
		TableName:                 spec.Table.Name,
		KeyConditionExpression:    keyExpr,
		FilterExpression:          filterExpr,
		ProjectionExpression:      projExpr,
		ExpressionAttributeNames:  names.Map(),
		ExpressionAttributeValues: values.Map(),
		Limit:                     pageSizeHint(spec.RecordLimit, spec.ScanLimit, spec.BatchSize, 0, 0),
		ConsistentRead:            spec.ConsistentRead,
		ScanIndexForward:          spec.ScanIndexForward,
		Select:                    spec.Select,
		ExclusiveStartKey:         spec.StartKey,
	}
	if spec.IndexName != "" {
		indexName := spec.IndexName
		req.IndexName = &indexName
	}
	return req, nil
}

// pageSizeHint computes the page-size hint for the next request: the minimum
// of the remaining record allowance, the remaining scan allowance, and the
// caller's batch size, considering only caps that are set. Nil means no cap
// is active and the store's default page size applies.
func pageSizeHint(recordLimit, scanLimit, batchSize *int, matched, scanned int) *int32 {
	var hint *int32
	consider := func(n int) {
		if n < 1 {
			n = 1
		}
		v := int32(n)
		if hint == nil || v < *hint {
			hint = &v
		}
	}
	if recordLimit != nil {
		consider(*recordLimit - matched)
	}
	if scanLimit != nil {
		consider(*scanLimit - scanned)
	}
	if batchSize != nil {
		consider(*batchSize)
	}
	return hint
}
