/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	qferrors "github.com/suparena/queryflow/errors"
	"github.com/suparena/queryflow/expression"
	"github.com/suparena/queryflow/schema"
)

// Recognized option keys. Any key outside this list is treated as a filter
// condition on the attribute of that name.
const (
	OptLimit             = "limit"
	OptHashKey           = "hash_key"
	OptHashValue         = "hash_value"
	OptRangeKey          = "range_key"
	OptConsistentRead    = "consistent_read"
	OptScanIndexForward  = "scan_index_forward"
	OptSelect            = "select"
	OptIndexName         = "index_name"
	OptBatchSize         = "batch_size"
	OptExclusiveStartKey = "exclusive_start_key"
	OptRecordLimit       = "record_limit"
	OptScanLimit         = "scan_limit"
	OptProject           = "project"

	OptRangeEq          = "range_eq"
	OptRangeGreaterThan = "range_greater_than"
	OptRangeLessThan    = "range_less_than"
	OptRangeGTE         = "range_gte"
	OptRangeLTE         = "range_lte"
	OptRangeBeginsWith  = "range_begins_with"
	OptRangeBetween     = "range_between"
)

// Options is the inbound, loosely typed option set for one query. Recognized
// keys configure the request; unrecognized keys become filter conditions,
// where the value may be an expression.Condition, a []expression.Condition,
// or a plain literal (shorthand for equality).
type Options map[string]any

// Spec is one validated query specification, ready to compile into a request.
type Spec struct {
	Table schema.Table

	// HashKey and RangeKey are the key attribute names in effect for this
	// query; ParseOptions resolves them from the table schema (or the
	// queried index) unless overridden.
	HashKey  string
	RangeKey string

	HashValue       any
	RangeConditions []expression.Condition
	Filters         *expression.ConditionSet
	Project         []string

	RecordLimit *int
	ScanLimit   *int
	BatchSize   *int

	ConsistentRead   *bool
	ScanIndexForward *bool
	Select           types.Select
	IndexName        string
	StartKey         map[string]types.AttributeValue
}

// ParseOptions validates an option set against the table schema and produces
// a Spec. All validation failures are configuration errors raised here,
// before any request is sent.
func ParseOptions(table schema.Table, opts Options) (*Spec, error) {
	spec := &Spec{Table: table, Filters: expression.NewConditionSet()}

	// The index name decides which key schema applies, so resolve it first.
	if v, ok := opts[OptIndexName]; ok {
		s, err := toString(OptIndexName, v)
		if err != nil {
			return nil, err
		}
		spec.IndexName = s
	}
	key, err := table.KeyFor(spec.IndexName)
	if err != nil {
		return nil, err
	}
	spec.HashKey = key.HashKey
	spec.RangeKey = key.RangeKey

	var limit, recordLimit *int
	var filterKeys []string

	for k, v := range opts {
		switch k {
		case OptIndexName:
			// resolved above
		case OptHashKey:
			spec.HashKey, err = toString(k, v)
		case OptHashValue:
			spec.HashValue = v
		case OptRangeKey:
			spec.RangeKey, err = toString(k, v)
		case OptConsistentRead:
			spec.ConsistentRead, err = toBoolPtr(k, v)
		case OptScanIndexForward:
			spec.ScanIndexForward, err = toBoolPtr(k, v)
		case OptSelect:
			spec.Select, err = toSelect(k, v)
		case OptLimit:
			limit, err = toPositiveIntPtr(k, v)
		case OptRecordLimit:
			recordLimit, err = toPositiveIntPtr(k, v)
		case OptScanLimit:
			spec.ScanLimit, err = toPositiveIntPtr(k, v)
		case OptBatchSize:
			spec.BatchSize, err = toPositiveIntPtr(k, v)
		case OptExclusiveStartKey:
			spec.StartKey, err = toStartKey(k, v)
		case OptProject:
			spec.Project, err = toStrings(k, v)
		case OptRangeEq:
			spec.RangeConditions = append(spec.RangeConditions, expression.Eq(v))
		case OptRangeGreaterThan:
			spec.RangeConditions = append(spec.RangeConditions, expression.Gt(v))
		case OptRangeLessThan:
			spec.RangeConditions = append(spec.RangeConditions, expression.Lt(v))
		case OptRangeGTE:
			spec.RangeConditions = append(spec.RangeConditions, expression.Gte(v))
		case OptRangeLTE:
			spec.RangeConditions = append(spec.RangeConditions, expression.Lte(v))
		case OptRangeBeginsWith:
			spec.RangeConditions = append(spec.RangeConditions, expression.Prefix(v))
		case OptRangeBetween:
			var lo, hi any
			lo, hi, err = toPair(k, v)
			if err == nil {
				spec.RangeConditions = append(spec.RangeConditions, expression.Range(lo, hi))
			}
		default:
			filterKeys = append(filterKeys, k)
		}
		if err != nil {
			return nil, err
		}
	}

	// "limit" is an alias for "record_limit"; conflicting values are a
	// configuration error rather than a silent pick.
	if limit != nil && recordLimit != nil && *limit != *recordLimit {
		return nil, qferrors.NewInvalidQueryError(OptLimit,
			fmt.Sprintf("conflicts with %s (%d vs %d)", OptRecordLimit, *limit, *recordLimit))
	}
	if recordLimit == nil {
		recordLimit = limit
	}
	spec.RecordLimit = recordLimit

	// Sorted so the compiled filter expression is deterministic.
	sort.Strings(filterKeys)
	for _, k := range filterKeys {
		switch v := opts[k].(type) {
		case expression.Condition:
			spec.Filters.Add(k, v)
		case []expression.Condition:
			spec.Filters.Add(k, v...)
		default:
			spec.Filters.Add(k, expression.Eq(v))
		}
	}

	if spec.HashValue == nil {
		return nil, fmt.Errorf("option %q: %w", OptHashValue, qferrors.ErrMissingHashValue)
	}
	if len(spec.RangeConditions) > 0 && spec.RangeKey == "" {
		return nil, qferrors.NewInvalidQueryError(OptRangeKey,
			"range conditions given but the key schema has no range key")
	}
	return spec, nil
}

func toString(opt string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", qferrors.NewInvalidQueryError(opt, fmt.Sprintf("expected string, got %T", v))
	}
	return s, nil
}

func toBoolPtr(opt string, v any) (*bool, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, qferrors.NewInvalidQueryError(opt, fmt.Sprintf("expected bool, got %T", v))
	}
	return &b, nil
}

func toPositiveIntPtr(opt string, v any) (*int, error) {
	var n int
	switch t := v.(type) {
	case int:
		n = t
	case int32:
		n = int(t)
	case int64:
		n = int(t)
	default:
		return nil, qferrors.NewInvalidQueryError(opt, fmt.Sprintf("expected integer, got %T", v))
	}
	if n <= 0 {
		return nil, qferrors.NewInvalidQueryError(opt, fmt.Sprintf("must be positive, got %d", n))
	}
	return &n, nil
}

func toSelect(opt string, v any) (types.Select, error) {
	switch t := v.(type) {
	case types.Select:
		return t, nil
	case string:
		return types.Select(t), nil
	}
	return "", qferrors.NewInvalidQueryError(opt, fmt.Sprintf("expected select value, got %T", v))
}

func toStartKey(opt string, v any) (map[string]types.AttributeValue, error) {
	key, ok := v.(map[string]types.AttributeValue)
	if !ok {
		return nil, qferrors.NewInvalidQueryError(opt,
			fmt.Sprintf("expected map[string]types.AttributeValue, got %T", v))
	}
	return key, nil
}

func toStrings(opt string, v any) ([]string, error) {
	switch t := v.(type) {
	case []string:
		return t, nil
	case string:
		return []string{t}, nil
	}
	return nil, qferrors.NewInvalidQueryError(opt, fmt.Sprintf("expected []string, got %T", v))
}

func toPair(opt string, v any) (any, any, error) {
	switch t := v.(type) {
	case [2]any:
		return t[0], t[1], nil
	case []any:
		if len(t) == 2 {
			return t[0], t[1], nil
		}
	}
	return nil, nil, qferrors.NewInvalidQueryError(opt, "expected exactly two operands")
}
