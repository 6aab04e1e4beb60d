/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package expression

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	namePrefix  = "#_a"
	valuePrefix = ":_a"
)

// NameTable maps attribute names to expression name placeholders.
//
// One table is shared across the key-condition, filter, and projection
// compilation steps of a single request, so a name that appears in several
// expressions is minted exactly one token. Tokens come from a monotonic
// counter (#_a0, #_a1, ...) and never collide within a request.
type NameTable struct {
	seq    int
	tokens map[string]string // attribute name -> token
	names  map[string]string // token -> attribute name
}

// NewNameTable returns an empty name placeholder table.
func NewNameTable() *NameTable {
	return &NameTable{
		tokens: make(map[string]string),
		names:  make(map[string]string),
	}
}

// Token returns the placeholder for the given attribute name, minting a new
// one on first use and reusing it afterwards.
func (t *NameTable) Token(attr string) string {
	if tok, ok := t.tokens[attr]; ok {
		return tok
	}
	tok := fmt.Sprintf("%s%d", namePrefix, t.seq)
	t.seq++
	t.tokens[attr] = tok
	t.names[tok] = attr
	return tok
}

// Len reports the number of minted placeholders.
func (t *NameTable) Len() int {
	return len(t.names)
}

// Map returns the token -> attribute name mapping for the wire request,
// or nil when no placeholder was minted.
func (t *NameTable) Map() map[string]string {
	if len(t.names) == 0 {
		return nil
	}
	out := make(map[string]string, len(t.names))
	for tok, attr := range t.names {
		out[tok] = attr
	}
	return out
}

// ValueTable maps literal operand values to expression value placeholders.
//
// Unlike NameTable, every bind mints a fresh token (:_a0, :_a1, ...), even
// when two operands are equal: value identity is per occurrence, not per
// literal.
type ValueTable struct {
	seq    int
	values map[string]types.AttributeValue
}

// NewValueTable returns an empty value placeholder table.
func NewValueTable() *ValueTable {
	return &ValueTable{values: make(map[string]types.AttributeValue)}
}

// Bind marshals the operand and returns a freshly minted placeholder for it.
func (t *ValueTable) Bind(operand any) (string, error) {
	av, err := marshalOperand(operand)
	if err != nil {
		return "", err
	}
	tok := fmt.Sprintf("%s%d", valuePrefix, t.seq)
	t.seq++
	t.values[tok] = av
	return tok, nil
}

// Len reports the number of bound values.
func (t *ValueTable) Len() int {
	return len(t.values)
}

// Map returns the token -> value mapping for the wire request, or nil when
// no value was bound.
func (t *ValueTable) Map() map[string]types.AttributeValue {
	if len(t.values) == 0 {
		return nil
	}
	out := make(map[string]types.AttributeValue, len(t.values))
	for tok, av := range t.values {
		out[tok] = av
	}
	return out
}

func marshalOperand(operand any) (types.AttributeValue, error) {
	if av, ok := operand.(types.AttributeValue); ok {
		return av, nil
	}
	av, err := attributevalue.Marshal(operand)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal operand %v: %w", operand, err)
	}
	return av, nil
}
