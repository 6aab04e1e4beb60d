/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package expression

import (
	"fmt"
	"strings"

	qferrors "github.com/suparena/queryflow/errors"
)

// Operator identifies a comparison in the fixed query vocabulary.
type Operator string

const (
	Equal          Operator = "eq"
	GreaterThan    Operator = "gt"
	LessThan       Operator = "lt"
	GreaterOrEqual Operator = "gte"
	LessOrEqual    Operator = "lte"
	BeginsWith     Operator = "begins_with"
	Between        Operator = "between"
)

// Condition is one operator applied to an attribute, together with its
// literal operand(s). Between carries two operands; every other operator
// carries exactly one.
type Condition struct {
	Operator Operator
	Operands []any
}

// Condition constructors for the supported vocabulary.

// Eq builds an equality condition.
func Eq(v any) Condition { return Condition{Operator: Equal, Operands: []any{v}} }

// Gt builds a greater-than condition.
func Gt(v any) Condition { return Condition{Operator: GreaterThan, Operands: []any{v}} }

// Lt builds a less-than condition.
func Lt(v any) Condition { return Condition{Operator: LessThan, Operands: []any{v}} }

// Gte builds a greater-or-equal condition.
func Gte(v any) Condition { return Condition{Operator: GreaterOrEqual, Operands: []any{v}} }

// Lte builds a less-or-equal condition.
func Lte(v any) Condition { return Condition{Operator: LessOrEqual, Operands: []any{v}} }

// Prefix builds a begins_with condition.
func Prefix(v any) Condition { return Condition{Operator: BeginsWith, Operands: []any{v}} }

// Range builds a BETWEEN condition over the inclusive [lo, hi] interval.
func Range(lo, hi any) Condition { return Condition{Operator: Between, Operands: []any{lo, hi}} }

// ConditionSet is an ordered mapping of attribute name to its conditions.
//
// Insertion order is preserved so compiled expressions are deterministic.
// Adding a name twice extends its condition list (the compound form: one
// attribute carrying, say, both a lower and an upper bound) rather than
// creating a second entry.
type ConditionSet struct {
	order []string
	conds map[string][]Condition
}

// NewConditionSet returns an empty condition set.
func NewConditionSet() *ConditionSet {
	return &ConditionSet{conds: make(map[string][]Condition)}
}

// Add appends conditions for the given attribute name and returns the set
// for chaining.
func (s *ConditionSet) Add(name string, conds ...Condition) *ConditionSet {
	if _, ok := s.conds[name]; !ok {
		s.order = append(s.order, name)
	}
	s.conds[name] = append(s.conds[name], conds...)
	return s
}

// Len reports the number of distinct attribute names in the set.
func (s *ConditionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Names returns the attribute names in insertion order.
func (s *ConditionSet) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Get returns the conditions recorded for an attribute name.
func (s *ConditionSet) Get(name string) []Condition {
	if s == nil {
		return nil
	}
	return s.conds[name]
}

// Compile converts the condition set into a parameterized expression string,
// combining clauses with AND. Attribute names and literal operands are only
// referenced through placeholders recorded in the two tables, which the
// caller threads through successive Compile and CompileProjection calls.
//
// An empty or nil set compiles to the empty string and leaves both tables
// untouched.
func Compile(set *ConditionSet, names *NameTable, values *ValueTable) (string, error) {
	if set.Len() == 0 {
		return "", nil
	}

	clauses := make([]string, 0, set.Len())
	for _, attr := range set.order {
		tok := names.Token(attr)
		for _, cond := range set.conds[attr] {
			clause, err := compileClause(attr, tok, cond, values)
			if err != nil {
				return "", err
			}
			clauses = append(clauses, clause)
		}
	}
	return strings.Join(clauses, " AND "), nil
}

func compileClause(attr, tok string, cond Condition, values *ValueTable) (string, error) {
	arity := 1
	if cond.Operator == Between {
		arity = 2
	}
	if len(cond.Operands) != arity {
		return "", qferrors.NewInvalidQueryError(attr,
			fmt.Sprintf("operator %q takes %d operand(s), got %d", cond.Operator, arity, len(cond.Operands)))
	}

	switch cond.Operator {
	case Equal, GreaterThan, LessThan, GreaterOrEqual, LessOrEqual:
		v, err := values.Bind(cond.Operands[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s %s", tok, comparator(cond.Operator), v), nil
	case BeginsWith:
		v, err := values.Bind(cond.Operands[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("begins_with(%s, %s)", tok, v), nil
	case Between:
		lo, err := values.Bind(cond.Operands[0])
		if err != nil {
			return "", err
		}
		hi, err := values.Bind(cond.Operands[1])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s BETWEEN %s AND %s", tok, lo, hi), nil
	default:
		return "", qferrors.NewUnsupportedOperatorError(attr, string(cond.Operator))
	}
}

func comparator(op Operator) string {
	switch op {
	case Equal:
		return "="
	case GreaterThan:
		return ">"
	case LessThan:
		return "<"
	case GreaterOrEqual:
		return ">="
	case LessOrEqual:
		return "<="
	}
	return ""
}
