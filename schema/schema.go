/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	qferrors "github.com/suparena/queryflow/errors"
)

// Key names the composite primary key of a table or secondary index.
type Key struct {
	// HashKey is the partition key attribute name.
	HashKey string `yaml:"hash_key"`
	// RangeKey is the sort key attribute name; empty for hash-only keys.
	RangeKey string `yaml:"range_key,omitempty"`
}

// Table describes the key schema of one DynamoDB table, which the request
// builder consults for hash and range key attribute names.
type Table struct {
	Name    string         `yaml:"name"`
	Key     Key            `yaml:",inline"`
	Indexes map[string]Key `yaml:"indexes,omitempty"`
}

// KeyFor returns the key schema to query against: the base table key when
// indexName is empty, otherwise the named secondary index's key.
func (t Table) KeyFor(indexName string) (Key, error) {
	if indexName == "" {
		return t.Key, nil
	}
	key, ok := t.Indexes[indexName]
	if !ok {
		return Key{}, qferrors.NewNoTableSchemaError(t.Name, indexName)
	}
	return key, nil
}

// Validate checks that the schema names a table and a partition key.
func (t Table) Validate() error {
	if t.Name == "" {
		return qferrors.NewInvalidQueryError("name", "table name is required")
	}
	if t.Key.HashKey == "" {
		return qferrors.NewInvalidQueryError("hash_key", "partition key name is required")
	}
	for idx, key := range t.Indexes {
		if key.HashKey == "" {
			return qferrors.NewInvalidQueryError("indexes", "index "+idx+" has no partition key name")
		}
	}
	return nil
}
