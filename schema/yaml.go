/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type schemaFile struct {
	Tables []Table `yaml:"tables"`
}

// Parse decodes table schemas from YAML:
//
//	tables:
//	  - name: orders
//	    hash_key: UserId
//	    range_key: OrderId
//	    indexes:
//	      GSI1:
//	        hash_key: Status
//	        range_key: CreatedAt
func Parse(data []byte) ([]Table, error) {
	var f schemaFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse schema file: %w", err)
	}
	for _, t := range f.Tables {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return f.Tables, nil
}

// LoadFile parses a YAML schema file and registers every table it declares.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}
	tables, err := Parse(data)
	if err != nil {
		return err
	}
	for _, t := range tables {
		if err := RegisterTable(t); err != nil {
			return err
		}
	}
	return nil
}
