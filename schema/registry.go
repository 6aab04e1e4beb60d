/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"fmt"
	"sync"

	qferrors "github.com/suparena/queryflow/errors"
)

// Process-wide table schema registry, typically populated during
// initialization from code or a YAML file.

var (
	tableRegistry = make(map[string]Table)
	mu            sync.RWMutex
)

// RegisterTable records the key schema for a table. Registering the same
// table name twice is an error to prevent accidental overrides.
func RegisterTable(t Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := tableRegistry[t.Name]; exists {
		return fmt.Errorf("schema registry: table %q already registered", t.Name)
	}
	tableRegistry[t.Name] = t
	return nil
}

// GetTable retrieves the registered schema for a table name.
func GetTable(name string) (Table, error) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := tableRegistry[name]
	if !ok {
		return Table{}, qferrors.NewNoTableSchemaError(name, "")
	}
	return t, nil
}

// Tables returns the names of all registered tables.
func Tables() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(tableRegistry))
	for name := range tableRegistry {
		names = append(names, name)
	}
	return names
}
