/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"os"
	"path/filepath"
	"testing"

	qferrors "github.com/suparena/queryflow/errors"
)

func TestKeyFor(t *testing.T) {
	table := Table{
		Name: "Orders",
		Key:  Key{HashKey: "CustomerId", RangeKey: "PlacedAt"},
		Indexes: map[string]Key{
			"StatusIndex": {HashKey: "Status", RangeKey: "UpdatedAt"},
		},
	}

	t.Run("BaseKey", func(t *testing.T) {
		key, err := table.KeyFor("")
		if err != nil {
			t.Fatalf("KeyFor failed: %v", err)
		}
		if key.HashKey != "CustomerId" || key.RangeKey != "PlacedAt" {
			t.Fatalf("Unexpected base key %+v", key)
		}
	})

	t.Run("IndexKey", func(t *testing.T) {
		key, err := table.KeyFor("StatusIndex")
		if err != nil {
			t.Fatalf("KeyFor failed: %v", err)
		}
		if key.HashKey != "Status" || key.RangeKey != "UpdatedAt" {
			t.Fatalf("Unexpected index key %+v", key)
		}
	})

	t.Run("UnknownIndex", func(t *testing.T) {
		_, err := table.KeyFor("NoSuchIndex")
		if !qferrors.IsNoTableSchema(err) {
			t.Fatalf("Expected no-table-schema error, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		table   Table
		wantErr bool
	}{
		{"Valid", Table{Name: "T", Key: Key{HashKey: "PK"}}, false},
		{"HashOnlyIndex", Table{Name: "T", Key: Key{HashKey: "PK"}, Indexes: map[string]Key{"G": {HashKey: "GPK"}}}, false},
		{"MissingName", Table{Key: Key{HashKey: "PK"}}, true},
		{"MissingHashKey", Table{Name: "T"}, true},
		{"IndexMissingHashKey", Table{Name: "T", Key: Key{HashKey: "PK"}, Indexes: map[string]Key{"G": {}}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.table.Validate()
			if tc.wantErr && !qferrors.IsInvalidQuery(err) {
				t.Fatalf("Expected invalid query error, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("Expected valid schema, got %v", err)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	t.Run("RegisterAndGet", func(t *testing.T) {
		table := Table{Name: "RegistryGetTest", Key: Key{HashKey: "PK"}}
		if err := RegisterTable(table); err != nil {
			t.Fatalf("RegisterTable failed: %v", err)
		}

		got, err := GetTable("RegistryGetTest")
		if err != nil {
			t.Fatalf("GetTable failed: %v", err)
		}
		if got.Key.HashKey != "PK" {
			t.Fatalf("Unexpected table %+v", got)
		}

		found := false
		for _, name := range Tables() {
			if name == "RegistryGetTest" {
				found = true
			}
		}
		if !found {
			t.Fatal("Expected RegistryGetTest listed in Tables()")
		}
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		table := Table{Name: "RegistryDupTest", Key: Key{HashKey: "PK"}}
		if err := RegisterTable(table); err != nil {
			t.Fatalf("RegisterTable failed: %v", err)
		}
		if err := RegisterTable(table); err == nil {
			t.Fatal("Expected duplicate registration to fail")
		}
	})

	t.Run("UnknownTable", func(t *testing.T) {
		_, err := GetTable("RegistryUnknownTest")
		if !qferrors.IsNoTableSchema(err) {
			t.Fatalf("Expected no-table-schema error, got %v", err)
		}
	})

	t.Run("InvalidSchemaRejected", func(t *testing.T) {
		if err := RegisterTable(Table{Name: "RegistryInvalidTest"}); err == nil {
			t.Fatal("Expected invalid schema to fail registration")
		}
	})
}

const sampleYAML = `
tables:
  - name: YamlOrders
    hash_key: CustomerId
    range_key: PlacedAt
    indexes:
      StatusIndex:
        hash_key: Status
        range_key: UpdatedAt
  - name: YamlCounters
    hash_key: PK
`

func TestParse(t *testing.T) {
	t.Run("DecodesTables", func(t *testing.T) {
		tables, err := Parse([]byte(sampleYAML))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if len(tables) != 2 {
			t.Fatalf("Expected 2 tables, got %d", len(tables))
		}

		orders := tables[0]
		if orders.Name != "YamlOrders" || orders.Key.HashKey != "CustomerId" || orders.Key.RangeKey != "PlacedAt" {
			t.Fatalf("Unexpected table %+v", orders)
		}
		idx, ok := orders.Indexes["StatusIndex"]
		if !ok || idx.HashKey != "Status" || idx.RangeKey != "UpdatedAt" {
			t.Fatalf("Unexpected index %+v", orders.Indexes)
		}

		if tables[1].Key.RangeKey != "" {
			t.Fatalf("Expected hash-only key, got %+v", tables[1].Key)
		}
	})

	t.Run("RejectsMalformedYAML", func(t *testing.T) {
		if _, err := Parse([]byte("tables: [not a table")); err == nil {
			t.Fatal("Expected parse failure")
		}
	})

	t.Run("RejectsInvalidSchema", func(t *testing.T) {
		if _, err := Parse([]byte("tables:\n  - name: NoKey\n")); err == nil {
			t.Fatal("Expected validation failure")
		}
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o600); err != nil {
		t.Fatalf("Failed to write schema file: %v", err)
	}

	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if _, err := GetTable("YamlOrders"); err != nil {
		t.Fatalf("Expected YamlOrders registered, got %v", err)
	}
	if _, err := GetTable("YamlCounters"); err != nil {
		t.Fatalf("Expected YamlCounters registered, got %v", err)
	}

	t.Run("MissingFile", func(t *testing.T) {
		if err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Fatal("Expected error for missing file")
		}
	})
}
