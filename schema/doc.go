/*
Package schema manages table key-schema metadata for QueryFlow.

The request builder needs to know the partition and sort key attribute names
of the table (or secondary index) being queried; this package holds them in a
thread-safe registry keyed by table name.

Schemas can be registered in code:

	schema.RegisterTable(schema.Table{
	    Name: "orders",
	    Key:  schema.Key{HashKey: "UserId", RangeKey: "OrderId"},
	    Indexes: map[string]schema.Key{
	        "GSI1": {HashKey: "Status", RangeKey: "CreatedAt"},
	    },
	})

or loaded from a YAML file during initialization:

	if err := schema.LoadFile("tables.yaml"); err != nil {
	    log.Fatal(err)
	}

The registry should be populated before queries are built, typically in
init() functions or application startup.
*/
package schema
