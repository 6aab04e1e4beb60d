/*
Package queryflow compiles declarative query options into DynamoDB query
requests and executes them as lazy, paginated sequences with automatic
throttle backoff and limit accounting.

The library splits the problem into two halves:
  - Compilation: option sets are validated against a table's key schema and
    turned into a single wire-ready request with collision-free expression
    placeholders (see the expression and query packages)
  - Execution: a staged pipeline drives the request/response cycle, handling
    continuation cursors, page-size hints, result truncation, and throttling
    (see query.Pager)

Key Features:
  - Collision-free placeholder minting shared across key, filter, and
    projection expressions
  - Pull-based page sequences: no request is sent before the consumer asks
  - Automatic retry with configurable backoff on throughput errors
  - Record and scan limits enforced across page boundaries
  - Type-safe item access using Go generics
  - YAML-driven table schema registry
  - Scripted mock client for offline testing

Basic Usage:

	// Register table schemas once at startup
	_ = schema.LoadFile("tables.yaml")

	// Create a typed queryer
	client, _ := query.NewDynamoDBClient(accessKey, secretKey, region)
	users, _ := queryflow.NewForTable[User](client, "Users")

	// Pull pages on demand
	pages, _ := users.Query(query.Options{
	    query.OptHashValue:       "org-42",
	    query.OptRangeBeginsWith: "2025-",
	    query.OptRecordLimit:     100,
	})
	for {
	    page, err := pages.Next(ctx)
	    if err != nil || page == nil {
	        break
	    }
	    // consume page.Items
	}

For more information, see the documentation at https://github.com/suparena/queryflow
*/
package queryflow
