/*
Package query compiles declarative query options into DynamoDB requests and
executes them as a lazy sequence of response pages.

Compilation:

ParseOptions validates a loosely typed option set against a table's key
schema and Build turns the result into one wire-ready request. Recognized
option keys cover the hash key value, range key operators (range_eq,
range_begins_with, range_between, ...), projection, pagination caps
(record_limit, scan_limit, batch_size), and passthrough scalars; any other
key becomes a filter condition:

	spec, err := query.ParseOptions(table, query.Options{
	    query.OptHashValue:       "u-17",
	    query.OptRangeBeginsWith: "2025-",
	    query.OptRecordLimit:     50,
	    "Status":                 "shipped", // filter condition
	})

Execution:

NewPager prepares a three-stage pipeline around the raw send call:

  - the start-key stage propagates the continuation cursor and terminates
    the sequence when the store stops returning one
  - the limit stage sets the page-size hint from the remaining allowances,
    accounts scanned and matched counts, and trims the final page when a
    cap is reached
  - the backoff stage absorbs throttling errors, sleeping per the configured
    policy and retrying until success or cancellation

Pages are pulled on demand:

	pager, err := query.NewPager(client, spec)
	for {
	    page, err := pager.Next(ctx)
	    if err != nil || page == nil {
	        break
	    }
	    // consume page.Items
	}

Throttling never surfaces to the consumer; all other errors abort the
sequence immediately.
*/
package query
