/*
Package errors provides semantic error types for the QueryFlow library.

The package separates configuration errors, which are raised while a query is
compiled and before any network call, from runtime errors returned by the
store. All types can be checked with the standard errors.Is() function or the
provided helper functions.

Common Errors:

	var (
	    ErrInvalidQuery        = errors.New("invalid query options")
	    ErrUnsupportedOperator = errors.New("unsupported condition operator")
	    ErrMissingHashValue    = errors.New("missing hash key value")
	    ErrNoTableSchema       = errors.New("no table schema registered")
	)

Usage:

	pager, err := queryflow.New[Order](client, table).Query(opts)
	if err != nil {
	    if errors.IsInvalidQuery(err) {
	        // A bad option or condition; nothing was sent to DynamoDB.
	        return fmt.Errorf("rejecting query: %w", err)
	    }
	    return err
	}

Throttling errors never surface through this package: the execution pipeline
absorbs them and retries with backoff.
*/
package errors
