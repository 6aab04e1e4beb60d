/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package querymodels

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Page is one response page yielded by a page sequence. Ownership passes to
// the consumer on yield; the pipeline keeps no reference to it.
type Page struct {
	// Items are the matched records of this page, possibly truncated by the
	// record-limit accounting.
	Items []map[string]types.AttributeValue
	// ScannedCount is the raw number of items the store examined for this page.
	ScannedCount int32
	// LastEvaluatedKey is the continuation cursor the store returned, if any.
	LastEvaluatedKey map[string]types.AttributeValue
	// Meta carries per-page execution metadata.
	Meta PageMeta
}

// PageMeta contains metadata about a yielded page
type PageMeta struct {
	PageNumber      int       // 1-based page number within the sequence
	ThrottleRetries int       // throttled attempts absorbed before this page
	Timestamp       time.Time // when the page was received
}

// StreamResult represents a single item in a streamed query with metadata
type StreamResult[T any] struct {
	Item  T                               // The unmarshaled item
	Raw   map[string]types.AttributeValue // Raw DynamoDB attributes
	Error error                           // Item-specific error, if any
	Meta  StreamMeta                      // Metadata about this item
}

// StreamMeta contains metadata about a streamed item
type StreamMeta struct {
	Index      int64     // Item index in stream (0-based)
	PageNumber int       // DynamoDB page number (1-based)
	Timestamp  time.Time // When item was retrieved
}
