/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// IsThrottle reports whether err is a throttling signal from the store, i.e.
// a capacity error that is safe to retry with backoff. Everything else is
// treated as non-retryable by the pipeline.
func IsThrottle(err error) bool {
	var throughput *types.ProvisionedThroughputExceededException
	if errors.As(err, &throughput) {
		return true
	}
	var requestLimit *types.RequestLimitExceeded
	if errors.As(err, &requestLimit) {
		return true
	}

	// Smithy service errors expose their wire code.
	var coded interface{ ErrorCode() string }
	if errors.As(err, &coded) {
		switch coded.ErrorCode() {
		case "ThrottlingException",
			"ProvisionedThroughputExceededException",
			"RequestLimitExceeded":
			return true
		}
	}
	return false
}
