/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type codedError struct{ code string }

func (e *codedError) Error() string     { return e.code }
func (e *codedError) ErrorCode() string { return e.code }

func TestIsThrottle(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"ProvisionedThroughputExceeded", &types.ProvisionedThroughputExceededException{}, true},
		{"RequestLimitExceeded", &types.RequestLimitExceeded{}, true},
		{"WrappedThrottle", fmt.Errorf("query failed: %w", &types.ProvisionedThroughputExceededException{}), true},
		{"CodedThrottling", &codedError{code: "ThrottlingException"}, true},
		{"CodedRequestLimit", &codedError{code: "RequestLimitExceeded"}, true},
		{"CodedOther", &codedError{code: "AccessDeniedException"}, false},
		{"ResourceNotFound", &types.ResourceNotFoundException{}, false},
		{"Plain", errors.New("boom"), false},
		{"Nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsThrottle(tc.err); got != tc.want {
				t.Fatalf("IsThrottle(%v) = %v, expected %v", tc.err, got, tc.want)
			}
		})
	}
}
