/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/queryflow/mock"
	"github.com/suparena/queryflow/querymodels"
)

// noDelay keeps throttle tests fast.
func noDelay(int) time.Duration { return 0 }

func newTestPager(t *testing.T, client *mock.QueryClient, opts Options, execOpts ...querymodels.ExecOption) *Pager {
	t.Helper()
	spec, err := ParseOptions(testTable(), opts)
	require.NoError(t, err)
	pager, err := NewPager(client, spec, execOpts...)
	require.NoError(t, err)
	return pager
}

func TestPagerCursorPropagation(t *testing.T) {
	client := mock.NewQueryClient(
		mock.Page(mock.Items("a", 2), 2, mock.Cursor("after-a")),
		mock.Page(mock.Items("b", 2), 2, nil),
	)
	pager := newTestPager(t, client, Options{OptHashValue: "u-17"})
	ctx := context.Background()

	first, err := pager.Next(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Len(t, first.Items, 2)
	assert.Equal(t, 1, first.Meta.PageNumber)
	assert.False(t, pager.Done())

	second, err := pager.Next(ctx)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, 2, second.Meta.PageNumber)
	assert.True(t, pager.Done())

	calls := client.Calls()
	require.Len(t, calls, 2)
	assert.Nil(t, calls[0].ExclusiveStartKey)
	assert.Equal(t, mock.Cursor("after-a"), calls[1].ExclusiveStartKey)

	// Terminated sequence yields (nil, nil) and sends nothing further.
	done, err := pager.Next(ctx)
	require.NoError(t, err)
	assert.Nil(t, done)
	assert.Equal(t, 2, client.CallCount())
}

func TestPagerNoRequestBeforeNext(t *testing.T) {
	client := mock.NewQueryClient(
		mock.Page(mock.Items("a", 1), 1, nil),
	)
	_ = newTestPager(t, client, Options{OptHashValue: "u-17"})
	assert.Zero(t, client.CallCount())
}

func TestPagerRecordLimit(t *testing.T) {
	// Three pages of three are available, but record_limit 5 must stop the
	// sequence after the second response, trimmed to two items.
	client := mock.NewQueryClient(
		mock.Page(mock.Items("a", 3), 3, mock.Cursor("after-a")),
		mock.Page(mock.Items("b", 3), 3, mock.Cursor("after-b")),
		mock.Page(mock.Items("c", 3), 3, nil),
	)
	pager := newTestPager(t, client, Options{
		OptHashValue:   "u-17",
		OptRecordLimit: 5,
	})
	ctx := context.Background()

	first, err := pager.Next(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Len(t, first.Items, 3)

	second, err := pager.Next(ctx)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Len(t, second.Items, 2)
	assert.True(t, pager.Done())

	third, err := pager.Next(ctx)
	require.NoError(t, err)
	assert.Nil(t, third)
	assert.Equal(t, 2, client.CallCount())

	// The page-size hint shrinks to the remaining allowance.
	calls := client.Calls()
	require.NotNil(t, calls[0].Limit)
	assert.Equal(t, int32(5), *calls[0].Limit)
	require.NotNil(t, calls[1].Limit)
	assert.Equal(t, int32(2), *calls[1].Limit)
}

func TestPagerScanLimit(t *testing.T) {
	// The store scans 10 items for page one; scan_limit 10 ends the sequence
	// there even though a cursor was offered, and nothing is trimmed.
	client := mock.NewQueryClient(
		mock.Page(mock.Items("a", 2), 10, mock.Cursor("after-a")),
	)
	pager := newTestPager(t, client, Options{
		OptHashValue: "u-17",
		OptScanLimit: 10,
	})

	page, err := pager.Next(context.Background())
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int32(10), page.ScannedCount)
	assert.True(t, pager.Done())
	assert.Equal(t, 1, client.CallCount())
}

func TestPagerBatchSize(t *testing.T) {
	client := mock.NewQueryClient(
		mock.Page(mock.Items("a", 2), 2, mock.Cursor("after-a")),
		mock.Page(mock.Items("b", 2), 2, nil),
	)
	pager := newTestPager(t, client, Options{
		OptHashValue: "u-17",
		OptBatchSize: 2,
	})
	ctx := context.Background()

	for {
		page, err := pager.Next(ctx)
		require.NoError(t, err)
		if page == nil {
			break
		}
	}

	for _, call := range client.Calls() {
		require.NotNil(t, call.Limit)
		assert.Equal(t, int32(2), *call.Limit)
	}
}

func TestPagerThrottleRetry(t *testing.T) {
	client := mock.NewQueryClient(
		mock.Throttle(),
		mock.Throttle(),
		mock.Page(mock.Items("a", 1), 1, nil),
	)
	pager := newTestPager(t, client, Options{OptHashValue: "u-17"},
		querymodels.WithBackoff(noDelay))

	page, err := pager.Next(context.Background())
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.Meta.ThrottleRetries)
	assert.Equal(t, 3, client.CallCount())
}

func TestPagerThrottleRetriesExhausted(t *testing.T) {
	client := mock.NewQueryClient(
		mock.Throttle(),
		mock.Throttle(),
		mock.Throttle(),
	)
	pager := newTestPager(t, client, Options{OptHashValue: "u-17"},
		querymodels.WithBackoff(noDelay),
		querymodels.WithMaxThrottleRetries(2))

	_, err := pager.Next(context.Background())
	require.Error(t, err)
	assert.True(t, IsThrottle(err))
	assert.Equal(t, 3, client.CallCount())
}

func TestPagerNonRetryableError(t *testing.T) {
	boom := errors.New("access denied")
	client := mock.NewQueryClient(mock.Response{Err: boom})
	pager := newTestPager(t, client, Options{OptHashValue: "u-17"})
	ctx := context.Background()

	_, err := pager.Next(ctx)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, client.CallCount())
	assert.True(t, pager.Done())

	// The failure is sticky and no further request goes out.
	_, err = pager.Next(ctx)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, client.CallCount())
}

func TestPagerCancelDuringBackoff(t *testing.T) {
	client := mock.NewQueryClient(mock.Throttle(), mock.Throttle())
	pager := newTestPager(t, client, Options{OptHashValue: "u-17"},
		querymodels.WithBackoff(func(int) time.Duration { return time.Minute }))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := pager.Next(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPagerSeedsStartKey(t *testing.T) {
	client := mock.NewQueryClient(
		mock.Page(mock.Items("a", 1), 1, nil),
	)
	pager := newTestPager(t, client, Options{
		OptHashValue:         "u-17",
		OptExclusiveStartKey: mock.Cursor("resume-here"),
	})

	_, err := pager.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mock.Cursor("resume-here"), client.Calls()[0].ExclusiveStartKey)
}

func TestPagerStream(t *testing.T) {
	client := mock.NewQueryClient(
		mock.Page(mock.Items("a", 2), 2, mock.Cursor("after-a")),
		mock.Page(mock.Items("b", 1), 1, nil),
	)
	pager := newTestPager(t, client, Options{OptHashValue: "u-17"})

	var pages int
	var items int
	for result := range pager.Stream(context.Background(), 1) {
		require.NoError(t, result.Err)
		pages++
		items += len(result.Page.Items)
	}
	assert.Equal(t, 2, pages)
	assert.Equal(t, 3, items)
}

func TestPagerStreamDeliversError(t *testing.T) {
	boom := errors.New("boom")
	client := mock.NewQueryClient(
		mock.Page(mock.Items("a", 1), 1, mock.Cursor("after-a")),
		mock.Response{Err: boom},
	)
	pager := newTestPager(t, client, Options{OptHashValue: "u-17"})

	var last PageResult
	for result := range pager.Stream(context.Background(), 1) {
		last = result
	}
	require.ErrorIs(t, last.Err, boom)
}
