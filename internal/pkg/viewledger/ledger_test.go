package viewledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const window = 7 * 24 * time.Hour

func TestDecode_MalformedIsEmpty(t *testing.T) {
	for _, raw := range []string{
		"",
		"not base64!!!",
		"bm90IGpzb24",  // "not json"
		"bnVsbA",       // "null"
		"WyJhcnJheSJd", // ["array"]
	} {
		l := Decode(raw)
		require.NotNil(t, l, "Decode(%q)", raw)
		require.Empty(t, l, "Decode(%q)", raw)
	}
}

func TestEncodeDecode_KeepsEntries(t *testing.T) {
	now := time.Now()
	l := Ledger{}
	l.Touch("hello-world", now)
	l.Touch("second-post", now)

	encoded, err := l.Encode()
	require.NoError(t, err)

	got := Decode(encoded)
	require.Len(t, got, 2)
	require.True(t, got.Seen("hello-world", now, window))
	require.True(t, got.Seen("second-post", now, window))
}

func TestSeen_WindowBoundary(t *testing.T) {
	now := time.Now()
	l := Ledger{}
	l.Touch("post", now)

	require.True(t, l.Seen("post", now, window))
	require.True(t, l.Seen("post", now.Add(window-time.Second), window))
	require.False(t, l.Seen("post", now.Add(window), window))
	require.False(t, l.Seen("missing", now, window))
}

func TestPrune_EvictsExpiredFirst(t *testing.T) {
	now := time.Now()
	l := Ledger{}
	l.Touch("fresh", now)
	l.Touch("stale", now.Add(-window-time.Hour))

	l.Prune(now, window, 50)
	require.Len(t, l, 1)
	require.True(t, l.Seen("fresh", now, window))
}

func TestPrune_CapsByRecency(t *testing.T) {
	now := time.Now()
	l := Ledger{}
	for i := 0; i < 60; i++ {
		l.Touch(fmt.Sprintf("post-%d", i), now.Add(time.Duration(i)*time.Second))
	}

	l.Prune(now.Add(time.Minute), window, 50)
	require.Len(t, l, 50)

	// 最旧的 10 条被挤出，最新触达的保留
	require.False(t, l.Seen("post-0", now, window))
	require.False(t, l.Seen("post-9", now, window))
	require.True(t, l.Seen("post-10", now, window))
	require.True(t, l.Seen("post-59", now, window))
}
