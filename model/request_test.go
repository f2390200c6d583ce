package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Approved", "Rejected", "Returned"} {
		st, err := ParseStatus(s)
		require.NoError(t, err)
		require.EqualValues(t, s, st)
	}
	for _, s := range []string{"", "pending", "APPROVED", "Cancelled", "Active"} {
		_, err := ParseStatus(s)
		require.Error(t, err, "status %q should be rejected", s)
	}
}

func TestTransitionTable(t *testing.T) {
	from, to, ok := TransitionFor(ActionApprove)
	require.True(t, ok)
	require.Equal(t, RequestPending, from)
	require.Equal(t, RequestApproved, to)

	from, to, ok = TransitionFor(ActionReject)
	require.True(t, ok)
	require.Equal(t, RequestPending, from)
	require.Equal(t, RequestRejected, to)

	from, to, ok = TransitionFor(ActionReturn)
	require.True(t, ok)
	require.Equal(t, RequestApproved, from)
	require.Equal(t, RequestReturned, to)

	_, _, ok = TransitionFor(RequestAction("cancel"))
	require.False(t, ok)
}
