// model/request.go
package model

import (
	"fmt"
	"time"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
	RequestReturned RequestStatus = "Returned"
)

// ParseStatus rejects any value outside the closed status set.
func ParseStatus(s string) (RequestStatus, error) {
	switch st := RequestStatus(s); st {
	case RequestPending, RequestApproved, RequestRejected, RequestReturned:
		return st, nil
	}
	return "", fmt.Errorf("unknown request status %q", s)
}

type RequestAction string

const (
	ActionApprove RequestAction = "approve"
	ActionReject  RequestAction = "reject"
	ActionReturn  RequestAction = "return"
)

// transitions is the full state machine: each action is legal from exactly
// one status and lands in exactly one status. Pending is the initial state;
// Rejected and Returned are terminal.
var transitions = map[RequestAction]struct{ From, To RequestStatus }{
	ActionApprove: {RequestPending, RequestApproved},
	ActionReject:  {RequestPending, RequestRejected},
	ActionReturn:  {RequestApproved, RequestReturned},
}

// TransitionFor returns the required current status and the resulting status
// for an action, or ok=false for an unknown action.
func TransitionFor(a RequestAction) (from, to RequestStatus, ok bool) {
	t, ok := transitions[a]
	return t.From, t.To, ok
}

// BorrowRequest is the ledger record for one borrow attempt. Rows are never
// deleted, only status-advanced; Days and TotalDue are set exactly when the
// status becomes Returned.
type BorrowRequest struct {
	ID          int64         `json:"id"`
	ResourceID  int64         `json:"resource_id"`
	BorrowerID  int64         `json:"borrower_id"`
	OwnerID     int64         `json:"owner_id"`
	Status      RequestStatus `json:"status"`
	RequestedAt time.Time     `json:"requested_at"`
	DecidedAt   *time.Time    `json:"decided_at,omitempty"`
	ReturnedAt  *time.Time    `json:"returned_at,omitempty"`
	Days        *int          `json:"days,omitempty"`
	TotalDue    *float64      `json:"total_due,omitempty"`
}
