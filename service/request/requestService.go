package requestsvc

import (
	"context"
	"errors"
	"time"

	"github.com/omjee001/student-resource-rental/model"
	requestrepo "github.com/omjee001/student-resource-rental/repository/request"
)

// RequestRow = repository shape
type RequestRow = requestrepo.RequestRow

// Transition = repository shape
type Transition = requestrepo.Transition

// Store is the request ledger. All mutation goes through ApplyTransition's
// compare-on-expected-status; the service never retries a conflict, the
// caller re-reads and decides.
type Store interface {
	Create(ctx context.Context, req *model.BorrowRequest) error
	Get(ctx context.Context, id int64) (*model.BorrowRequest, error)
	HasActive(ctx context.Context, resourceID, borrowerID int64) (bool, error)
	ApplyTransition(ctx context.Context, id int64, expected model.RequestStatus, tr Transition) (*model.BorrowRequest, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]RequestRow, error)
	ListByBorrower(ctx context.Context, borrowerID int64) ([]RequestRow, error)
	CountPendingByOwner(ctx context.Context, ownerID int64) (int64, error)
}

// Resources is the catalog lookup this service consumes. Get returns
// (nil, nil) for an unknown id.
type Resources interface {
	Get(ctx context.Context, id int64) (*model.Resource, error)
}

// ReturnResult is the bill presented to the borrower on return.
type ReturnResult struct {
	Days           int      `json:"days"`
	TotalDue       float64  `json:"total_due"`
	PaymentMethods []string `json:"payment_methods"`
}

type Service interface {
	// Create: open a Pending request for a resource on behalf of the actor.
	Create(ctx context.Context, actor model.Identity, resourceID int64) error

	// Decide: owner approves or rejects a Pending request.
	Decide(ctx context.Context, actor model.Identity, requestID int64, action model.RequestAction) error

	// Return: borrower closes an Approved request; computes the bill.
	Return(ctx context.Context, actor model.Identity, requestID int64) (*ReturnResult, error)

	// Incoming: requests against the actor's resources, newest first.
	Incoming(ctx context.Context, actor model.Identity) ([]RequestRow, error)

	// Mine: requests the actor made, newest first.
	Mine(ctx context.Context, actor model.Identity) ([]RequestRow, error)

	// PendingCount: live count of the actor's requests awaiting decision.
	PendingCount(ctx context.Context, actor model.Identity) (int64, error)
}

// ----- Service implementation -----

type service struct {
	store Store
	res   Resources
	now   func() time.Time
}

func New(store Store, res Resources) Service {
	return &service{store: store, res: res, now: time.Now}
}

func (s *service) Create(ctx context.Context, actor model.Identity, resourceID int64) error {
	if resourceID <= 0 {
		return makeErr(ErrBadInput)
	}

	res, err := s.res.Get(ctx, resourceID)
	if err != nil {
		return err
	}
	if res == nil {
		return makeErr(ErrResourceNotFound)
	}
	if !canCreate(res, actor) {
		return makeErr(ErrForbidden)
	}

	active, err := s.store.HasActive(ctx, resourceID, actor.ID)
	if err != nil {
		return err
	}
	if active {
		return makeErr(ErrDuplicate)
	}

	req := &model.BorrowRequest{
		ResourceID:  resourceID,
		BorrowerID:  actor.ID,
		OwnerID:     res.OwnerID, // snapshot, never re-derived
		Status:      model.RequestPending,
		RequestedAt: s.now().UTC(),
	}
	// HasActive above is only the friendly fast path; the store's unique
	// index decides races between concurrent creates.
	return s.mapStoreErr(s.store.Create(ctx, req))
}

func (s *service) Decide(ctx context.Context, actor model.Identity, requestID int64, action model.RequestAction) error {
	if action != model.ActionApprove && action != model.ActionReject {
		return makeErr(ErrBadInput)
	}
	from, to, ok := model.TransitionFor(action)
	if !ok {
		return makeErr(ErrBadInput)
	}

	req, err := s.getRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if !canAct(action, req, actor) {
		return makeErr(ErrForbidden)
	}
	if req.Status != from {
		return makeErr(ErrStateConflict)
	}

	decidedAt := s.now().UTC()
	_, err = s.store.ApplyTransition(ctx, requestID, from, Transition{
		To:        to,
		DecidedAt: &decidedAt,
	})
	return s.mapStoreErr(err)
}

func (s *service) Return(ctx context.Context, actor model.Identity, requestID int64) (*ReturnResult, error) {
	from, to, _ := model.TransitionFor(model.ActionReturn)

	req, err := s.getRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !canAct(model.ActionReturn, req, actor) {
		return nil, makeErr(ErrForbidden)
	}
	if req.Status != from {
		return nil, makeErr(ErrStateConflict)
	}

	res, err := s.res.Get(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, makeErr(ErrResourceNotFound)
	}

	decidedAt := req.RequestedAt
	if req.DecidedAt != nil {
		decidedAt = *req.DecidedAt
	}
	returnedAt := s.now().UTC()
	days, totalDue := ComputeBill(decidedAt, returnedAt, res.PricePerDay)

	_, err = s.store.ApplyTransition(ctx, requestID, from, Transition{
		To:         to,
		ReturnedAt: &returnedAt,
		Days:       &days,
		TotalDue:   &totalDue,
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	return &ReturnResult{
		Days:           days,
		TotalDue:       totalDue,
		PaymentMethods: PaymentMethods,
	}, nil
}

func (s *service) Incoming(ctx context.Context, actor model.Identity) ([]RequestRow, error) {
	return s.store.ListByOwner(ctx, actor.ID)
}

func (s *service) Mine(ctx context.Context, actor model.Identity) ([]RequestRow, error) {
	return s.store.ListByBorrower(ctx, actor.ID)
}

func (s *service) PendingCount(ctx context.Context, actor model.Identity) (int64, error) {
	return s.store.CountPendingByOwner(ctx, actor.ID)
}

func (s *service) getRequest(ctx context.Context, id int64) (*model.BorrowRequest, error) {
	if id <= 0 {
		return nil, makeErr(ErrBadInput)
	}
	req, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	return req, nil
}

func (s *service) mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, requestrepo.ErrNotFound):
		return makeErr(ErrRequestNotFound)
	case errors.Is(err, requestrepo.ErrConflict):
		// A competing transition won the race; surfaced as the same state
		// conflict the precheck would have reported.
		return makeErr(ErrStateConflict)
	case errors.Is(err, requestrepo.ErrDuplicate):
		return makeErr(ErrDuplicate)
	}
	return err
}
