// repository/request/repo.go
package requestrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/omjee001/student-resource-rental/model"
)

var (
	// ErrNotFound means no request with that id exists.
	ErrNotFound = errors.New("request not found")
	// ErrConflict means the stored status no longer matched the expected
	// status when ApplyTransition ran; a competing action won.
	ErrConflict = errors.New("request status conflict")
	// ErrDuplicate means the borrower already holds an active (Pending or
	// Approved) request for the resource.
	ErrDuplicate = errors.New("active request already exists")
)

// Transition carries the fields written alongside a status change. Nil
// fields keep their stored value.
type Transition struct {
	To         model.RequestStatus
	DecidedAt  *time.Time
	ReturnedAt *time.Time
	Days       *int
	TotalDue   *float64
}

// RequestRow is a request joined with display fields for list views.
type RequestRow struct {
	ID            int64               `json:"id"`
	ResourceID    int64               `json:"resource_id"`
	ResourceTitle string              `json:"resource_title"`
	OwnerEmail    string              `json:"owner_email"`
	BorrowerEmail string              `json:"borrower_email"`
	Status        model.RequestStatus `json:"status"`
	RequestedAt   time.Time           `json:"requested_at"`
	DecidedAt     *time.Time          `json:"decided_at,omitempty"`
	ReturnedAt    *time.Time          `json:"returned_at,omitempty"`
	Days          *int                `json:"days,omitempty"`
	TotalDue      *float64            `json:"total_due,omitempty"`
}

type Repo interface {
	Create(ctx context.Context, req *model.BorrowRequest) error
	Get(ctx context.Context, id int64) (*model.BorrowRequest, error)

	// HasActive reports whether the borrower already has a Pending or
	// Approved request for the resource.
	HasActive(ctx context.Context, resourceID, borrowerID int64) (bool, error)

	// ApplyTransition writes the transition only if the stored status still
	// equals expected, otherwise ErrConflict (or ErrNotFound for an unknown
	// id). This is the single synchronization point for the lifecycle.
	ApplyTransition(ctx context.Context, id int64, expected model.RequestStatus, tr Transition) (*model.BorrowRequest, error)

	ListByOwner(ctx context.Context, ownerID int64) ([]RequestRow, error)
	ListByBorrower(ctx context.Context, borrowerID int64) ([]RequestRow, error)
	CountPendingByOwner(ctx context.Context, ownerID int64) (int64, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const requestCols = `
	id, resource_id, borrower_id, owner_id, status,
	requested_at, decided_at, returned_at, days, total_due`

// Create inserts a Pending row. A partial unique index on
// (resource_id, borrower_id) WHERE status IN ('Pending','Approved') backs
// the one-active-request rule, so two racing inserts cannot both land.
func (r *repo) Create(ctx context.Context, req *model.BorrowRequest) error {
	const q = `
		INSERT INTO borrow_requests (resource_id, borrower_id, owner_id, status, requested_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, q,
		req.ResourceID, req.BorrowerID, req.OwnerID, req.Status, req.RequestedAt,
	).Scan(&req.ID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrDuplicate
	}
	return err
}

func (r *repo) Get(ctx context.Context, id int64) (*model.BorrowRequest, error) {
	const q = `
		SELECT` + requestCols + `
		FROM borrow_requests
		WHERE id = $1`
	req, err := scanRequest(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *repo) HasActive(ctx context.Context, resourceID, borrowerID int64) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM borrow_requests
			WHERE resource_id = $1
			AND borrower_id = $2
			AND status IN ($3, $4)
		)`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, resourceID, borrowerID,
		model.RequestPending, model.RequestApproved).Scan(&exists)
	return exists, err
}

// ApplyTransition relies on the status predicate in the UPDATE itself: of two
// concurrent callers with the same expected status, exactly one matches a row
// and the other falls through to the conflict check.
func (r *repo) ApplyTransition(ctx context.Context, id int64, expected model.RequestStatus, tr Transition) (*model.BorrowRequest, error) {
	const q = `
		UPDATE borrow_requests
		SET status      = $2,
			decided_at  = COALESCE($3, decided_at),
			returned_at = COALESCE($4, returned_at),
			days        = COALESCE($5, days),
			total_due   = COALESCE($6, total_due)
		WHERE id = $1 AND status = $7
		RETURNING` + requestCols
	req, err := scanRequest(r.db.QueryRowContext(ctx, q,
		id, tr.To, tr.DecidedAt, tr.ReturnedAt, tr.Days, tr.TotalDue, expected,
	))
	if errors.Is(err, sql.ErrNoRows) {
		// Either the id is unknown or another transition got there first.
		if _, gerr := r.Get(ctx, id); gerr != nil {
			return nil, gerr
		}
		return nil, ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *repo) ListByOwner(ctx context.Context, ownerID int64) ([]RequestRow, error) {
	const q = `
		SELECT
			br.id, br.resource_id, r.title,
			ou.email AS owner_email, bu.email AS borrower_email,
			br.status, br.requested_at, br.decided_at, br.returned_at,
			br.days, br.total_due
		FROM borrow_requests br
		JOIN resources r ON r.id = br.resource_id
		JOIN users ou ON ou.id = br.owner_id
		JOIN users bu ON bu.id = br.borrower_id
		WHERE br.owner_id = $1
		ORDER BY br.requested_at DESC, br.id DESC`
	return r.listRows(ctx, q, ownerID)
}

func (r *repo) ListByBorrower(ctx context.Context, borrowerID int64) ([]RequestRow, error) {
	const q = `
		SELECT
			br.id, br.resource_id, r.title,
			ou.email AS owner_email, bu.email AS borrower_email,
			br.status, br.requested_at, br.decided_at, br.returned_at,
			br.days, br.total_due
		FROM borrow_requests br
		JOIN resources r ON r.id = br.resource_id
		JOIN users ou ON ou.id = br.owner_id
		JOIN users bu ON bu.id = br.borrower_id
		WHERE br.borrower_id = $1
		ORDER BY br.requested_at DESC, br.id DESC`
	return r.listRows(ctx, q, borrowerID)
}

func (r *repo) CountPendingByOwner(ctx context.Context, ownerID int64) (int64, error) {
	const q = `
		SELECT COUNT(*)
		FROM borrow_requests
		WHERE owner_id = $1 AND status = $2`
	var n int64
	err := r.db.QueryRowContext(ctx, q, ownerID, model.RequestPending).Scan(&n)
	return n, err
}

func (r *repo) listRows(ctx context.Context, q string, args ...any) ([]RequestRow, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RequestRow
	for rows.Next() {
		var row RequestRow
		var status string
		if err := rows.Scan(
			&row.ID, &row.ResourceID, &row.ResourceTitle,
			&row.OwnerEmail, &row.BorrowerEmail,
			&status, &row.RequestedAt, &row.DecidedAt, &row.ReturnedAt,
			&row.Days, &row.TotalDue,
		); err != nil {
			return nil, err
		}
		st, err := model.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		row.Status = st
		out = append(out, row)
	}
	return out, rows.Err()
}

type rowScanner interface{ Scan(dest ...any) error }

func scanRequest(s rowScanner) (*model.BorrowRequest, error) {
	var req model.BorrowRequest
	var status string
	if err := s.Scan(
		&req.ID, &req.ResourceID, &req.BorrowerID, &req.OwnerID, &status,
		&req.RequestedAt, &req.DecidedAt, &req.ReturnedAt, &req.Days, &req.TotalDue,
	); err != nil {
		return nil, err
	}
	st, err := model.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	req.Status = st
	return &req, nil
}
