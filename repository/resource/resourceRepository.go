package resourcerepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/omjee001/student-resource-rental/model"
)

type Repo interface {
	Create(ctx context.Context, res *model.Resource) error
	Get(ctx context.Context, id int64) (*model.Resource, error)
	// ListExcludingOwner is the browse view: every listing except the
	// caller's own.
	ListExcludingOwner(ctx context.Context, ownerID int64) ([]model.Resource, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Resource, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const resourceCols = `
	r.id, r.owner_id, u.email, r.title, r.description, r.category,
	r.price_per_day, r.image, r.created_at`

func (r *repo) Create(ctx context.Context, res *model.Resource) error {
	const q = `
		INSERT INTO resources (owner_id, title, description, category, price_per_day, image)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, q,
		res.OwnerID, res.Title, res.Description, res.Category, res.PricePerDay, res.Image,
	).Scan(&res.ID, &res.CreatedAt)
}

func (r *repo) Get(ctx context.Context, id int64) (*model.Resource, error) {
	const q = `
		SELECT` + resourceCols + `
		FROM resources r
		JOIN users u ON u.id = r.owner_id
		WHERE r.id = $1`
	res, err := scanResource(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *repo) ListExcludingOwner(ctx context.Context, ownerID int64) ([]model.Resource, error) {
	const q = `
		SELECT` + resourceCols + `
		FROM resources r
		JOIN users u ON u.id = r.owner_id
		WHERE r.owner_id <> $1
		ORDER BY r.created_at DESC, r.id DESC`
	return r.list(ctx, q, ownerID)
}

func (r *repo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Resource, error) {
	const q = `
		SELECT` + resourceCols + `
		FROM resources r
		JOIN users u ON u.id = r.owner_id
		WHERE r.owner_id = $1
		ORDER BY r.created_at DESC, r.id DESC`
	return r.list(ctx, q, ownerID)
}

func (r *repo) list(ctx context.Context, q string, args ...any) ([]model.Resource, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	return out, rows.Err()
}

type rowScanner interface{ Scan(dest ...any) error }

func scanResource(s rowScanner) (*model.Resource, error) {
	var res model.Resource
	if err := s.Scan(
		&res.ID, &res.OwnerID, &res.OwnerEmail, &res.Title, &res.Description,
		&res.Category, &res.PricePerDay, &res.Image, &res.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &res, nil
}
