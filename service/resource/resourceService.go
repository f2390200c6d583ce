package resourcesvc

import (
	"context"
	"errors"
	"strings"

	"github.com/omjee001/student-resource-rental/model"
)

type ErrCode string

const (
	ErrBadInput ErrCode = "BAD_INPUT"
	ErrNotFound ErrCode = "NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Repo interface {
	Create(ctx context.Context, res *model.Resource) error
	Get(ctx context.Context, id int64) (*model.Resource, error)
	ListExcludingOwner(ctx context.Context, ownerID int64) ([]model.Resource, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Resource, error)
}

type Service interface {
	// Create: list a new resource owned by the actor.
	Create(ctx context.Context, actor model.Identity, title, description string, category model.Category, pricePerDay float64, image *string) (*model.Resource, error)

	// Get returns (nil, nil) for an unknown id so callers can 404.
	Get(ctx context.Context, id int64) (*model.Resource, error)

	// Browse: all listings except the actor's own.
	Browse(ctx context.Context, actor model.Identity) ([]model.Resource, error)

	// Mine: the actor's own listings.
	Mine(ctx context.Context, actor model.Identity) ([]model.Resource, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r} }

func (s *service) Create(ctx context.Context, actor model.Identity, title, description string, category model.Category, pricePerDay float64, image *string) (*model.Resource, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return nil, makeErr(ErrBadInput)
	}
	if !model.ValidCategory(category) {
		return nil, makeErr(ErrBadInput)
	}
	if pricePerDay <= 0 {
		return nil, makeErr(ErrBadInput)
	}

	res := &model.Resource{
		OwnerID:     actor.ID,
		OwnerEmail:  actor.Email,
		Title:       title,
		Description: description,
		Category:    category,
		PricePerDay: pricePerDay,
		Image:       image,
	}
	if err := s.r.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Get(ctx context.Context, id int64) (*model.Resource, error) {
	if id <= 0 {
		return nil, makeErr(ErrBadInput)
	}
	return s.r.Get(ctx, id)
}

func (s *service) Browse(ctx context.Context, actor model.Identity) ([]model.Resource, error) {
	return s.r.ListExcludingOwner(ctx, actor.ID)
}

func (s *service) Mine(ctx context.Context, actor model.Identity) ([]model.Resource, error) {
	return s.r.ListByOwner(ctx, actor.ID)
}
