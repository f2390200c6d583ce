package resourcesvc_test

import (
	"context"
	"testing"

	"github.com/omjee001/student-resource-rental/model"
	resourcesvc "github.com/omjee001/student-resource-rental/service/resource"
)

type repoMock struct {
	createFn func(ctx context.Context, res *model.Resource) error
	getFn    func(ctx context.Context, id int64) (*model.Resource, error)
	browseFn func(ctx context.Context, ownerID int64) ([]model.Resource, error)
	mineFn   func(ctx context.Context, ownerID int64) ([]model.Resource, error)
}

func (m *repoMock) Create(ctx context.Context, res *model.Resource) error {
	return m.createFn(ctx, res)
}
func (m *repoMock) Get(ctx context.Context, id int64) (*model.Resource, error) {
	return m.getFn(ctx, id)
}
func (m *repoMock) ListExcludingOwner(ctx context.Context, ownerID int64) ([]model.Resource, error) {
	return m.browseFn(ctx, ownerID)
}
func (m *repoMock) ListByOwner(ctx context.Context, ownerID int64) ([]model.Resource, error) {
	return m.mineFn(ctx, ownerID)
}

var actor = model.Identity{ID: 5, Email: "lister@example.com"}

func TestCreate_Validation(t *testing.T) {
	s := resourcesvc.New(&repoMock{})
	ctx := context.Background()

	if _, err := s.Create(ctx, actor, "", "desc", model.CategoryBooks, 2.50, nil); err == nil {
		t.Fatal("expected error for empty title")
	}
	if _, err := s.Create(ctx, actor, "title", "", model.CategoryBooks, 2.50, nil); err == nil {
		t.Fatal("expected error for empty description")
	}
	if _, err := s.Create(ctx, actor, "title", "desc", model.Category("vehicles"), 2.50, nil); err == nil {
		t.Fatal("expected error for unknown category")
	}
	if _, err := s.Create(ctx, actor, "title", "desc", model.CategoryBooks, 0, nil); err == nil {
		t.Fatal("expected error for non-positive price")
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, res *model.Resource) error {
			if res.OwnerID != actor.ID || res.Title != "Casio FX-991" || res.Category != model.CategoryElectronics {
				t.Fatalf("bad resource passed to repo: %+v", res)
			}
			res.ID = 7
			return nil
		},
	}
	s := resourcesvc.New(m)

	res, err := s.Create(context.Background(), actor, "Casio FX-991", "scientific calculator", model.CategoryElectronics, 1.50, nil)
	if err != nil || res.ID != 7 {
		t.Fatalf("got res=%+v err=%v; want id 7, nil", res, err)
	}
}

func TestPassThroughs(t *testing.T) {
	m := &repoMock{
		getFn:    func(ctx context.Context, id int64) (*model.Resource, error) { return &model.Resource{ID: id}, nil },
		browseFn: func(ctx context.Context, ownerID int64) ([]model.Resource, error) { return nil, nil },
		mineFn:   func(ctx context.Context, ownerID int64) ([]model.Resource, error) { return nil, nil },
	}
	s := resourcesvc.New(m)
	ctx := context.Background()

	if res, err := s.Get(ctx, 99); err != nil || res.ID != 99 {
		t.Fatalf("Get got %+v %v; want id 99, nil", res, err)
	}
	if _, err := s.Browse(ctx, actor); err != nil {
		t.Fatalf("Browse error: %v", err)
	}
	if _, err := s.Mine(ctx, actor); err != nil {
		t.Fatalf("Mine error: %v", err)
	}
}
