package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animalovers-backend/internal/domains/category"
)

type fakeRepo struct {
	byID    map[uuid.UUID]*category.Category
	inUse   map[uuid.UUID]bool
	deleted []uuid.UUID
	created []*category.Category
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:  map[uuid.UUID]*category.Category{},
		inUse: map[uuid.UUID]bool{},
	}
}

func (f *fakeRepo) add(c *category.Category) *category.Category {
	f.byID[c.ID] = c
	return c
}

func (f *fakeRepo) Create(ctx context.Context, entity *category.Category) (*category.Category, error) {
	f.created = append(f.created, entity)
	f.byID[entity.ID] = entity
	return entity, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, category.ErrNotFound
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	return nil, category.ErrNotFound
}

func (f *fakeRepo) ListAll(ctx context.Context, activeOnly bool) ([]category.Category, error) {
	out := []category.Category{}
	for _, c := range f.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeRepo) ListRoots(ctx context.Context, activeOnly bool) ([]category.Category, error) {
	out := []category.Category{}
	for _, c := range f.byID {
		if c.ParentID == nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListChildren(ctx context.Context, parentID uuid.UUID, activeOnly bool) ([]category.Category, error) {
	out := []category.Category{}
	for _, c := range f.byID {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, req *category.UpdateCategoryReq) (*category.Category, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return category.ErrNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	return f.inUse[id], nil
}

func TestCreateRejectsThirdLevel(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	rootID := uuid.New()
	repo.add(&category.Category{ID: rootID, Name: "Chiens", Slug: "chiens"})

	childID := uuid.New()
	repo.add(&category.Category{ID: childID, Name: "Croquettes", Slug: "croquettes", ParentID: &rootID})

	_, err := svc.Create(context.Background(), &category.CreateCategoryReq{
		Name:     "Croquettes senior",
		ParentID: &childID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, category.ErrValidation)
	assert.Empty(t, repo.created)
}

func TestCreateUnknownParent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	missing := uuid.New()
	_, err := svc.Create(context.Background(), &category.CreateCategoryReq{
		Name:     "Jouets",
		ParentID: &missing,
	})

	assert.ErrorIs(t, err, category.ErrParentNotFound)
}

func TestDeleteRefusedWhileInUse(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	id := uuid.New()
	repo.add(&category.Category{ID: id, Name: "Chats", Slug: "chats"})
	repo.inUse[id] = true

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, category.ErrInUse)
	assert.Empty(t, repo.deleted)

	repo.inUse[id] = false
	require.NoError(t, svc.Delete(context.Background(), id))
	assert.Equal(t, []uuid.UUID{id}, repo.deleted)
}

func TestGetHierarchyTree(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	rootID := uuid.New()
	repo.add(&category.Category{ID: rootID, Name: "Chiens", Slug: "chiens"})
	childID := uuid.New()
	repo.add(&category.Category{ID: childID, Name: "Croquettes", Slug: "croquettes", ParentID: &rootID})
	lonelyID := uuid.New()
	repo.add(&category.Category{ID: lonelyID, Name: "Chats", Slug: "chats"})

	nodes, err := svc.GetHierarchy(context.Background(), category.HierarchyQuery{Mode: category.ModeTree})
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	byID := map[uuid.UUID]category.Node{}
	for _, n := range nodes {
		byID[n.ID] = n
	}

	require.Contains(t, byID, rootID)
	require.Len(t, byID[rootID].Children, 1)
	assert.Equal(t, childID, byID[rootID].Children[0].ID)

	// Childless roots still carry an empty slice, never null.
	require.Contains(t, byID, lonelyID)
	assert.NotNil(t, byID[lonelyID].Children)
	assert.Empty(t, byID[lonelyID].Children)
}

func TestGetHierarchyChildren(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	rootID := uuid.New()
	repo.add(&category.Category{ID: rootID, Name: "Chiens", Slug: "chiens"})
	childID := uuid.New()
	repo.add(&category.Category{ID: childID, Name: "Laisses", Slug: "laisses", ParentID: &rootID})

	nodes, err := svc.GetHierarchy(context.Background(), category.HierarchyQuery{
		Mode:     category.ModeChildren,
		ParentID: rootID,
	})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, childID, nodes[0].ID)
}
