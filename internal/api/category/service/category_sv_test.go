package categoryService

import (
	"FinTrack/internal/api/category"
	categoryRepository "FinTrack/internal/api/category/repository"
	"FinTrack/internal/entity"
	"FinTrack/pkg/utils"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakeCategoryStore struct {
	categories        []entity.Category
	transactionCounts map[string]int
}

func (s *fakeCategoryStore) CreateCategory(_ context.Context, cat entity.Category) error {
	s.categories = append(s.categories, cat)
	return nil
}

func (s *fakeCategoryStore) GetCategoryByID(_ context.Context, id string) (entity.Category, error) {
	for _, cat := range s.categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return entity.Category{}, category.ErrCategoryNotFound
}

func (s *fakeCategoryStore) GetCategoryByName(_ context.Context, name string) (entity.Category, error) {
	for _, cat := range s.categories {
		if cat.Name == name {
			return cat, nil
		}
	}
	return entity.Category{}, category.ErrCategoryNotFound
}

func (s *fakeCategoryStore) GetCategories(_ context.Context) ([]entity.Category, error) {
	return s.categories, nil
}

func (s *fakeCategoryStore) UpdateCategory(_ context.Context, updated entity.Category) error {
	for i, cat := range s.categories {
		if cat.ID == updated.ID {
			s.categories[i] = updated
			return nil
		}
	}
	return category.ErrCategoryNotFound
}

func (s *fakeCategoryStore) DeleteCategory(_ context.Context, id string) error {
	for i, cat := range s.categories {
		if cat.ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return category.ErrCategoryNotFound
}

func (s *fakeCategoryStore) CountTransactions(_ context.Context, id string) (int, error) {
	return s.transactionCounts[id], nil
}

type fakeCategoryRepository struct {
	store *fakeCategoryStore
}

func (r *fakeCategoryRepository) NewClient(_ bool) (categoryRepository.Client, error) {
	return categoryRepository.Client{
		Category: r.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestService(store *fakeCategoryStore) ICategoryService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewCategoryService(logger, &fakeCategoryRepository{store: store}, utils.New())
}

func TestCreateCategory(t *testing.T) {
	store := &fakeCategoryStore{}
	svc := newTestService(store)

	err := svc.CreateCategory(context.Background(), category.CreateCategoryRequest{
		Name: "Groceries",
		Type: "food",
	})
	require.NoError(t, err)

	require.Len(t, store.categories, 1)
	assert.NotEmpty(t, store.categories[0].ID)
	assert.Equal(t, "Groceries", store.categories[0].Name)
	assert.Equal(t, entity.CategoryTypeFood, store.categories[0].Type)
}

func TestCreateCategoryInvalidType(t *testing.T) {
	svc := newTestService(&fakeCategoryStore{})

	err := svc.CreateCategory(context.Background(), category.CreateCategoryRequest{
		Name: "Groceries",
		Type: "miscellaneous",
	})
	assert.ErrorIs(t, err, category.ErrInvalidCategoryType)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	store := &fakeCategoryStore{categories: []entity.Category{
		{ID: "cat-1", Name: "Groceries", Type: entity.CategoryTypeFood},
	}}
	svc := newTestService(store)

	err := svc.CreateCategory(context.Background(), category.CreateCategoryRequest{
		Name: "Groceries",
		Type: "shopping",
	})
	assert.ErrorIs(t, err, category.ErrCategoryNameTaken)
}

func TestUpdateCategory(t *testing.T) {
	store := &fakeCategoryStore{categories: []entity.Category{
		{ID: "cat-1", Name: "Groceries", Type: entity.CategoryTypeFood},
		{ID: "cat-2", Name: "Rent", Type: entity.CategoryTypeHousing},
	}}
	svc := newTestService(store)

	// Keeping the current name is not a conflict with itself.
	err := svc.UpdateCategory(context.Background(), category.UpdateCategoryRequest{
		ID:   "cat-1",
		Name: "Groceries",
		Type: "shopping",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryTypeShopping, store.categories[0].Type)

	err = svc.UpdateCategory(context.Background(), category.UpdateCategoryRequest{
		ID:   "cat-1",
		Name: "Rent",
		Type: "food",
	})
	assert.ErrorIs(t, err, category.ErrCategoryNameTaken)

	err = svc.UpdateCategory(context.Background(), category.UpdateCategoryRequest{
		ID:   "cat-missing",
		Name: "Whatever",
		Type: "food",
	})
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestDeleteCategory(t *testing.T) {
	store := &fakeCategoryStore{
		categories: []entity.Category{
			{ID: "cat-1", Name: "Groceries", Type: entity.CategoryTypeFood},
			{ID: "cat-2", Name: "Rent", Type: entity.CategoryTypeHousing},
		},
		transactionCounts: map[string]int{"cat-2": 3},
	}
	svc := newTestService(store)

	require.NoError(t, svc.DeleteCategory(context.Background(), "cat-1"))
	assert.Len(t, store.categories, 1)

	err := svc.DeleteCategory(context.Background(), "cat-2")
	assert.ErrorIs(t, err, category.ErrCategoryInUse)

	err = svc.DeleteCategory(context.Background(), "cat-missing")
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}
