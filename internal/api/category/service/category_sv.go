package categoryService

import (
	"FinTrack/internal/api/category"
	"FinTrack/internal/entity"
	contextPkg "FinTrack/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *categoryService) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if !entity.IsValidCategoryType(req.Type) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       req.Type,
		}).Warn("Invalid category type")
		return category.ErrInvalidCategoryType
	}

	if _, err := repo.Category.GetCategoryByName(ctx, req.Name); err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       req.Name,
		}).Warn("Category name already in use")
		return category.ErrCategoryNameTaken
	} else if !errors.Is(err, category.ErrCategoryNotFound) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check category name uniqueness")
		return err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	cat := entity.Category{
		ID:        ULID,
		Name:      req.Name,
		Type:      entity.CategoryType(req.Type),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := repo.Category.CreateCategory(ctx, cat); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create category")
		return category.ErrCreateCategory
	}

	return nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Category{}, err
	}

	cat, err := repo.Category.GetCategoryByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get category by ID")
		return entity.Category{}, err
	}

	return cat, nil
}

func (s *categoryService) GetCategories(ctx context.Context) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	categories, err := repo.Category.GetCategories(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get categories")
		return nil, err
	}

	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if !entity.IsValidCategoryType(req.Type) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       req.Type,
		}).Warn("Invalid category type")
		return category.ErrInvalidCategoryType
	}

	existing, err := repo.Category.GetCategoryByID(ctx, req.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Error("Failed to get existing category")
		return err
	}

	byName, err := repo.Category.GetCategoryByName(ctx, req.Name)
	if err == nil && byName.ID != existing.ID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       req.Name,
		}).Warn("Category name already in use")
		return category.ErrCategoryNameTaken
	} else if err != nil && !errors.Is(err, category.ErrCategoryNotFound) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check category name uniqueness")
		return err
	}

	cat := entity.Category{
		ID:        req.ID,
		Name:      req.Name,
		Type:      entity.CategoryType(req.Type),
		UpdatedAt: time.Now(),
	}

	if err := repo.Category.UpdateCategory(ctx, cat); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update category")
		return category.ErrUpdateCategory
	}

	return nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if _, err := repo.Category.GetCategoryByID(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing category")
		return err
	}

	count, err := repo.Category.CountTransactions(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to count category transactions")
		return err
	}

	if count > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id":        requestID,
			"id":                id,
			"transaction_count": count,
		}).Warn("Category still has transactions")
		return category.ErrCategoryInUse
	}

	if err := repo.Category.DeleteCategory(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete category")
		return category.ErrDeleteCategory
	}

	return nil
}
