package store

import (
	"context"
	"errors"

	"github.com/jaskaran778/grind-fuel/model"

	"gorm.io/gorm"
)

type ProductStore struct {
	DB *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{DB: db}
}

func (s *ProductStore) List(ctx context.Context, category string) ([]model.Product, error) {
	q := s.DB.WithContext(ctx)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var products []model.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	if err := s.DB.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Seed loads the catalog on first boot. An already-populated table is
// left alone.
func (s *ProductStore) Seed(ctx context.Context, products []model.Product) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 || len(products) == 0 {
		return nil
	}
	return s.DB.WithContext(ctx).Create(&products).Error
}
