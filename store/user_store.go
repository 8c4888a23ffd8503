package store

import (
	"context"
	"errors"

	"github.com/jaskaran778/grind-fuel/model"

	"gorm.io/gorm"
)

type UserStore struct {
	DB *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{DB: db}
}

// Ensure inserts the user row if it does not exist yet. Identity is
// owned by the external auth provider; this table only mirrors what
// the admin panel and the deletion cascade need.
func (s *UserStore) Ensure(ctx context.Context, user *model.User) error {
	return s.DB.WithContext(ctx).Where("id = ?", user.ID).FirstOrCreate(user).Error
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := s.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.User{}).Error
}
