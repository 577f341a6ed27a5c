package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/rpsgarage/servicecenter/internal/brand/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, brand *domain.Brand) error {
	return db.WithContext(ctx).Create(brand).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Brand, error) {
	var brand domain.Brand
	err := db.WithContext(ctx).First(&brand, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Brand, error) {
	var brands []domain.Brand
	err := db.WithContext(ctx).
		Order("name asc").
		Find(&brands).Error
	if err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, brand *domain.Brand) error {
	return db.WithContext(ctx).Save(brand).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.Brand{}, "id = ?", id).Error
}
