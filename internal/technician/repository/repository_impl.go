package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/rpsgarage/servicecenter/internal/technician/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, technician *domain.Technician) error {
	return db.WithContext(ctx).Create(technician).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Technician, error) {
	var technician domain.Technician
	err := db.WithContext(ctx).First(&technician, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &technician, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Technician, error) {
	var technicians []domain.Technician
	err := db.WithContext(ctx).
		Order("full_name asc").
		Find(&technicians).Error
	if err != nil {
		return nil, err
	}
	return technicians, nil
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, technician *domain.Technician) error {
	return db.WithContext(ctx).Save(technician).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.Technician{}, "id = ?", id).Error
}
