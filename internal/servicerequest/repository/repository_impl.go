package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/rpsgarage/servicecenter/internal/servicerequest/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, request *domain.ServiceRequest) error {
	return db.WithContext(ctx).Create(request).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.ServiceRequest, error) {
	var request domain.ServiceRequest
	err := db.WithContext(ctx).First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.ServiceRequest, error) {
	var requests []domain.ServiceRequest
	err := db.WithContext(ctx).
		Order("created_at desc, id desc").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, request *domain.ServiceRequest) error {
	return db.WithContext(ctx).Save(request).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.ServiceRequest{}, "id = ?", id).Error
}
