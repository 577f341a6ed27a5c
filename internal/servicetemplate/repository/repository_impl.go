package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/rpsgarage/servicecenter/internal/servicetemplate/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, template *domain.ServiceTemplate) error {
	return db.WithContext(ctx).Create(template).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.ServiceTemplate, error) {
	var template domain.ServiceTemplate
	err := db.WithContext(ctx).First(&template, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.ServiceTemplate, error) {
	var templates []domain.ServiceTemplate
	err := db.WithContext(ctx).
		Order("name asc").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, template *domain.ServiceTemplate) error {
	return db.WithContext(ctx).Save(template).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.ServiceTemplate{}, "id = ?", id).Error
}
