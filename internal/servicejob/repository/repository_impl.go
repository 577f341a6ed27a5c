package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/rpsgarage/servicecenter/internal/servicejob/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, job *domain.ServiceJob) error {
	return db.WithContext(ctx).Create(job).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.ServiceJob, error) {
	var job domain.ServiceJob
	err := db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.ServiceJob, error) {
	var jobs []domain.ServiceJob
	err := db.WithContext(ctx).
		Order("created_at desc, id desc").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *repo) FindByServiceRequest(ctx context.Context, db *gorm.DB, requestID snowflake.ID) ([]domain.ServiceJob, error) {
	var jobs []domain.ServiceJob
	err := db.WithContext(ctx).
		Where("service_request_id = ?", requestID).
		Order("created_at asc, id asc").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, job *domain.ServiceJob) error {
	return db.WithContext(ctx).Save(job).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.ServiceJob{}, "id = ?", id).Error
}
