package repository

import (
	"errors"

	"github.com/ltmthao/surveyhub/internal/model"
	"gorm.io/gorm"
)

// ErrDuplicateResponse is returned by CreateBatch when the in-transaction
// existence check finds a prior batch for the same (survey, user) pair.
var ErrDuplicateResponse = errors.New("response batch already exists for this survey and user")

type ResponseRepository interface {
	ExistsForUser(surveyID, userID uint) (bool, error)
	CreateBatch(surveyID uint, userID *uint, responses []model.Response) error
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) ExistsForUser(surveyID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Response{}).
		Where("survey_id = ? AND user_id = ?", surveyID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateBatch inserts all rows of one submission atomically. For identified
// users the one-batch-per-survey check is re-run inside the same
// transaction as the insert, so two concurrent submissions cannot both
// pass the check and commit.
func (r *responseRepository) CreateBatch(surveyID uint, userID *uint, responses []model.Response) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if userID != nil {
			var count int64
			err := tx.Model(&model.Response{}).
				Where("survey_id = ? AND user_id = ?", surveyID, *userID).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count > 0 {
				return ErrDuplicateResponse
			}
		}
		return tx.Create(&responses).Error
	})
}
