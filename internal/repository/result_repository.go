package repository

import (
	"github.com/ltmthao/surveyhub/internal/model"
	"gorm.io/gorm"
)

// ScaleAggregate holds the COUNT/AVG pair for one SCALE question. Average
// is coalesced to 0 in SQL when no rows match.
type ScaleAggregate struct {
	Count   int64   `gorm:"column:count"`
	Average float64 `gorm:"column:average"`
}

// ResultRepository exposes the per-question aggregation sub-queries the
// results engine is built from. Batched runs a set of sub-queries against
// one transaction so a results document is assembled without interleaving
// corruption.
type ResultRepository interface {
	ScaleAggregate(questionID uint) (*ScaleAggregate, error)
	OptionCount(questionID, optionID uint) (int64, error)
	LatestTextResponses(questionID uint, limit int) ([]model.Response, error)
	Batched(fn func(ResultRepository) error) error
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) ScaleAggregate(questionID uint) (*ScaleAggregate, error) {
	var agg ScaleAggregate
	err := r.db.Model(&model.Response{}).
		Select("COUNT(*) as count, COALESCE(AVG(answer_number), 0) as average").
		Where("question_id = ?", questionID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func (r *resultRepository) OptionCount(questionID, optionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Response{}).
		Where("question_id = ? AND option_id = ?", questionID, optionID).
		Count(&count).Error
	return count, err
}

func (r *resultRepository) LatestTextResponses(questionID uint, limit int) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.
		Where("question_id = ? AND answer_string IS NOT NULL", questionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *resultRepository) Batched(fn func(ResultRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&resultRepository{db: tx})
	})
}
