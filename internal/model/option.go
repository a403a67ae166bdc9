package model

import (
	"time"

	"gorm.io/gorm"
)

// Option is one selectable choice of a MULTIPLE question. Only MULTIPLE
// questions use options for counting.
type Option struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	QuestionID uint           `json:"questionId" gorm:"not null;index"`
	Label      string         `json:"label" gorm:"not null"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
