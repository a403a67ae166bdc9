package model

import (
	"time"

	"gorm.io/gorm"
)

// Question types. The type decides both which Response field holds the
// answer and how results are aggregated.
const (
	QuestionTypeScale    = "SCALE"
	QuestionTypeMultiple = "MULTIPLE"
	QuestionTypeText     = "TEXT"
)

type Question struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	SurveyID  uint           `json:"surveyId" gorm:"not null;index"`
	Text      string         `json:"text" gorm:"type:text;not null"`
	Type      string         `json:"type" gorm:"not null"` // "SCALE", "MULTIPLE", "TEXT"
	Options   []Option       `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
