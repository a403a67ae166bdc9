package model

import (
	"time"

	"gorm.io/gorm"
)

// Response is one answer to one question. Exactly one of OptionID,
// AnswerNumber and AnswerString is populated, matching the answer type:
// MULTIPLE, SCALE and TEXT respectively. UserID is nil for anonymous
// submissions.
type Response struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	SurveyID     uint           `json:"surveyId" gorm:"not null;index"`
	QuestionID   uint           `json:"questionId" gorm:"not null;index"`
	OptionID     *uint          `json:"optionId,omitempty" gorm:"index"`
	AnswerNumber *float64       `json:"answerNumber,omitempty"`
	AnswerString *string        `json:"answerString,omitempty" gorm:"type:text"`
	UserID       *uint          `json:"userId,omitempty" gorm:"index"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
