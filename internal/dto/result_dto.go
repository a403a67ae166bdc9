package dto

import "time"

// ScaleResultDTO aggregates a SCALE question. Average is 0, not null,
// when Count is 0.
type ScaleResultDTO struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// OptionCountDTO is one entry of a MULTIPLE question distribution,
// aligned to the question's option order.
type OptionCountDTO struct {
	OptionID uint   `json:"optionId"`
	Label    string `json:"label"`
	Count    int64  `json:"count"`
}

// CommentDTO is one free-text response sample for a TEXT question.
type CommentDTO struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// QuestionResultDTO is the per-question aggregate entry. Results holds a
// ScaleResultDTO, []OptionCountDTO or []CommentDTO depending on Type.
type QuestionResultDTO struct {
	QuestionID uint        `json:"questionId"`
	Type       string      `json:"type"`
	Text       string      `json:"text"`
	Results    interface{} `json:"results"`
}

type SurveyHeaderDTO struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// SurveyResultsDTO is the full results document for one survey, with one
// entry per question in original question order.
type SurveyResultsDTO struct {
	Survey  SurveyHeaderDTO     `json:"survey"`
	Results []QuestionResultDTO `json:"results"`
}
