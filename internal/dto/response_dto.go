package dto

import "time"

type OptionDTO struct {
	ID         uint   `json:"id"`
	QuestionID uint   `json:"questionId"`
	Label      string `json:"label"`
}

type QuestionDTO struct {
	ID        uint        `json:"id"`
	SurveyID  uint        `json:"surveyId"`
	Text      string      `json:"text"`
	Type      string      `json:"type"`
	Options   []OptionDTO `json:"options,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// SurveyDTO is the full materialized survey tree returned by the catalog.
type SurveyDTO struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Questions   []QuestionDTO `json:"questions"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type ResponseDTO struct {
	ID           uint      `json:"id"`
	SurveyID     uint      `json:"surveyId"`
	QuestionID   uint      `json:"questionId"`
	OptionID     *uint     `json:"optionId,omitempty"`
	AnswerNumber *float64  `json:"answerNumber,omitempty"`
	AnswerString *string   `json:"answerString,omitempty"`
	UserID       *uint     `json:"userId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SubmitResultDTO is returned after a successful response submission.
type SubmitResultDTO struct {
	Message   string        `json:"message"`
	Inserted  int           `json:"inserted"`
	Responses []ResponseDTO `json:"responses"`
}

type UserDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      *string   `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResultDTO is the lookup-only login payload. No token is issued;
// session management is out of scope.
type LoginResultDTO struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Role  *string `json:"role,omitempty"`
}

type HealthDTO struct {
	OK   bool      `json:"ok"`
	Time time.Time `json:"time"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
