package dto

// QuestionCreateDTO is one question item inside a survey creation request.
// Options is only meaningful for MULTIPLE questions; a nil slice means the
// client omitted it entirely.
type QuestionCreateDTO struct {
	Text    string   `json:"text" binding:"required"`
	Type    string   `json:"type" binding:"required,oneof=SCALE MULTIPLE TEXT"`
	Options []string `json:"options"`
}

// SurveyCreateDTO is the request body for POST /api/surveys.
// Questions may be empty but must be present; the controller rejects a
// missing array outright.
type SurveyCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description,omitempty"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

// AnswerSubmitDTO is one answer in a response submission. The Type tag on
// the answer, not the stored question, selects which Response field
// receives Value.
type AnswerSubmitDTO struct {
	QuestionID uint        `json:"questionId" binding:"required"`
	Type       string      `json:"type" binding:"required"`
	Value      interface{} `json:"value"`
}

// ResponseSubmitDTO is the request body for POST /api/surveys/:id/responses.
// UserID is nil for anonymous submissions.
type ResponseSubmitDTO struct {
	UserID  *uint             `json:"userId"`
	Answers []AnswerSubmitDTO `json:"answers" binding:"omitempty,dive"`
}

type UserCreateDTO struct {
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required"`
	Role  *string `json:"role"`
}

type UserLoginDTO struct {
	Email string `json:"email" binding:"required"`
}
