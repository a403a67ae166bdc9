package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jinzhu/copier"
	"github.com/ltmthao/surveyhub/internal/dto"
	"github.com/ltmthao/surveyhub/internal/model"
	"github.com/ltmthao/surveyhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ResponseService interface {
	SubmitResponses(surveyID uint, req dto.ResponseSubmitDTO) (*dto.SubmitResultDTO, error)
}

type responseService struct {
	surveyRepo   repository.SurveyRepository
	responseRepo repository.ResponseRepository
}

func NewResponseService(surveyRepo repository.SurveyRepository, responseRepo repository.ResponseRepository) ResponseService {
	return &responseService{surveyRepo: surveyRepo, responseRepo: responseRepo}
}

// SubmitResponses validates and persists one batch of answers for a survey.
// The batch is all-or-nothing: every row lands in one transaction, and for
// identified users the one-batch-per-survey invariant is enforced inside
// that same transaction.
func (s *responseService) SubmitResponses(surveyID uint, req dto.ResponseSubmitDTO) (*dto.SubmitResultDTO, error) {
	if len(req.Answers) == 0 {
		return nil, ErrEmptyAnswers
	}

	if _, err := s.surveyRepo.FindByID(surveyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSurveyNotFound
		}
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("SubmitResponses: failed to fetch survey")
		return nil, fmt.Errorf("error fetching survey %d: %w", surveyID, err)
	}

	// Cheap pre-check so the common duplicate case fails before any write.
	if req.UserID != nil {
		exists, err := s.responseRepo.ExistsForUser(surveyID, *req.UserID)
		if err != nil {
			log.Error().Err(err).Uint("surveyID", surveyID).Uint("userID", *req.UserID).
				Msg("SubmitResponses: failed to check for prior responses")
			return nil, fmt.Errorf("error checking prior responses: %w", err)
		}
		if exists {
			return nil, ErrAlreadyResponded
		}
	}

	responses := make([]model.Response, 0, len(req.Answers))
	for _, answer := range req.Answers {
		responses = append(responses, buildResponse(surveyID, req.UserID, answer))
	}

	if err := s.responseRepo.CreateBatch(surveyID, req.UserID, responses); err != nil {
		if errors.Is(err, repository.ErrDuplicateResponse) {
			return nil, ErrAlreadyResponded
		}
		log.Error().Err(err).Uint("surveyID", surveyID).Int("answers", len(responses)).
			Msg("SubmitResponses: failed to insert response batch")
		return nil, fmt.Errorf("error saving responses: %w", err)
	}

	responseDTOs := make([]dto.ResponseDTO, 0, len(responses))
	for i := range responses {
		var respDTO dto.ResponseDTO
		if err := copier.Copy(&respDTO, &responses[i]); err != nil {
			log.Error().Err(err).Msg("SubmitResponses: failed to copy response to DTO")
			return nil, fmt.Errorf("error preparing submission response: %w", err)
		}
		responseDTOs = append(responseDTOs, respDTO)
	}

	return &dto.SubmitResultDTO{
		Message:   "responses recorded",
		Inserted:  len(responseDTOs),
		Responses: responseDTOs,
	}, nil
}

// buildResponse shapes one Response row from one submitted answer. The
// answer's own type tag governs which field receives the value; the stored
// question type is deliberately not consulted, matching what clients have
// always sent. TEXT is the catch-all for unrecognized tags.
func buildResponse(surveyID uint, userID *uint, answer dto.AnswerSubmitDTO) model.Response {
	response := model.Response{
		SurveyID:   surveyID,
		QuestionID: answer.QuestionID,
		UserID:     userID,
	}

	switch answer.Type {
	case model.QuestionTypeScale:
		number := toNumber(answer.Value)
		response.AnswerNumber = &number
	case model.QuestionTypeMultiple:
		optionID := uint(toNumber(answer.Value))
		response.OptionID = &optionID
	default:
		text := toText(answer.Value)
		response.AnswerString = &text
	}
	return response
}

func toNumber(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func toText(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
