package service

import (
	"errors"
	"fmt"

	"github.com/ltmthao/surveyhub/internal/dto"
	"github.com/ltmthao/surveyhub/internal/model"
	"github.com/ltmthao/surveyhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// textSampleLimit caps the number of free-text responses returned per TEXT
// question, newest first.
const textSampleLimit = 100

type ResultService interface {
	GetSurveyResults(surveyID uint) (*dto.SurveyResultsDTO, error)
}

type resultService struct {
	surveyRepo repository.SurveyRepository
	resultRepo repository.ResultRepository
}

func NewResultService(surveyRepo repository.SurveyRepository, resultRepo repository.ResultRepository) ResultService {
	return &resultService{surveyRepo: surveyRepo, resultRepo: resultRepo}
}

type resultQueryKind int

const (
	queryScaleStats resultQueryKind = iota
	queryOptionCount
	queryTextSample
)

// resultQuery is one aggregation sub-query of a survey's query plan.
type resultQuery struct {
	kind       resultQueryKind
	questionID uint
	optionID   uint // set for queryOptionCount only
}

// resultSlot is the outcome of one executed resultQuery. Exactly one field
// is populated, matching the query kind.
type resultSlot struct {
	scale    *repository.ScaleAggregate
	count    int64
	comments []model.Response
}

// GetSurveyResults builds one aggregation sub-query per question (one per
// option for MULTIPLE questions), executes the whole plan against a single
// transaction, and reassembles the flat result list back into per-question
// entries in original question order.
func (s *resultService) GetSurveyResults(surveyID uint) (*dto.SurveyResultsDTO, error) {
	survey, err := s.surveyRepo.FindByIDWithQuestions(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSurveyNotFound
		}
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("GetSurveyResults: failed to fetch survey")
		return nil, fmt.Errorf("error fetching survey %d: %w", surveyID, err)
	}

	plan, slotsPerQuestion := buildQueryPlan(survey.Questions)

	slots, err := s.executePlan(plan)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Int("queries", len(plan)).
			Msg("GetSurveyResults: failed to execute aggregation plan")
		return nil, fmt.Errorf("error aggregating results for survey %d: %w", surveyID, err)
	}

	results := assembleResults(survey.Questions, slotsPerQuestion, slots)

	return &dto.SurveyResultsDTO{
		Survey:  dto.SurveyHeaderDTO{ID: survey.ID, Title: survey.Title},
		Results: results,
	}, nil
}

// buildQueryPlan walks the question list once and records, per question,
// how many slots of the flat result list it will consume: 1 for SCALE and
// TEXT, one per option for MULTIPLE.
func buildQueryPlan(questions []model.Question) ([]resultQuery, []int) {
	var plan []resultQuery
	slotsPerQuestion := make([]int, 0, len(questions))

	for _, question := range questions {
		switch question.Type {
		case model.QuestionTypeScale:
			plan = append(plan, resultQuery{kind: queryScaleStats, questionID: question.ID})
			slotsPerQuestion = append(slotsPerQuestion, 1)
		case model.QuestionTypeMultiple:
			for _, option := range question.Options {
				plan = append(plan, resultQuery{
					kind:       queryOptionCount,
					questionID: question.ID,
					optionID:   option.ID,
				})
			}
			slotsPerQuestion = append(slotsPerQuestion, len(question.Options))
		default:
			plan = append(plan, resultQuery{kind: queryTextSample, questionID: question.ID})
			slotsPerQuestion = append(slotsPerQuestion, 1)
		}
	}
	return plan, slotsPerQuestion
}

// executePlan runs every sub-query of the plan inside one transaction and
// returns the flat slot list in plan order.
func (s *resultService) executePlan(plan []resultQuery) ([]resultSlot, error) {
	slots := make([]resultSlot, len(plan))

	err := s.resultRepo.Batched(func(repo repository.ResultRepository) error {
		for i, query := range plan {
			switch query.kind {
			case queryScaleStats:
				agg, err := repo.ScaleAggregate(query.questionID)
				if err != nil {
					return err
				}
				slots[i] = resultSlot{scale: agg}
			case queryOptionCount:
				count, err := repo.OptionCount(query.questionID, query.optionID)
				if err != nil {
					return err
				}
				slots[i] = resultSlot{count: count}
			case queryTextSample:
				comments, err := repo.LatestTextResponses(query.questionID, textSampleLimit)
				if err != nil {
					return err
				}
				slots[i] = resultSlot{comments: comments}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// assembleResults consumes exactly slotsPerQuestion[i] slots for question i,
// so every entry's sub-results are attributed back to its question even
// when MULTIPLE questions span several slots.
func assembleResults(questions []model.Question, slotsPerQuestion []int, slots []resultSlot) []dto.QuestionResultDTO {
	results := make([]dto.QuestionResultDTO, 0, len(questions))
	cursor := 0

	for i, question := range questions {
		consumed := slots[cursor : cursor+slotsPerQuestion[i]]
		cursor += slotsPerQuestion[i]

		entry := dto.QuestionResultDTO{
			QuestionID: question.ID,
			Type:       question.Type,
			Text:       question.Text,
		}

		switch question.Type {
		case model.QuestionTypeScale:
			scale := consumed[0].scale
			entry.Results = dto.ScaleResultDTO{Average: scale.Average, Count: scale.Count}
		case model.QuestionTypeMultiple:
			distribution := make([]dto.OptionCountDTO, 0, len(question.Options))
			for j, option := range question.Options {
				distribution = append(distribution, dto.OptionCountDTO{
					OptionID: option.ID,
					Label:    option.Label,
					Count:    consumed[j].count,
				})
			}
			entry.Results = distribution
		default:
			comments := make([]dto.CommentDTO, 0, len(consumed[0].comments))
			for _, response := range consumed[0].comments {
				if response.AnswerString == nil {
					continue
				}
				comments = append(comments, dto.CommentDTO{
					ID:        response.ID,
					Text:      *response.AnswerString,
					CreatedAt: response.CreatedAt,
				})
			}
			entry.Results = comments
		}
		results = append(results, entry)
	}
	return results
}
