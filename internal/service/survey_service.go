package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/ltmthao/surveyhub/internal/dto"
	"github.com/ltmthao/surveyhub/internal/model"
	"github.com/ltmthao/surveyhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SurveyService interface {
	CreateSurvey(req dto.SurveyCreateDTO) (*dto.SurveyDTO, error)
	GetAllSurveys() ([]dto.SurveyDTO, error)
	GetSurveyByID(id uint) (*dto.SurveyDTO, error)
}

type surveyService struct {
	surveyRepo repository.SurveyRepository
}

func NewSurveyService(surveyRepo repository.SurveyRepository) SurveyService {
	return &surveyService{surveyRepo: surveyRepo}
}

func (s *surveyService) CreateSurvey(req dto.SurveyCreateDTO) (*dto.SurveyDTO, error) {
	if len(req.Questions) == 0 {
		// Allowed for backward compatibility with existing clients, but
		// almost certainly a client bug worth surfacing in the logs.
		log.Warn().Str("title", req.Title).Msg("CreateSurvey: survey created with zero questions")
	}

	questions := make([]model.Question, 0, len(req.Questions))
	for _, qDto := range req.Questions {
		question := model.Question{
			Text: qDto.Text,
			Type: qDto.Type,
		}
		// A nil options slice means the client omitted the field; only an
		// explicitly supplied array creates option rows.
		if qDto.Options != nil {
			question.Options = make([]model.Option, 0, len(qDto.Options))
			for _, label := range qDto.Options {
				question.Options = append(question.Options, model.Option{Label: label})
			}
		}
		questions = append(questions, question)
	}

	survey := model.Survey{
		Title:       req.Title,
		Description: req.Description,
		Questions:   questions,
	}

	if err := s.surveyRepo.Create(&survey); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateSurvey: failed to create survey")
		return nil, fmt.Errorf("database error creating survey: %w", err)
	}

	created, err := s.surveyRepo.FindByIDWithQuestions(survey.ID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", survey.ID).Msg("CreateSurvey: failed to reload created survey")
		var fallback dto.SurveyDTO
		copier.Copy(&fallback, &survey)
		return &fallback, nil
	}

	var resp dto.SurveyDTO
	if err := copier.Copy(&resp, created); err != nil {
		log.Error().Err(err).Msg("CreateSurvey: failed to copy survey to DTO")
		return nil, fmt.Errorf("error preparing survey response: %w", err)
	}
	return &resp, nil
}

func (s *surveyService) GetAllSurveys() ([]dto.SurveyDTO, error) {
	surveys, err := s.surveyRepo.FindAllWithQuestions()
	if err != nil {
		log.Error().Err(err).Msg("GetAllSurveys: failed to fetch surveys")
		return nil, fmt.Errorf("error fetching surveys: %w", err)
	}

	dtos := make([]dto.SurveyDTO, 0, len(surveys))
	for i := range surveys {
		var surveyDTO dto.SurveyDTO
		if err := copier.Copy(&surveyDTO, &surveys[i]); err != nil {
			log.Error().Err(err).Uint("surveyID", surveys[i].ID).Msg("GetAllSurveys: failed to copy survey to DTO")
			return nil, fmt.Errorf("error preparing survey list: %w", err)
		}
		dtos = append(dtos, surveyDTO)
	}
	return dtos, nil
}

func (s *surveyService) GetSurveyByID(id uint) (*dto.SurveyDTO, error) {
	survey, err := s.surveyRepo.FindByIDWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSurveyNotFound
		}
		log.Error().Err(err).Uint("surveyID", id).Msg("GetSurveyByID: failed to fetch survey")
		return nil, fmt.Errorf("error fetching survey %d: %w", id, err)
	}

	var resp dto.SurveyDTO
	if err := copier.Copy(&resp, survey); err != nil {
		log.Error().Err(err).Msg("GetSurveyByID: failed to copy survey to DTO")
		return nil, fmt.Errorf("error preparing survey response: %w", err)
	}
	return &resp, nil
}
