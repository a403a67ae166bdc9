package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ltmthao/surveyhub/internal/dto"
	"github.com/rs/zerolog/log"
)

// CreateSurveyHandler godoc
// @Summary Create a new survey
// @Description Create a survey with its nested questions and options in one atomic write
// @Tags surveys
// @Accept json
// @Produce json
// @Param survey body dto.SurveyCreateDTO true "Survey definition"
// @Success 201 {object} dto.SurveyDTO
// @Failure 400 {object} dto.ErrorResponse "Missing title or questions array"
// @Failure 500 {object} dto.ErrorResponse
// @Router /surveys [post]
func (ctrl *Controller) CreateSurveyHandler(c *gin.Context) {
	var req dto.SurveyCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateSurveyHandler: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	// Mirrors the contract that questions must be an array: absent is a
	// caller fault, while an explicitly empty array is accepted.
	if req.Questions == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "questions must be an array"})
		return
	}

	survey, err := ctrl.surveySvc.CreateSurvey(req)
	if err != nil {
		respondError(c, err, "CreateSurveyHandler: failed to create survey")
		return
	}
	c.JSON(http.StatusCreated, survey)
}

// GetAllSurveysHandler godoc
// @Summary List all surveys
// @Description Returns every survey with its question/option tree, newest first
// @Tags surveys
// @Produce json
// @Success 200 {array} dto.SurveyDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /surveys [get]
func (ctrl *Controller) GetAllSurveysHandler(c *gin.Context) {
	surveys, err := ctrl.surveySvc.GetAllSurveys()
	if err != nil {
		respondError(c, err, "GetAllSurveysHandler: failed to list surveys")
		return
	}
	c.JSON(http.StatusOK, surveys)
}

// GetSurveyHandler godoc
// @Summary Get a survey by ID
// @Description Returns one survey with its question/option tree
// @Tags surveys
// @Produce json
// @Param id path int true "Survey ID"
// @Success 200 {object} dto.SurveyDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /surveys/{id} [get]
func (ctrl *Controller) GetSurveyHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	survey, err := ctrl.surveySvc.GetSurveyByID(id)
	if err != nil {
		respondError(c, err, "GetSurveyHandler: failed to get survey")
		return
	}
	c.JSON(http.StatusOK, survey)
}
