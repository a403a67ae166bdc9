package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ltmthao/surveyhub/internal/dto"
	"github.com/rs/zerolog/log"
)

// SubmitResponsesHandler godoc
// @Summary Submit responses for a survey
// @Description Persists one batch of answers atomically; identified users may submit once per survey
// @Tags responses
// @Accept json
// @Produce json
// @Param id path int true "Survey ID"
// @Param submission body dto.ResponseSubmitDTO true "Answer batch"
// @Success 201 {object} dto.SubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse "Empty answers or duplicate submission"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /surveys/{id}/responses [post]
func (ctrl *Controller) SubmitResponsesHandler(c *gin.Context) {
	surveyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ResponseSubmitDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Uint("surveyID", surveyID).Msg("SubmitResponsesHandler: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := ctrl.responseSvc.SubmitResponses(surveyID, req)
	if err != nil {
		respondError(c, err, "SubmitResponsesHandler: failed to submit responses")
		return
	}
	c.JSON(http.StatusCreated, result)
}
