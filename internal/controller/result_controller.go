package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSurveyResultsHandler godoc
// @Summary Get aggregated results for a survey
// @Description One entry per question in original order: average/count for SCALE, per-option counts for MULTIPLE, latest comments for TEXT
// @Tags results
// @Produce json
// @Param surveyId path int true "Survey ID"
// @Success 200 {object} dto.SurveyResultsDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /results/{surveyId} [get]
func (ctrl *Controller) GetSurveyResultsHandler(c *gin.Context) {
	surveyID, ok := parseIDParam(c, "surveyId")
	if !ok {
		return
	}

	results, err := ctrl.resultSvc.GetSurveyResults(surveyID)
	if err != nil {
		respondError(c, err, "GetSurveyResultsHandler: failed to aggregate results")
		return
	}
	c.JSON(http.StatusOK, results)
}
