package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ltmthao/surveyhub/internal/dto"
	"github.com/ltmthao/surveyhub/internal/service"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	surveySvc   service.SurveyService
	responseSvc service.ResponseService
	resultSvc   service.ResultService
	userSvc     service.UserService
}

func NewController(
	surveySvc service.SurveyService,
	responseSvc service.ResponseService,
	resultSvc service.ResultService,
	userSvc service.UserService,
) *Controller {
	return &Controller{
		surveySvc:   surveySvc,
		responseSvc: responseSvc,
		resultSvc:   resultSvc,
		userSvc:     userSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/health", ctrl.HealthHandler)

		surveys := api.Group("/surveys")
		surveys.POST("", ctrl.CreateSurveyHandler)
		surveys.GET("", ctrl.GetAllSurveysHandler)
		surveys.GET("/:id", ctrl.GetSurveyHandler)
		surveys.POST("/:id/responses", ctrl.SubmitResponsesHandler)

		api.GET("/results/:surveyId", ctrl.GetSurveyResultsHandler)

		users := api.Group("/users")
		users.POST("", ctrl.CreateUserHandler)
		users.GET("", ctrl.GetAllUsersHandler)
		users.POST("/login", ctrl.LoginHandler)
	}
}

// HealthHandler godoc
// @Summary Health check
// @Description Confirms the server is up
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthDTO
// @Router /health [get]
func (ctrl *Controller) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthDTO{OK: true, Time: time.Now().UTC()})
}

// parseIDParam parses a path parameter as a positive integer id. A value
// that does not parse is a caller fault, never coerced.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name + " path parameter"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service failures onto the HTTP taxonomy: caller fault
// 400, not found 404, anything else a generic 500 with detail only in the
// server log.
func respondError(c *gin.Context, err error, msg string) {
	switch {
	case service.IsNotFound(err):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case service.IsCallerFault(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg(msg)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
