package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ltmthao/surveyhub/internal/dto"
	"github.com/rs/zerolog/log"
)

// CreateUserHandler godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.UserCreateDTO true "User data"
// @Success 201 {object} dto.UserDTO
// @Failure 400 {object} dto.ErrorResponse "Missing fields or duplicate email"
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [post]
func (ctrl *Controller) CreateUserHandler(c *gin.Context) {
	var req dto.UserCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateUserHandler: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := ctrl.userSvc.Register(req)
	if err != nil {
		respondError(c, err, "CreateUserHandler: failed to register user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetAllUsersHandler godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [get]
func (ctrl *Controller) GetAllUsersHandler(c *gin.Context) {
	users, err := ctrl.userSvc.GetAllUsers()
	if err != nil {
		respondError(c, err, "GetAllUsersHandler: failed to list users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// LoginHandler godoc
// @Summary Look up a user by email
// @Description Lookup-only login; no session or token is issued
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body dto.UserLoginDTO true "Login email"
// @Success 200 {object} dto.LoginResultDTO
// @Failure 400 {object} dto.ErrorResponse "Missing email"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/login [post]
func (ctrl *Controller) LoginHandler(c *gin.Context) {
	var req dto.UserLoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("LoginHandler: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := ctrl.userSvc.Login(req.Email)
	if err != nil {
		respondError(c, err, "LoginHandler: failed to look up user")
		return
	}
	c.JSON(http.StatusOK, user)
}
