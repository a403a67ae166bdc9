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

type UserService interface {
	Register(req dto.UserCreateDTO) (*dto.UserDTO, error)
	GetAllUsers() ([]dto.UserDTO, error)
	Login(email string) (*dto.LoginResultDTO, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(req dto.UserCreateDTO) (*dto.UserDTO, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: failed to check for existing email")
		return nil, fmt.Errorf("error checking existing user: %w", err)
	}

	user := model.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if err := s.userRepo.Create(&user); err != nil {
		// The unique index still backstops the pre-check under concurrency.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		log.Error().Err(err).Str("email", req.Email).Msg("Register: failed to create user")
		return nil, fmt.Errorf("database error creating user: %w", err)
	}

	var resp dto.UserDTO
	if err := copier.Copy(&resp, &user); err != nil {
		log.Error().Err(err).Msg("Register: failed to copy user to DTO")
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	return &resp, nil
}

func (s *userService) GetAllUsers() ([]dto.UserDTO, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("GetAllUsers: failed to fetch users")
		return nil, fmt.Errorf("error fetching users: %w", err)
	}

	dtos := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		var userDTO dto.UserDTO
		if err := copier.Copy(&userDTO, &users[i]); err != nil {
			log.Error().Err(err).Uint("userID", users[i].ID).Msg("GetAllUsers: failed to copy user to DTO")
			return nil, fmt.Errorf("error preparing user list: %w", err)
		}
		dtos = append(dtos, userDTO)
	}
	return dtos, nil
}

// Login is a lookup-only stub. No session or token is issued.
func (s *userService) Login(email string) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error().Err(err).Str("email", email).Msg("Login: failed to fetch user")
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return &dto.LoginResultDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}
