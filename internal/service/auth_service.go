package service

import (
	"context"
	"errors"
	"strings"

	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/GanderM1/testforgenew/internal/auth"
	"github.com/GanderM1/testforgenew/internal/dto"
	"github.com/GanderM1/testforgenew/internal/model"
	"github.com/GanderM1/testforgenew/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "invalid username or password"

type AuthService interface {
	Login(ctx context.Context, req dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Profile(ctx context.Context, viewer auth.Identity) (*dto.UserDTO, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

// Login checks the password against the stored bcrypt hash. Unknown users and
// wrong passwords get the same answer.
func (s *authService) Login(ctx context.Context, req dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized(invalidCredentials)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Info().Str("username", user.Username).Msg("Login: wrong password")
		return nil, apperror.Unauthorized(invalidCredentials)
	}
	if !user.IsActive {
		return nil, apperror.Unauthorized("user is deactivated")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: failed to sign token")
		return nil, apperror.Storage(err, "sign token")
	}
	return &dto.LoginResponseDTO{Token: token, User: toUserDTO(user)}, nil
}

func (s *authService) Profile(ctx context.Context, viewer auth.Identity) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, viewer.UserID)
	if err != nil {
		return nil, err
	}
	out := toUserDTO(user)
	return &out, nil
}

func toUserDTO(u *model.User) dto.UserDTO {
	return dto.UserDTO{ID: u.ID, Username: u.Username, Role: string(u.Role), GroupID: u.GroupID}
}
