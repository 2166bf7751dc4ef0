// Package services holds the application layer between the gRPC surface and
// the runtime/repositories. Services validate input, delegate, and never
// touch wire types.
package services

import (
	"time"

	"roomhub/auth"
	"roomhub/domain"
	"roomhub/errors"
	"roomhub/repositories"
)

type IAuthService interface {
	Login(displayName string) (domain.User, Token, error)
}

type Token string

type AuthService struct {
	userRepository repositories.IUserRepository
	tokenDuration  time.Duration
}

func NewAuthService(repo repositories.IUserRepository, tokenDuration time.Duration) IAuthService {
	return &AuthService{userRepository: repo, tokenDuration: tokenDuration}
}

// Login is idempotent per display name: the first call creates the user,
// every later call returns the same identity with a fresh token.
func (s *AuthService) Login(displayName string) (domain.User, Token, error) {
	if err := auth.ValidateLogin(auth.LoginRequest{DisplayName: displayName}); err != nil {
		return domain.User{}, "", err
	}

	user, err := s.userRepository.FindOrCreateUser(displayName)
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := auth.GenerateToken(user.ID, user.DisplayName, s.tokenDuration)
	if err != nil {
		return domain.User{}, "", errors.ErrTokenGeneration
	}
	return user, Token(token), nil
}
