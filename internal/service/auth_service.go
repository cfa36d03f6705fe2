package service

import (
	"context"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/client/authapi"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authService delegates credential checks to the central auth backend; this
// service never stores passwords.
type authService struct {
	authClient *authapi.Client
	logger     logger.ILogger
}

func NewAuthService(authClient *authapi.Client, log logger.ILogger) IAuthService {
	return &authService{
		authClient: authClient,
		logger:     log,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	res, err := s.authClient.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	s.logger.Info("AuthService", "User logged in", map[string]interface{}{
		"username": res.Username,
	})
	return res, nil
}
