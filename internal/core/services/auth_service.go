package services

import (
	"context"
	"errors"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
	portsrepo "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/repositories"
	portssvc "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/services"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/middleware"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/platform/config"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/utils"
)

// ErrInvalidCredentials is returned on login/password mismatch. The same
// error covers unknown logins so the response never leaks which part failed.
var ErrInvalidCredentials = errors.New("invalid login or password")

// authService signs employees into the back office.
type authService struct {
	personRepo portsrepo.PersonReader
	cfg        *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, personRepo portsrepo.PersonReader) portssvc.AuthSvcFacade {
	return &authService{
		personRepo: personRepo,
		cfg:        cfg,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	person, err := s.personRepo.FindPersonByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Login attempt for unknown login", "login", req.Login)
			return nil, ErrInvalidCredentials
		}
		logger.Error("Failed to load person for login", "error", err)
		return nil, err
	}

	if person.Employee == nil || !person.Active {
		logger.Warn("Login attempt for non-employee or inactive person", "login", req.Login)
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, person.Employee.PasswordHash) {
		logger.Warn("Password mismatch on login", "login", req.Login)
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(person.Employee.Login, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", "error", err)
		return nil, err
	}

	return &dto.LoginResponse{Token: token, Name: person.Name}, nil
}
