package services

import (
	"context"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
)

// AuthSvcFacade authenticates back-office employees and issues access tokens.
type AuthSvcFacade interface {
	// Login verifies the employee credentials and returns a signed token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
