package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/services"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/platform/config"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "praticavii-nfe-test",
	}
}

func employeePerson(t *testing.T, login, password string) *domain.Person {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &domain.Person{
		Code:   1,
		Name:   "João Silva",
		Roles:  domain.PersonRoles{Employee: true},
		Active: true,
		Employee: &domain.EmployeeDetails{
			Login:        login,
			PasswordHash: hash,
		},
	}
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockPersonRepository)
	svc := services.NewAuthService(authTestConfig(), repo)

	repo.On("FindPersonByLogin", mock.Anything, "jsilva").Return(employeePerson(t, "jsilva", "segredo123"), nil).Once()

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Login: "jsilva", Password: "segredo123"})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "João Silva", resp.Name)

	claims, err := utils.ParseAndValidateJWT(resp.Token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "jsilva", claims.Subject)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockPersonRepository)
	svc := services.NewAuthService(authTestConfig(), repo)

	repo.On("FindPersonByLogin", mock.Anything, "jsilva").Return(employeePerson(t, "jsilva", "segredo123"), nil).Once()

	_, err := svc.Login(context.Background(), dto.LoginRequest{Login: "jsilva", Password: "errada"})

	require.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLogin_UnknownLogin(t *testing.T) {
	repo := new(MockPersonRepository)
	svc := services.NewAuthService(authTestConfig(), repo)

	repo.On("FindPersonByLogin", mock.Anything, "ninguem").Return(nil, apperrors.NewNotFoundError("person not found")).Once()

	_, err := svc.Login(context.Background(), dto.LoginRequest{Login: "ninguem", Password: "x"})

	// unknown login and bad password are indistinguishable to the caller
	require.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLogin_InactiveEmployee(t *testing.T) {
	repo := new(MockPersonRepository)
	svc := services.NewAuthService(authTestConfig(), repo)

	person := employeePerson(t, "jsilva", "segredo123")
	person.Active = false
	repo.On("FindPersonByLogin", mock.Anything, "jsilva").Return(person, nil).Once()

	_, err := svc.Login(context.Background(), dto.LoginRequest{Login: "jsilva", Password: "segredo123"})

	require.ErrorIs(t, err, services.ErrInvalidCredentials)
}
