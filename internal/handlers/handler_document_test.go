package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/dto"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/handlers"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/middleware"

	portssvc "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/services"
)

// --- Mock DocumentService ---
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) GetDocumentByKey(ctx context.Context, key domain.DocumentKey) (*domain.FiscalDocument, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalDocument), args.Error(1)
}

func (m *MockDocumentService) ListDocuments(ctx context.Context, docType *domain.DocumentType, limit int, nextToken *string) ([]domain.FiscalDocument, *string, error) {
	args := m.Called(ctx, docType, limit, nextToken)
	var docs []domain.FiscalDocument
	if args.Get(0) != nil {
		docs = args.Get(0).([]domain.FiscalDocument)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return docs, token, args.Error(2)
}

func (m *MockDocumentService) IssueDocument(ctx context.Context, req dto.IssueDocumentRequest, creatorUserID string) (*domain.FiscalDocument, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalDocument), args.Error(1)
}

func (m *MockDocumentService) UpdateDocument(ctx context.Context, key domain.DocumentKey, req dto.UpdateDocumentRequest, updaterUserID string) (*domain.FiscalDocument, error) {
	args := m.Called(ctx, key, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalDocument), args.Error(1)
}

func (m *MockDocumentService) DeleteDocument(ctx context.Context, key domain.DocumentKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

var _ portssvc.DocumentSvcFacade = (*MockDocumentService)(nil)

// --- Test Suite ---
type DocumentHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockDocumentService *MockDocumentService
	jwtSecret           string
}

func (suite *DocumentHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "nfe-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *DocumentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockDocumentService = new(MockDocumentService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterDocumentRoutes(v1, suite.mockDocumentService)
}

func (suite *DocumentHandlerTestSuite) authedRequest(method, url, body, userID string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

const issueBody = `{
	"model": 55,
	"series": 1,
	"number": 1234,
	"type": "S",
	"personCode": 7,
	"emissionDate": "2024-03-10",
	"total": 1000,
	"paymentMethodCode": 1,
	"paymentConditionCode": 2,
	"lines": [
		{"productCode": 10, "quantity": 2, "unitPrice": 500}
	]
}`

// --- Test Cases ---

func (suite *DocumentHandlerTestSuite) TestIssueDocument_Success() {
	userID := "maria.souza"
	issued := &domain.FiscalDocument{
		Key:                  domain.DocumentKey{Model: 55, Series: 1, Number: 1234, Type: domain.Outgoing},
		PersonCode:           7,
		EmissionDate:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Total:                decimal.NewFromInt(1000),
		PaymentMethodCode:    1,
		PaymentConditionCode: 2,
	}

	suite.mockDocumentService.On("IssueDocument",
		mock.Anything,
		mock.MatchedBy(func(req dto.IssueDocumentRequest) bool {
			return req.Model == 55 && req.Type == "S" && len(req.Lines) == 1
		}),
		userID,
	).Return(issued, nil).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/documents", issueBody, userID)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.DocumentResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(55, resp.Model)
	suite.Equal(1234, resp.Number)
	suite.Equal("S", resp.Type)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestIssueDocument_ValidationError() {
	suite.mockDocumentService.On("IssueDocument", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("declared total 1000 differs from line sum 999.98")).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/documents", issueBody, "maria.souza")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "differs from line sum")
}

func (suite *DocumentHandlerTestSuite) TestIssueDocument_DuplicateKey() {
	suite.mockDocumentService.On("IssueDocument", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewAppError(409, "a document with this model/series/number/type already exists", apperrors.ErrDuplicate)).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/documents", issueBody, "maria.souza")

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestIssueDocument_MissingToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/documents", strings.NewReader(issueBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockDocumentService.AssertNotCalled(suite.T(), "IssueDocument")
}

func (suite *DocumentHandlerTestSuite) TestGetDocument_NotFound() {
	suite.mockDocumentService.On("GetDocumentByKey", mock.Anything,
		domain.DocumentKey{Model: 55, Series: 1, Number: 99, Type: domain.Outgoing}).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/documents/55/1/99/S", "", "maria.souza")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestGetDocument_InvalidType() {
	w := suite.authedRequest(http.MethodGet, "/api/v1/documents/55/1/99/X", "", "maria.souza")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDocumentService.AssertNotCalled(suite.T(), "GetDocumentByKey")
}

func (suite *DocumentHandlerTestSuite) TestListDocuments_PassesFilterAndToken() {
	outgoing := domain.Outgoing
	nextToken := "b3BhcXVl"
	returnedToken := "bmV4dA"

	suite.mockDocumentService.On("ListDocuments",
		mock.Anything,
		mock.MatchedBy(func(t *domain.DocumentType) bool { return t != nil && *t == outgoing }),
		10,
		mock.MatchedBy(func(t *string) bool { return t != nil && *t == nextToken }),
	).Return([]domain.FiscalDocument{
		{Key: domain.DocumentKey{Model: 55, Series: 1, Number: 1, Type: domain.Outgoing}},
	}, &returnedToken, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/documents?type=S&limit=10&nextToken="+nextToken, "", "maria.souza")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListDocumentsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Documents, 1)
	suite.NotNil(resp.NextToken)
	suite.Equal(returnedToken, *resp.NextToken)
}

func (suite *DocumentHandlerTestSuite) TestDeleteDocument_Success() {
	suite.mockDocumentService.On("DeleteDocument", mock.Anything,
		domain.DocumentKey{Model: 55, Series: 1, Number: 1234, Type: domain.Outgoing}).
		Return(nil).Once()

	w := suite.authedRequest(http.MethodDelete, "/api/v1/documents/55/1/1234/S", "", "maria.souza")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestDocumentHandler(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}
