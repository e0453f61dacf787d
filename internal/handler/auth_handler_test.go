package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shopmart/internal/errors"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, username, email, password string) (string, error) {
	args := m.Called(ctx, username, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newAuthTestServer(svc *MockAuthService) *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	h := NewAuthHandler(svc)
	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSignup_Success(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Signup", mock.Anything, "alice", "alice@example.com", "password123").Return("tok-123", nil)
	e := newAuthTestServer(svc)

	rec := postJSON(e, "/signup", `{"username":"alice","email":"alice@example.com","password":"password123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body TokenResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "tok-123", body.Token)
}

func TestSignup_DuplicateEmailIsA400Failure(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Signup", mock.Anything, "alice", "taken@example.com", "password123").Return("", errors.ErrDuplicateEmail)
	e := newAuthTestServer(svc)

	rec := postJSON(e, "/signup", `{"username":"alice","email":"taken@example.com","password":"password123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body errors.FailureResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Existing User found!", body.Errors)
}

func TestLogin_FailuresRideA200(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		expectedMsg string
	}{
		{name: "unknown email", serviceErr: errors.ErrInvalidEmail, expectedMsg: "Invalid Email"},
		{name: "wrong password", serviceErr: errors.ErrWrongPassword, expectedMsg: "Wrong Password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			svc.On("Login", mock.Anything, "a@example.com", "pw").Return("", tt.serviceErr)
			e := newAuthTestServer(svc)

			rec := postJSON(e, "/login", `{"email":"a@example.com","password":"pw"}`)

			assert.Equal(t, http.StatusOK, rec.Code)
			var body errors.FailureResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.expectedMsg, body.Errors)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "a@example.com", "pw").Return("tok-456", nil)
	e := newAuthTestServer(svc)

	rec := postJSON(e, "/login", `{"email":"a@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body TokenResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "tok-456", body.Token)
}
