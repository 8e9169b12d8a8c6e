package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ahorraplan/finance-backend/internal/models"
	"github.com/ahorraplan/finance-backend/internal/storage"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, name, email, password string) (*models.PublicUser, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PublicUser), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	authMock := new(AuthServiceMock)
	logger := newNoopLogger()

	handler := New(logger, authMock)

	tests := []struct {
		name           string
		requestBody    interface{}
		mockUser       *models.PublicUser
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantData       map[string]any
		wantError      string
		wantStatus     string
	}{
		{
			name: "valid registration",
			requestBody: Request{
				Name:     "Ana",
				Email:    "ana@example.com",
				Password: "secret123",
			},
			mockUser: &models.PublicUser{
				ID:    "8b7e7d60-9f3f-4f3a-9a63-0f6a5f0a1b2c",
				Name:  "Ana",
				Email: "ana@example.com",
			},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantData: map[string]any{
				"id":    "8b7e7d60-9f3f-4f3a-9a63-0f6a5f0a1b2c",
				"name":  "Ana",
				"email": "ana@example.com",
			},
			wantStatus: "OK",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
			wantStatus:     "Error",
		},
		{
			name: "validation error - bad email",
			requestBody: Request{
				Name:     "Ana",
				Email:    "not-an-email",
				Password: "secret123",
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Email must be a valid email",
			wantStatus:     "Error",
		},
		{
			name: "validation error - short password",
			requestBody: Request{
				Name:     "Ana",
				Email:    "ana@example.com",
				Password: "12345",
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Password is too short",
			wantStatus:     "Error",
		},
		{
			name: "duplicate email",
			requestBody: Request{
				Name:     "Ana",
				Email:    "ana@example.com",
				Password: "secret123",
			},
			mockErr:        storage.ErrEmailTaken,
			mockCalled:     true,
			wantStatusCode: http.StatusConflict,
			wantError:      "email already registered",
			wantStatus:     "Error",
		},
		{
			name: "storage error",
			requestBody: Request{
				Name:     "Ana",
				Email:    "ana@example.com",
				Password: "secret123",
			},
			mockErr:        errors.New("connection refused"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to register user",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock.ExpectedCalls = nil
			authMock.Calls = nil

			if tt.mockCalled {
				authMock.On("Register", mock.Anything,
					mock.Anything,
					mock.Anything,
					mock.Anything,
				).Return(tt.mockUser, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantStatus, got["status"])

			if tt.wantError != "" {
				errStr, ok := got["error"].(string)
				assert.True(t, ok)
				assert.Equal(t, tt.wantError, errStr)
			} else {
				assert.Nil(t, got["error"])
			}

			if tt.wantData != nil {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				for k, v := range tt.wantData {
					assert.Equal(t, v, data[k])
				}
			} else {
				assert.Nil(t, got["data"])
			}

			authMock.AssertExpectations(t)
		})
	}
}
