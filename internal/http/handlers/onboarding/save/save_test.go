package save

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

func (m *AuthServiceMock) SaveOnboarding(ctx context.Context, answers models.OnboardingAnswers) error {
	args := m.Called(ctx, answers)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSaveHandler_ServeHTTP(t *testing.T) {
	authMock := new(AuthServiceMock)
	logger := newNoopLogger()

	handler := New(logger, authMock)

	tests := []struct {
		name           string
		requestBody    interface{}
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantData       map[string]any
		wantError      string
		wantStatus     string
	}{
		{
			name: "valid save",
			requestBody: Request{
				UserID:         "8b7e7d60-9f3f-4f3a-9a63-0f6a5f0a1b2c",
				Meta:           "pagar deudas",
				Ritmo:          "estable",
				Prioridad:      "ahorro",
				Acompanamiento: "si",
				MonedaBase:     "COP",
			},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantData: map[string]any{
				"success": true,
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
			name: "validation error - user_id not uuid",
			requestBody: Request{
				UserID: "42",
				Meta:   "pagar deudas",
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field UserID can contain only uuid",
			wantStatus:     "Error",
		},
		{
			name: "unknown user",
			requestBody: Request{
				UserID: "8b7e7d60-9f3f-4f3a-9a63-0f6a5f0a1b2c",
				Meta:   "pagar deudas",
			},
			mockErr:        storage.ErrUserNotFound,
			mockCalled:     true,
			wantStatusCode: http.StatusNotFound,
			wantError:      "user not found",
			wantStatus:     "Error",
		},
		{
			name: "storage error",
			requestBody: Request{
				UserID: "8b7e7d60-9f3f-4f3a-9a63-0f6a5f0a1b2c",
				Meta:   "pagar deudas",
			},
			mockErr:        errors.New("connection refused"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to save onboarding",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock.ExpectedCalls = nil
			authMock.Calls = nil

			if tt.mockCalled {
				authMock.On("SaveOnboarding", mock.Anything,
					mock.Anything,
				).Return(tt.mockErr).Once()
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

			req := httptest.NewRequest(http.MethodPost, "/api/auth/onboarding", bytes.NewReader(bodyBytes))
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
