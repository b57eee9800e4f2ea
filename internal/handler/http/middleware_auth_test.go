package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/internal/mock"
	"github.com/MKhiriev/go-label-keeper/internal/service"
	"github.com/MKhiriev/go-label-keeper/internal/store"
	"github.com/MKhiriev/go-label-keeper/internal/utils"
	"github.com/MKhiriev/go-label-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthTestHandler(t *testing.T) (*Handler, *mock.MockAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	authService := mock.NewMockAuthService(ctrl)
	return &Handler{
		services: &service.Services{AuthService: authService},
		logger:   logger.Nop(),
	}, authService
}

func TestAuth_StoresUserInContext(t *testing.T) {
	h, authService := newAuthTestHandler(t)
	authService.EXPECT().Authenticate(gomock.Any(), "abc").Return(testUser, nil)

	var got *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = utils.UserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer abc")

	rec := serve(h.auth(next), req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, testUser, *got)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		serviceErr error
	}{
		{name: "header missing", header: ""},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "token missing", header: "Bearer "},
		{name: "invalid token", header: "Bearer bad", serviceErr: service.ErrTokenIsExpiredOrInvalid},
		{name: "blocked user", header: "Bearer bad", serviceErr: service.ErrUserBlocked},
		{name: "unknown user", header: "Bearer bad", serviceErr: fmt.Errorf("token owner lookup failed: %w", store.ErrNoUserWasFound)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authService := newAuthTestHandler(t)
			if tt.serviceErr != nil {
				authService.EXPECT().Authenticate(gomock.Any(), "bad").Return(models.User{}, tt.serviceErr)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := serve(h.auth(next), req)

			assert.False(t, nextCalled)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"401 Unauthorized"}`, rec.Body.String())
		})
	}
}

func TestAuth_StorageFailureIsInternal(t *testing.T) {
	h, authService := newAuthTestHandler(t)
	authService.EXPECT().Authenticate(gomock.Any(), "abc").
		Return(models.User{}, fmt.Errorf("token owner lookup failed: %w", store.ErrExecutingQuery))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc")

	rec := serve(h.auth(http.NotFoundHandler()), req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
