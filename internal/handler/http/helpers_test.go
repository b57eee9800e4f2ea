package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-label-keeper/internal/config"
	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/internal/mock"
	"github.com/MKhiriev/go-label-keeper/internal/service"
	"github.com/MKhiriev/go-label-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "valid-token"

var (
	testUser    = models.User{UserID: 3, Username: "jane", State: models.UserStateActive}
	testProject = models.Project{ID: 8, Namespace: "group", Path: "open", Visibility: models.VisibilityPublic}
)

type handlerMocks struct {
	auth     *mock.MockAuthService
	projects *mock.MockProjectService
	labels   *mock.MockLabelService
	appInfo  *mock.MockAppInfoService
}

// newTestHandler returns a Handler with a nop logger and no services.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

// newTestRouter wires the full router to service mocks. Every request
// carrying testToken authenticates as testUser.
func newTestRouter(t *testing.T) (*chi.Mux, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := handlerMocks{
		auth:     mock.NewMockAuthService(ctrl),
		projects: mock.NewMockProjectService(ctrl),
		labels:   mock.NewMockLabelService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	m.auth.EXPECT().Authenticate(gomock.Any(), testToken).Return(testUser, nil).AnyTimes()

	h := NewHandler(&service.Services{
		AuthService:    m.auth,
		ProjectService: m.projects,
		LabelService:   m.labels,
		AppInfoService: m.appInfo,
	}, config.Server{}, logger.Nop())

	return h.Init(), m
}

func newAuthorizedRequest(method, target string, body io.Reader, contentType string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+testToken)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func strPtr(s string) *string { return &s }
