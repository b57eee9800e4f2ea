package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-label-keeper/internal/config"
	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.Server{RequestTimeout: 3 * time.Second}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_RegistersLabelRoutesAtRootAndUnderAPIPrefix(t *testing.T) {
	for _, prefix := range []string{"", apiPrefix} {
		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodPut} {
			t.Run(method+" "+prefix, func(t *testing.T) {
				router, _ := newTestRouter(t)

				// no Authorization header: a registered route answers 401
				req := newAuthorizedRequest(method, prefix+"/projects/8/labels", nil, "")
				req.Header.Del("Authorization")

				rec := serve(router, req)

				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			})
		}
	}
}

func TestInit_VersionRoute(t *testing.T) {
	for _, path := range []string{"/version", apiPrefix + "/version"} {
		t.Run(path, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")

			rec := serve(router, newAuthorizedRequest(http.MethodGet, path, nil, ""))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "1.4.0", rec.Body.String())
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, newAuthorizedRequest(http.MethodGet, "/projects/8/milestones", nil, ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_UnregisteredMethodReturns404(t *testing.T) {
	for _, path := range []string{"/projects/8/labels", apiPrefix + "/projects/8/labels"} {
		t.Run(path, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rec := serve(router, newAuthorizedRequest(http.MethodPatch, path, nil, ""))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_EveryResponseCarriesTraceID(t *testing.T) {
	router, _ := newTestRouter(t)

	req := newAuthorizedRequest(http.MethodGet, "/projects/8/labels", nil, "")
	req.Header.Del("Authorization")
	req.Header.Set(traceIDHeader, "trace-123")

	rec := serve(router, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}
