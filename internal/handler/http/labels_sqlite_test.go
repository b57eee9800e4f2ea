package http

import (
	"context"
	"database/sql"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-label-keeper/internal/config"
	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/internal/service"
	"github.com/MKhiriev/go-label-keeper/internal/store"
	"github.com/MKhiriev/go-label-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sqliteSignKey = "sqlite-test-key"
	sqliteIssuer  = "go-label-keeper"
)

// sqliteFixture serves the real router on top of a migrated SQLite file
// seeded with one private project "group/open" and one Developer member.
type sqliteFixture struct {
	router http.Handler
	token  string
}

func newSQLiteFixture(t *testing.T) sqliteFixture {
	t.Helper()
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "labels.db")

	storages, err := store.NewStorages(ctx, config.Storage{DB: config.DB{Driver: config.DriverSQLite, DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	seed, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	defer seed.Close()

	for _, stmt := range []string{
		`INSERT INTO users (id, username, name) VALUES (1, 'jane', 'Jane')`,
		`INSERT INTO projects (id, namespace, path, name, visibility) VALUES (8, 'group', 'open', 'Open', 'private')`,
		`INSERT INTO project_members (project_id, user_id, access_level) VALUES (8, 1, 30)`,
		`INSERT INTO milestones (id, project_id, title) VALUES (1, 8, 'v1')`,
		`INSERT INTO labels (id, project_id, title, color) VALUES (1, 8, 'feature', '#00FF00')`,
		`INSERT INTO issues (id, iid, project_id, title, state, author_id, milestone_id) VALUES (1, 1, 8, 'first', 'opened', 1, 1)`,
		`INSERT INTO issues (id, iid, project_id, title, state, author_id, milestone_id) VALUES (2, 2, 8, 'second', 'closed', 1, 1)`,
		`INSERT INTO issues (id, iid, project_id, title, state, author_id) VALUES (3, 3, 8, 'third', 'opened', 1)`,
		`INSERT INTO label_links (label_id, issue_id) VALUES (1, 1)`,
	} {
		_, err = seed.ExecContext(ctx, stmt)
		require.NoError(t, err, stmt)
	}

	cfg := config.StructuredConfig{App: config.App{
		TokenSignKey:  sqliteSignKey,
		TokenIssuer:   sqliteIssuer,
		TokenDuration: time.Hour,
		Version:       "1.0.0",
	}}
	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	token, err := utils.GenerateJWTToken(sqliteIssuer, 1, time.Hour, sqliteSignKey)
	require.NoError(t, err)

	return sqliteFixture{
		router: NewHandler(services, config.Server{}, logger.Nop()).Init(),
		token:  token.SignedString,
	}
}

func (f sqliteFixture) do(t *testing.T, method, target, body string) (int, map[string]any) {
	t.Helper()
	req := newAuthorizedRequest(method, target, jsonBody(body), "application/json")
	req.Header.Set("Authorization", "Bearer "+f.token)

	rec := serve(f.router, req)
	return rec.Code, decodeBody(t, rec)
}

func TestSQLite_CreateConflictAndValidation(t *testing.T) {
	f := newSQLiteFixture(t)
	const target = "/api/v4/projects/group%2Fopen/labels"

	status, body := f.do(t, http.MethodPost, target, `{"name":"bug","color":"#FF0000","description":"broken"}`)
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, "bug", body["name"])
	assert.Equal(t, "broken", body["description"])

	status, body = f.do(t, http.MethodPost, target, `{"name":"bug","color":"#00FF00"}`)
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "409 Label already exists", body["message"])

	status, body = f.do(t, http.MethodPost, target, `{"name":"p1","color":"red"}`)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, map[string]any{"color": []any{"must be a valid color code"}}, body["message"])
}

func TestSQLite_RenameThenOldNameIsNotFound(t *testing.T) {
	f := newSQLiteFixture(t)
	const target = "/projects/8/labels"

	status, _ := f.do(t, http.MethodPost, target, `{"name":"bug","color":"#FF0000","description":"broken"}`)
	require.Equal(t, http.StatusCreated, status)

	status, body := f.do(t, http.MethodPut, target, `{"name":"bug","new_name":"defect"}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "defect", body["name"])
	assert.Equal(t, "broken", body["description"])

	status, body = f.do(t, http.MethodPut, target, `{"name":"bug","color":"#000000"}`)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "404 Label Not Found", body["message"])

	status, body = f.do(t, http.MethodPut, target, `{"name":"defect","new_name":"feature"}`)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, map[string]any{"title": []any{"has already been taken"}}, body["message"])

	status, body = f.do(t, http.MethodPut, target, `{"name":"defect","description":null}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.Contains(t, body, "description")
	assert.Nil(t, body["description"])
}

func TestSQLite_DeleteTwice(t *testing.T) {
	f := newSQLiteFixture(t)
	const target = "/projects/8/labels"

	status, body := f.do(t, http.MethodDelete, target, `{"name":"feature"}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "feature", body["name"])

	status, _ = f.do(t, http.MethodDelete, target, `{"name":"feature"}`)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSQLite_ListFiltersIssues(t *testing.T) {
	f := newSQLiteFixture(t)

	status, body := f.do(t, http.MethodGet, "/projects/8/labels?milestone=v1&state=opened", "")
	require.Equal(t, http.StatusOK, status, body)

	labels := body["labels"].([]any)
	require.Len(t, labels, 1)
	assert.Equal(t, "feature", labels[0].(map[string]any)["name"])

	issues := body["issues"].([]any)
	require.Len(t, issues, 1)
	issue := issues[0].(map[string]any)
	assert.Equal(t, "first", issue["title"])
	assert.Equal(t, []any{"feature"}, issue["labels"])

	status, body = f.do(t, http.MethodGet, "/projects/8/labels?labels=feature,missing", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["issues"].([]any), 1)
}
