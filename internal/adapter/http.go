package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-label-keeper/internal/config"
	"github.com/MKhiriev/go-label-keeper/internal/issuefilter"
	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/models"
	"github.com/go-resty/resty/v2"
)

const labelsPath = "/api/v4/projects/{id}/labels"

type httpLabelsAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPLabelsAdapter constructs the resty implementation of [LabelsClient].
// It normalises cfg.ServerURL, applies cfg.RequestTimeout and stores
// cfg.Token.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPLabelsAdapter(cfg config.ClientConfig, logger *logger.Logger) (LabelsClient, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	adapter := &httpLabelsAdapter{client: client, logger: logger}
	adapter.SetToken(cfg.Token)

	return adapter, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyServerURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpLabelsAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpLabelsAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpLabelsAdapter) ListLabels(ctx context.Context, projectID string, filter issuefilter.Filter) (models.LabelsResponse, error) {
	var result models.LabelsResponse

	req := h.authedRequest(ctx, projectID).SetResult(&result)
	setQueryParam(req, "state", filter.State)
	setQueryParam(req, "labels", filter.Labels)
	setQueryParam(req, "milestone", filter.Milestone)

	resp, err := req.Get(labelsPath)
	if err != nil {
		return models.LabelsResponse{}, fmt.Errorf("list labels request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LabelsResponse{}, err
	}

	return result, nil
}

func (h *httpLabelsAdapter) CreateLabel(ctx context.Context, projectID string, request models.CreateLabelRequest) (models.LabelEntity, error) {
	body := map[string]string{
		"name":  request.Name,
		"color": request.Color,
	}
	if request.Description != nil {
		body["description"] = *request.Description
	}

	return h.labelRequest(ctx, "create label", projectID, body, (*resty.Request).Post)
}

// DeleteLabel sends name in the query string; DELETE bodies are not relied on.
func (h *httpLabelsAdapter) DeleteLabel(ctx context.Context, projectID, name string) (models.LabelEntity, error) {
	var label models.LabelEntity

	resp, err := h.authedRequest(ctx, projectID).
		SetQueryParam("name", name).
		SetResult(&label).
		Delete(labelsPath)
	if err != nil {
		return models.LabelEntity{}, fmt.Errorf("delete label request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LabelEntity{}, err
	}

	return label, nil
}

func (h *httpLabelsAdapter) UpdateLabel(ctx context.Context, projectID string, request models.UpdateLabelRequest) (models.LabelEntity, error) {
	body := map[string]string{"name": request.Name}
	if request.NewName != nil {
		body["new_name"] = *request.NewName
	}
	if request.Color != nil {
		body["color"] = *request.Color
	}
	if request.Description != nil {
		body["description"] = *request.Description
	}

	return h.labelRequest(ctx, "update label", projectID, body, (*resty.Request).Put)
}

func (h *httpLabelsAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/v4/version")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// labelRequest sends body as JSON with send and decodes a single label.
func (h *httpLabelsAdapter) labelRequest(
	ctx context.Context,
	operation, projectID string,
	body map[string]string,
	send func(*resty.Request, string) (*resty.Response, error),
) (models.LabelEntity, error) {
	var label models.LabelEntity

	req := h.authedRequest(ctx, projectID).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&label)

	resp, err := send(req, labelsPath)
	if err != nil {
		return models.LabelEntity{}, fmt.Errorf("%s request: %w", operation, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LabelEntity{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("operation", operation).
		Str("project", projectID).
		Int64("label_id", label.ID).
		Msg("label request succeeded")

	return label, nil
}

func (h *httpLabelsAdapter) authedRequest(ctx context.Context, projectID string) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetPathParam("id", projectID)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func setQueryParam(req *resty.Request, name string, value *string) {
	if value != nil {
		req.SetQueryParam(name, *value)
	}
}
