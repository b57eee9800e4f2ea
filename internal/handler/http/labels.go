package http

import (
	"net/http"

	"github.com/MKhiriev/go-label-keeper/internal/issuefilter"
	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/internal/service"
	"github.com/MKhiriev/go-label-keeper/internal/utils"
	"github.com/MKhiriev/go-label-keeper/models"
	"github.com/go-chi/chi/v5"
)

// Declared param names of the label endpoints.
const (
	paramName        = "name"
	paramNewName     = "new_name"
	paramColor       = "color"
	paramDescription = "description"
	paramState       = "state"
	paramLabels      = "labels"
	paramMilestone   = "milestone"
)

// GET /projects/{id}/labels
func (h *Handler) listLabels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params, err := parseParams(r, paramState, paramLabels, paramMilestone)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, project, err := h.resolveProject(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.LabelService.List(ctx, user, project, issuefilter.Filter{
		State:     params.Optional(paramState),
		Labels:    params.Optional(paramLabels),
		Milestone: params.Optional(paramMilestone),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.NewLabelsResponse(result), http.StatusOK)
}

// POST /projects/{id}/labels
func (h *Handler) createLabel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params, err := parseParams(r, paramName, paramColor, paramDescription)
	if err != nil {
		writeError(w, r, err)
		return
	}

	name, err := params.Required(paramName)
	if err != nil {
		writeError(w, r, err)
		return
	}
	color, err := params.Required(paramColor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, project, err := h.resolveProject(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	label, err := h.services.LabelService.Create(ctx, user, project, models.CreateLabelRequest{
		Name:        name,
		Color:       color,
		Description: params.Optional(paramDescription),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Int64("project_id", project.ID).
		Int64("label_id", label.ID).
		Msg("label created")

	h.writeJSON(w, r, models.NewLabelEntity(label), http.StatusCreated)
}

// DELETE /projects/{id}/labels
func (h *Handler) deleteLabel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params, err := parseParams(r, paramName)
	if err != nil {
		writeError(w, r, err)
		return
	}

	name, err := params.Required(paramName)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, project, err := h.resolveProject(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	label, err := h.services.LabelService.Delete(ctx, user, project, name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Int64("project_id", project.ID).
		Int64("label_id", label.ID).
		Msg("label deleted")

	h.writeJSON(w, r, models.NewLabelEntity(label), http.StatusOK)
}

// PUT /projects/{id}/labels
func (h *Handler) updateLabel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params, err := parseParams(r, paramName, paramNewName, paramColor, paramDescription)
	if err != nil {
		writeError(w, r, err)
		return
	}

	name, err := params.Required(paramName)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// only description can be cleared
	if err = params.NotNull(paramNewName, paramColor); err != nil {
		writeError(w, r, err)
		return
	}

	request := models.UpdateLabelRequest{
		Name:             name,
		NewName:          params.Optional(paramNewName),
		Color:            params.Optional(paramColor),
		Description:      params.Optional(paramDescription),
		ClearDescription: params.IsNull(paramDescription),
	}
	// rejected before the project is looked up
	if !request.HasUpdates() {
		writeError(w, r, service.ErrMissingUpdateAttributes)
		return
	}

	user, project, err := h.resolveProject(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	label, err := h.services.LabelService.Update(ctx, user, project, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.NewLabelEntity(label), http.StatusOK)
}

// resolveProject returns the authenticated user and the project addressed by
// the {id} path param.
func (h *Handler) resolveProject(r *http.Request) (models.User, models.Project, error) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		return models.User{}, models.Project{}, ErrUnauthenticated
	}

	project, err := h.services.ProjectService.Resolve(r.Context(), *user, chi.URLParam(r, "id"))
	if err != nil {
		return models.User{}, models.Project{}, err
	}

	return *user, project, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
