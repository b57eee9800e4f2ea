package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/internal/service"
	"github.com/MKhiriev/go-label-keeper/internal/store"
	"github.com/MKhiriev/go-label-keeper/internal/utils"
	"github.com/MKhiriev/go-label-keeper/internal/validators"
	"github.com/MKhiriev/go-label-keeper/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	ErrUnauthenticated:                  http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	service.ErrUserBlocked:              http.StatusUnauthorized,
	store.ErrNoUserWasFound:             http.StatusUnauthorized,

	ErrParameterMissing:                http.StatusBadRequest,
	ErrParameterInvalid:                http.StatusBadRequest,
	ErrInvalidBody:                     http.StatusBadRequest,
	service.ErrMissingUpdateAttributes: http.StatusBadRequest,

	errRouteNotFound:              http.StatusNotFound,
	service.ErrForbidden:          http.StatusForbidden,
	service.ErrProjectNotFound:    http.StatusNotFound,
	store.ErrLabelNotFound:        http.StatusNotFound,
	service.ErrLabelAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap overrides the default "<code> <status text>" message.
var errorMessageMap = map[error]string{
	service.ErrProjectNotFound:    "404 Project Not Found",
	store.ErrLabelNotFound:        "404 Label Not Found",
	service.ErrLabelAlreadyExists: "409 Label already exists",
}

func statusFromError(err error) int {
	if _, ok := validators.AsValidationError(err); ok {
		return http.StatusUnprocessableEntity
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return fmt.Sprintf("%d %s", status, http.StatusText(status))
}

// writeError renders err in one of three shapes:
//
//	422  {"message": {"<attribute>": ["<message>", ...]}}
//	400  {"error": "<reason>"}
//	else {"message": "<code> <reason>"}
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	var body any
	switch status {
	case http.StatusUnprocessableEntity:
		vErr, _ := validators.AsValidationError(err)
		body = models.MessageResponse{Message: vErr.Errors}
	case http.StatusBadRequest:
		body = models.ErrorResponse{Error: err.Error()}
	default:
		body = models.MessageResponse{Message: messageFromError(err, status)}
	}

	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
