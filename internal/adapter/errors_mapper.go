package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/go-resty/resty/v2"
)

// errorBody covers both error shapes of the API:
// {"message": "..."} or {"message": {...}} and {"error": "..."}.
type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrValidation, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorMessage extracts the human readable part of an error body. Unknown
// bodies are returned trimmed.
func errorMessage(raw []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return strings.TrimSpace(string(raw))
	}

	if parsed.Error != "" {
		return parsed.Error
	}

	var message string
	if err := json.Unmarshal(parsed.Message, &message); err == nil {
		return message
	}

	var fields map[string][]string
	if err := json.Unmarshal(parsed.Message, &fields); err == nil && len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for field, messages := range fields {
			parts = append(parts, field+" "+strings.Join(messages, ", "))
		}
		slices.Sort(parts)
		return strings.Join(parts, "; ")
	}

	return strings.TrimSpace(string(raw))
}
