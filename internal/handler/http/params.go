package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
)

// maxParamsBodySize caps the request body read while collecting params.
const maxParamsBodySize = 1 << 20

// declaredParams holds the declared params a client actually sent.
// A key is present in values only if the client sent it, possibly with an
// empty value. Keys sent as JSON null are kept in nulls instead.
type declaredParams struct {
	values map[string]string
	nulls  map[string]struct{}
}

func newDeclaredParams(size int) declaredParams {
	return declaredParams{
		values: make(map[string]string, size),
		nulls:  make(map[string]struct{}),
	}
}

func (p declaredParams) set(key, value string) {
	delete(p.nulls, key)
	p.values[key] = value
}

func (p declaredParams) setNull(key string) {
	delete(p.values, key)
	p.nulls[key] = struct{}{}
}

// parseParams collects the declared names from the URL query, then from an
// urlencoded form body, then from a JSON object body. Later sources win.
// Undeclared keys are ignored.
func parseParams(r *http.Request, names ...string) (declaredParams, error) {
	declared := make(map[string]struct{}, len(names))
	for _, name := range names {
		declared[name] = struct{}{}
	}

	params := newDeclaredParams(len(names))
	params.merge(declared, r.URL.Query())

	if r.Body == nil || r.Body == http.NoBody {
		return params, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxParamsBodySize+1))
	if err != nil {
		return declaredParams{}, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if len(body) > maxParamsBodySize {
		return declaredParams{}, fmt.Errorf("%w: body exceeds %d bytes", ErrInvalidBody, maxParamsBodySize)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return params, nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		form, err := url.ParseQuery(string(body))
		if err != nil {
			return declaredParams{}, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		params.merge(declared, form)
	case "application/json":
		if err = params.mergeJSON(declared, body); err != nil {
			return declaredParams{}, err
		}
	}

	return params, nil
}

// merge copies the last value of every declared key in values.
func (p declaredParams) merge(declared map[string]struct{}, values url.Values) {
	for key, vals := range values {
		if _, ok := declared[key]; !ok || len(vals) == 0 {
			continue
		}
		p.set(key, vals[len(vals)-1])
	}
}

// mergeJSON accepts strings as is and coerces numbers and booleans to their
// string form. null is recorded as sent-null. Objects and arrays are
// rejected.
func (p declaredParams) mergeJSON(declared map[string]struct{}, body []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var object map[string]any
	if err := decoder.Decode(&object); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	for key, raw := range object {
		if _, ok := declared[key]; !ok {
			continue
		}

		switch value := raw.(type) {
		case nil:
			p.setNull(key)
		case string:
			p.set(key, value)
		case json.Number:
			p.set(key, value.String())
		case bool:
			p.set(key, strconv.FormatBool(value))
		default:
			return &ParamError{Name: key, Err: ErrParameterInvalid}
		}
	}

	return nil
}

// Required returns the value of name. A missing name gives a ParamError
// wrapping ErrParameterMissing, a null one ErrParameterInvalid.
func (p declaredParams) Required(name string) (string, error) {
	if p.IsNull(name) {
		return "", &ParamError{Name: name, Err: ErrParameterInvalid}
	}
	value, ok := p.values[name]
	if !ok {
		return "", &ParamError{Name: name, Err: ErrParameterMissing}
	}
	return value, nil
}

// Optional returns nil when name was not sent or was sent as null.
func (p declaredParams) Optional(name string) *string {
	value, ok := p.values[name]
	if !ok {
		return nil
	}
	return &value
}

// IsNull reports whether name was sent as JSON null.
func (p declaredParams) IsNull(name string) bool {
	_, ok := p.nulls[name]
	return ok
}

// NotNull rejects the first of names that was sent as null.
func (p declaredParams) NotNull(names ...string) error {
	for _, name := range names {
		if p.IsNull(name) {
			return &ParamError{Name: name, Err: ErrParameterInvalid}
		}
	}
	return nil
}
