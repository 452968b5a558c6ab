package dto

import (
	"encoding/json"
	"strings"

	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
)

// Response is the envelope of every successful request
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func NewResponse(data any) Response {
	return Response{Success: true, Data: data}
}

func NewMessageResponse(data any, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

// presentFields records which keys an update body carried so an explicit null clears a field
type presentFields map[string]struct{}

func decodePresent(data []byte) (presentFields, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	present := make(presentFields, len(raw))
	for k := range raw {
		present[k] = struct{}{}
	}
	return present, nil
}

func (p presentFields) has(field string) bool {
	_, ok := p[field]
	return ok
}

// cleanText trims s and turns blank strings into nil
func cleanText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func missingFieldsError(missing []string) error {
	list := strings.Join(missing, ", ")
	return ierr.NewErrorf("missing required fields: %s", list).
		WithHintf("Missing required fields: %s", list).
		WithReportableDetails(map[string]any{"missing_fields": missing}).
		Mark(ierr.ErrValidation)
}

func invalidFieldError(field, hint string) error {
	return ierr.NewErrorf("invalid %s", field).
		WithHint(hint).
		WithReportableDetails(map[string]any{field: hint}).
		Mark(ierr.ErrValidation)
}
