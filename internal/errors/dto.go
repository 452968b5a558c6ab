package errors

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

const detailsPrefix = "__json__:"

// ErrorResponse is the envelope every failed request is rendered with
type ErrorResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Hint    string         `json:"hint,omitempty"`
	Code    string         `json:"code,omitempty"`
}

// NewErrorResponse builds the envelope from a marked error.
// The message is the first hint, remaining hints are joined into Hint.
func NewErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{
		Success: false,
		Message: "An unexpected error occurred",
		Code:    CodeFromErr(err),
	}

	var hints []string
	for _, h := range errors.GetAllHints(err) {
		if h = strings.TrimSpace(h); h != "" {
			hints = append(hints, h)
		}
	}
	if len(hints) > 0 {
		resp.Message = hints[0]
		if len(hints) > 1 {
			resp.Hint = strings.Join(hints[1:], "; ")
		}
	} else if HTTPStatusFromErr(err) < 500 {
		resp.Message = err.Error()
	}

	resp.Details = ReportableDetails(err)
	return resp
}

// ReportableDetails merges every structured detail attached with WithReportableDetails
func ReportableDetails(err error) map[string]any {
	var details map[string]any
	for _, safe := range errors.GetAllSafeDetails(err) {
		for _, payload := range safe.SafeDetails {
			if !strings.HasPrefix(payload, detailsPrefix) {
				continue
			}
			var m map[string]any
			if jerr := json.Unmarshal([]byte(strings.TrimPrefix(payload, detailsPrefix)), &m); jerr != nil {
				continue
			}
			if details == nil {
				details = make(map[string]any, len(m))
			}
			for k, v := range m {
				if _, exists := details[k]; !exists {
					details[k] = v
				}
			}
		}
	}
	return details
}
