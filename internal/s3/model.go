package s3

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// PresignedURL is a time limited URL the browser uses to move a document
// directly to or from the bucket
type PresignedURL struct {
	URL       string            `json:"url"`
	Method    string            `json:"method"`
	Key       string            `json:"storage_key"`
	Headers   map[string]string `json:"headers,omitempty"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// ObjectKey builds the bucket key of a process document.
// Keys are grouped per municipality and process: {prefix}/{tenant}/{process}/{document}-{file}
func ObjectKey(prefix, tenantID, processID, documentID, fileName string) string {
	name := fmt.Sprintf("%s-%s", documentID, sanitizeFileName(fileName))
	return ProcessKeyPrefix(prefix, tenantID, processID) + name
}

// ProcessKeyPrefix is the part shared by every key of a process, ending in a slash
func ProcessKeyPrefix(prefix, tenantID, processID string) string {
	parts := []string{tenantID, processID}
	if prefix = strings.Trim(prefix, "/"); prefix != "" {
		parts = append([]string{prefix}, parts...)
	}
	return path.Join(parts...) + "/"
}

func sanitizeFileName(fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "arquivo"
	}

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
