package types

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex proc_01HZY3M4W0Q8S1E6W4G4A3X9QK
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

const (
	// Prefixes for all domains and entities

	UUID_PREFIX_TENANT      = "tenant"
	UUID_PREFIX_USER        = "user"
	UUID_PREFIX_PROCESS     = "proc"
	UUID_PREFIX_HISTORY     = "hist"
	UUID_PREFIX_FINANCIAL   = "fin"
	UUID_PREFIX_INVOICE     = "nf"
	UUID_PREFIX_PAYMENT     = "pay"
	UUID_PREFIX_DOCUMENT    = "doc"
	UUID_PREFIX_FISCAL      = "fisc"
	UUID_PREFIX_INSPECTION  = "insp"
	UUID_PREFIX_OBSERVATION = "obs"
)
