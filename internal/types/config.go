package types

type RunMode string

const (
	// ModeLocal runs the API server against a local database
	ModeLocal RunMode = "local"
	// ModeAPI is the mode for running just the API server
	ModeAPI RunMode = "api"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

type AuthProvider string

const (
	AuthProviderSupabase AuthProvider = "supabase"
	AuthProviderLocal    AuthProvider = "local"
)

// SequenceMode selects how process numbers are allocated
type SequenceMode string

const (
	// SequenceModeAtomic allocates from a per-scope counter row updated atomically
	SequenceModeAtomic SequenceMode = "atomic"
	// SequenceModeCount counts existing rows in the scope and adds one.
	// Concurrent creations in the same scope can receive the same number.
	SequenceModeCount SequenceMode = "count"
)
