package driven

// ConfigStore provides persistent key-value configuration storage.
// Keys use dot notation, e.g. "server.addr".
type ConfigStore interface {
	// Get retrieves a raw value, reporting whether the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value, "" if absent or mistyped.
	GetString(key string) string

	// GetInt retrieves an integer value, 0 if absent or mistyped.
	GetInt(key string) int

	// GetFloat retrieves a float value, 0 if absent or mistyped.
	GetFloat(key string) float64

	// GetBool retrieves a boolean value, false if absent or mistyped.
	GetBool(key string) bool

	// Set stores a value and persists it immediately.
	Set(key string, value any) error
}
