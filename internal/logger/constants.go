package logger

// Accepted LOG_LEVEL values; "warning" is an alias of "warn"
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Fallbacks for attributes left empty in Config
const (
	DefaultServiceName = "lootforge"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
)

// Attribute keys stamped on every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
