package config

const (
	// DefaultResultsFile is where the last run is stored
	DefaultResultsFile = ".snow/results.json"
	// DefaultEnvFile is loaded into the environment before resolving options
	DefaultEnvFile = ".env"
	// DefaultTimer is whether elapsed times are printed
	DefaultTimer = true
	// DefaultQuiet is whether passing cases are hidden
	DefaultQuiet = false

	// DefaultDBHost is the default results database host
	DefaultDBHost = "127.0.0.1"
	// DefaultDBPort is the default results database port
	DefaultDBPort = "3306"
	// DefaultDBUser is the default results database user
	DefaultDBUser = "root"
)

// Environment variables consulted when a flag is not given
const (
	EnvColor   = "SNOW_COLOR"
	EnvQuiet   = "SNOW_QUIET"
	EnvTimer   = "SNOW_TIMER"
	EnvMaybes  = "SNOW_MAYBES"
	EnvCR      = "SNOW_CR"
	EnvLog     = "SNOW_LOG"
	EnvResults = "SNOW_RESULTS"
	EnvDebug   = "SNOW_DEBUG"

	EnvDBHost     = "SNOW_DB_HOST"
	EnvDBPort     = "SNOW_DB_PORT"
	EnvDBUser     = "SNOW_DB_USERNAME"
	EnvDBPassword = "SNOW_DB_PASSWORD"
	EnvDBName     = "SNOW_DB_NAME"
)
