package types

// Environment variables
const (
	APPWRITE_ENDPOINT_ENV            = "NEXT_PUBLIC_APPWRITE_ENDPOINT"
	APPWRITE_PROJECT_ID_ENV          = "NEXT_PUBLIC_APPWRITE_PROJECT_ID"
	APPWRITE_ENDPOINT_FALLBACK_ENV   = "APPWRITE_ENDPOINT"
	APPWRITE_PROJECT_ID_FALLBACK_ENV = "APPWRITE_PROJECT_ID"
)

// Logging
const (
	CLOUD_LOGGER_NAME  = "appwrite-api"
	LOG_FORMAT_JSON    = "json"
	LOG_FORMAT_CONSOLE = "console"
)

// HTTP
const (
	REQUEST_ID_HEADER      = "X-Request-ID"
	REQUEST_ID_CONTEXT_KEY = "requestId"
	DEFAULT_PORT           = 8080
)
