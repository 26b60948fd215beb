package types

// Config is the process configuration read at startup.
type Config struct {
	Endpoint     string `env:"NEXT_PUBLIC_APPWRITE_ENDPOINT" validate:"required,url"`
	ProjectID    string `env:"NEXT_PUBLIC_APPWRITE_PROJECT_ID" validate:"required"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info" validate:"omitempty,oneof=debug info warn error"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"json" validate:"omitempty,oneof=json console"`
	GCPProjectID string `env:"GOOGLE_CLOUD_PROJECT"`
	Port         int    `env:"PORT" envDefault:"8080" validate:"omitempty,min=1,max=65535"`
}
