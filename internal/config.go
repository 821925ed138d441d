package internal

import "time"

type Config struct {
	Port                 int           `env:"PORT,default=3000"`
	StaticDir            string        `env:"STATIC_DIR"`
	DatabaseFilepath     string        `env:"DATABASE_FILEPATH,default=database.json"`
	OpenAIAPIKey         string        `env:"OPENAI_API_KEY"`
	OpenAIModel          string        `env:"OPENAI_MODEL,default=gpt-4.1-2025-04-14"`
	CommentaryInterval   time.Duration `env:"COMMENTARY_INTERVAL,default=60s"`
	TelemetryInterval    time.Duration `env:"TELEMETRY_INTERVAL,default=30s"`
	ReasoningTimeout     time.Duration `env:"REASONING_TIMEOUT,default=30s"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=32"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
}
