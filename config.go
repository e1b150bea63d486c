package mcpbridge

// ServeConfig is shared by every server binary. An empty HTTPAddr means the
// server speaks MCP over stdio.
type ServeConfig struct {
	HTTPAddr    string `env:"HTTP_ADDR,default="`
	AuthToken   string `env:"AUTH_TOKEN,default="`
	CallLogPath string `env:"CALL_LOG_PATH,default="`
	Debug       bool   `env:"DEBUG,default=false"`
	OtelEnabled bool   `env:"OTEL_ENABLED,default=false"`
}

type TranscriptConfig struct {
	DefaultLanguage string `env:"TRANSCRIPT_LANGUAGE,default=en"`
	HTTPTimeoutSecs int    `env:"TRANSCRIPT_HTTP_TIMEOUT_SECS,default=15"`
}

type StorageConfig struct {
	Region string `env:"AWS_REGION,default="`
}

type ScraperConfig struct {
	Backend         string  `env:"SCRAPER_BACKEND,default=openai"`
	OpenAIAPIKey    string  `env:"OPENAI_API_KEY,default="`
	OpenAIModel     string  `env:"OPENAI_MODEL,default=gpt-4o-mini"`
	BedrockModelID  string  `env:"BEDROCK_MODEL_ID,default=us.anthropic.claude-3-7-sonnet-20250219-v1:0"`
	MaxTokens       int32   `env:"MAX_TOKENS,default=1024"`
	Temperature     float32 `env:"TEMPERATURE,default=0.2"`
	MaxContentBytes int     `env:"SCRAPER_MAX_CONTENT_BYTES,default=262144"`
	HTTPTimeoutSecs int     `env:"SCRAPER_HTTP_TIMEOUT_SECS,default=30"`
}

type VectorConfig struct {
	Host   string `env:"QDRANT_HOST,default=localhost"`
	Port   int    `env:"QDRANT_PORT,default=6334"`
	APIKey string `env:"QDRANT_API_KEY,default="`
	UseTLS bool   `env:"QDRANT_USE_TLS,default=false"`
}

type ContainerConfig struct {
	// Directory of compose/container templates served as MCP resources.
	TemplatesDir string `env:"TEMPLATES_DIR,default="`
	LogTail      string `env:"CONTAINER_LOG_TAIL,default=100"`
}
