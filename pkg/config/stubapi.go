package config

// StubAPIConfig configures the local stand-in API server.
type StubAPIConfig struct {
	Port   int
	APIKey string
}

func loadStubAPIConfig() StubAPIConfig {
	return StubAPIConfig{
		Port:   getEnvInt("STUBAPI_PORT", 8080),
		APIKey: getEnv("STUBAPI_API_KEY", ""),
	}
}
