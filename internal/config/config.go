package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort         int    `json:"server_port"`
	JWTSecretKey       string `json:"jwt_secret_key"`
	JWTExpirationHours int    `json:"jwt_expiration_hours"`
	DefaultRateLimit   int    `json:"default_rate_limit"`
	GlobalRateLimit    int    `json:"global_rate_limit"`

	// Tenancy settings
	DefaultCitySlug             string        `json:"default_city_slug"`
	CityHeaderName              string        `json:"city_header_name"`
	CityCacheTTL                time.Duration `json:"city_cache_ttl"`
	OverrideTTL                 time.Duration `json:"override_ttl"`
	IncidentEscalationThreshold int64         `json:"incident_escalation_threshold"`
	IncidentEscalationWindow    time.Duration `json:"incident_escalation_window"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 10000
	}

	jwtExpirationHours, _ := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS"))
	if jwtExpirationHours == 0 {
		jwtExpirationHours = 24
	}

	defaultRateLimit, _ := strconv.Atoi(os.Getenv("DEFAULT_RATE_LIMIT"))
	if defaultRateLimit == 0 {
		defaultRateLimit = 1000 // 1000 requests per minute per city
	}

	globalRateLimit, _ := strconv.Atoi(os.Getenv("GLOBAL_RATE_LIMIT"))
	if globalRateLimit == 0 {
		globalRateLimit = 10000 // 10000 requests per minute globally per IP
	}

	escalationThreshold, _ := strconv.ParseInt(os.Getenv("INCIDENT_ESCALATION_THRESHOLD"), 10, 64)
	if escalationThreshold == 0 {
		escalationThreshold = 5
	}

	return &Config{
		ServerPort:                  serverPort,
		JWTSecretKey:                os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationHours:          jwtExpirationHours,
		DefaultRateLimit:            defaultRateLimit,
		GlobalRateLimit:             globalRateLimit,
		DefaultCitySlug:             getEnvWithDefault("DEFAULT_CITY_SLUG", "tijucas-sc"),
		CityHeaderName:              getEnvWithDefault("CITY_HEADER_NAME", "X-City"),
		CityCacheTTL:                getEnvDurationWithDefault("CITY_CACHE_TTL", 5*time.Minute),
		OverrideTTL:                 getEnvDurationWithDefault("TENANT_OVERRIDE_TTL", 24*time.Hour),
		IncidentEscalationThreshold: escalationThreshold,
		IncidentEscalationWindow:    getEnvDurationWithDefault("INCIDENT_ESCALATION_WINDOW", 300*time.Second),
	}, nil
}
