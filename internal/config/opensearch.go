package config

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
)

type OpenSearchConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

func DefaultOpenSearchConfig() *OpenSearchConfig {
	return &OpenSearchConfig{
		Host:     getEnvOrDefault("OPENSEARCH_HOST", "localhost"),
		Port:     getEnvOrDefault("OPENSEARCH_PORT", "9200"),
		Username: getEnvOrDefault("OPENSEARCH_USERNAME", ""),
		Password: getEnvOrDefault("OPENSEARCH_PASSWORD", ""),
	}
}

func (c *OpenSearchConfig) GetClient() (*opensearch.Client, error) {
	config := opensearch.Config{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		},
		Addresses: []string{
			fmt.Sprintf("http://%s:%s", c.Host, c.Port),
		},
	}

	if c.Username != "" && c.Password != "" {
		config.Username = c.Username
		config.Password = c.Password
	}

	return opensearch.NewClient(config)
}

// GetIndexName returns the incident index for a city and month.
// Format: tenancy_incidents_<city_id>_YYYY_MM. Incidents without a city
// land in the "global" index.
func (c *OpenSearchConfig) GetIndexName(cityID string, t time.Time) string {
	if cityID == "" {
		cityID = "global"
	}
	return fmt.Sprintf("tenancy_incidents_%s_%s", cityID, t.Format("2006_01"))
}

// GetIndexPattern returns a pattern matching all incident indices for a
// city; an empty cityID matches every city.
func (c *OpenSearchConfig) GetIndexPattern(cityID string) string {
	if cityID == "" {
		return "tenancy_incidents_*"
	}
	return fmt.Sprintf("tenancy_incidents_%s_*", cityID)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
