// Package config loads service configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort        = 8080
	defaultRegion      = "us-east-1"
	defaultPresignTTL  = 300 * time.Second
	defaultCatalogPath = "configs/document_types.toml"
)

// Env holds the values shared by the API and the admin CLI.
// Table names are read by each repository constructor.
type Env struct {
	Port             int
	Region           string
	DynamoDBEndpoint string
	AWSEndpointURL   string
	DocumentsBucket  string
	PresignTTL       time.Duration
	MailFrom         string
	MailMock         bool
	CatalogPath      string
}

func Load() Env {
	return Env{
		Port:             getInt("PORT", defaultPort),
		Region:           get("AWS_REGION", defaultRegion),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		AWSEndpointURL:   os.Getenv("AWS_ENDPOINT_URL"),
		DocumentsBucket:  os.Getenv("DOCUMENTS_BUCKET"),
		PresignTTL:       getSeconds("PRESIGN_TTL_SECONDS", defaultPresignTTL),
		MailFrom:         os.Getenv("MAIL_FROM"),
		MailMock:         isEnabled(os.Getenv("MAIL_MOCK")),
		CatalogPath:      get("DOCUMENT_CATALOG_PATH", defaultCatalogPath),
	}
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(k)))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getSeconds(k string, def time.Duration) time.Duration {
	n := getInt(k, 0)
	if n == 0 {
		return def
	}
	return time.Duration(n) * time.Second
}

func isEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
