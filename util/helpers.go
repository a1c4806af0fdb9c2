// Package util provides helper functions shared by the purl-component server and CLI.
package util

import (
	"os"
	"strings"

	"github.com/ortelius/purl-component/model"
	"github.com/package-url/packageurl-go"
)

// Version of the purl-component module
const Version = "1.0.0"

// GetEnvDefault is a convenience function for handling env vars
func GetEnvDefault(key, defVal string) string {
	val, ex := os.LookupEnv(key) // get the env var
	if !ex {                     // not found return default
		return defVal
	}
	return val // return value for env var
}

// IsEmpty checks if a string is empty or contains only whitespace
func IsEmpty(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// GetStringOrDefault returns value or default if empty
func GetStringOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

// ParsePURL parses a PURL string and returns the parsed PackageURL
func ParsePURL(purlStr string) (*packageurl.PackageURL, error) {
	parsed, err := packageurl.FromString(purlStr)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// ToParsedPurl copies a PackageURL into the API representation, keeping qualifier order
func ToParsedPurl(p *packageurl.PackageURL) model.ParsedPurl {
	parsed := model.ParsedPurl{
		Type:      p.Type,
		Namespace: p.Namespace,
		Name:      p.Name,
		Version:   p.Version,
		Subpath:   p.Subpath,
	}

	for _, q := range p.Qualifiers {
		parsed.Qualifiers = append(parsed.Qualifiers, model.Qualifier{Key: q.Key, Value: q.Value})
	}

	return parsed
}
