package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/docwal/docwal-go/internal/constants"
	"github.com/docwal/docwal-go/pkg/docwal"
	"github.com/docwal/docwal-go/pkg/docwalclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// createClient builds a DocWal client from the effective CLI configuration.
func createClient() (docwal.Client, error) {
	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	config := &docwal.Config{
		APIKey:  apiKey,
		BaseURL: viper.GetString("base_url"),
		Debug:   viper.GetBool("verbose"),
	}

	if config.Debug {
		config.Logger = &stderrLogger{}
	}

	client, err := docwalclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// stderrLogger writes debug output to stderr so it never corrupts piped
// JSON or YAML output.
type stderrLogger struct{}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l *stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l *stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l *stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s %v\n", level, msg, fields)
}

// encodeJSON writes data to stdout as indented JSON.
func encodeJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// encodeYAML writes data to stdout as YAML.
func encodeYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	return nil
}

// valueOrDash substitutes "-" for empty table cells.
func valueOrDash(value string) string {
	if value == "" {
		return "-"
	}

	return value
}
