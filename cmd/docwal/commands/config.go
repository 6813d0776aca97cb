package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/docwal/docwal-go/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Config represents the persisted CLI configuration.
type Config struct {
	APIKey  string `json:"api_key,omitempty"  yaml:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Output  string `json:"output,omitempty"   yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage DocWal CLI configuration including the API key and defaults",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigSetKeyCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the API key redacted",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			// Never print the key itself
			redacted := *config
			if redacted.APIKey != "" {
				redacted.APIKey = "[REDACTED]"
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(&redacted)
			case OutputFormatYAML:
				return encodeYAML(&redacted)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("API Key", valueOrDash(redacted.APIKey))
				_ = table.Append("Base URL", valueOrDash(redacted.BaseURL))
				_ = table.Append("Output", valueOrDash(redacted.Output))
				_ = table.Render()
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set base_url or output. Use 'config set-key' for the API key.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			config := loadConfig()

			switch key {
			case "base_url":
				config.BaseURL = value
			case "output":
				if value != "table" && value != OutputFormatJSON && value != OutputFormatYAML {
					return fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, value)
				}

				config.Output = value
			case "api_key":
				return fmt.Errorf("%w: %s. Use 'docwal config set-key' instead", constants.ErrUnknownConfigKey, key)
			default:
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			err := saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Printf("Set %s\n", key)

			return nil
		},
	}
}

func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key",
		Short: "Set the API key",
		Long:  "Store the institution API key in the CLI configuration, prompting without echo",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("API Key: ")

			keyBytes, err := term.ReadPassword(syscall.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read API key: %w", err)
			}

			_, _ = os.Stdout.WriteString("\n") // Add newline after password input

			apiKey := string(keyBytes)
			if apiKey == "" {
				return constants.ErrAPIKeyRequired
			}

			config := loadConfig()
			config.APIKey = apiKey

			err = saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Println("API key saved")

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a specific configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			config := loadConfig()

			switch key {
			case "api_key":
				config.APIKey = ""
			case "base_url":
				config.BaseURL = ""
			case "output":
				config.Output = ""
			default:
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			err := saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", key)

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the CLI configuration file entirely",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile := configFilePath()

			err := os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			fmt.Println("Cleared configuration")

			return nil
		},
	}
}

func loadConfig() *Config {
	return &Config{
		APIKey:  viper.GetString("api_key"),
		BaseURL: viper.GetString("base_url"),
		Output:  viper.GetString("output"),
	}
}

func saveConfig(config *Config) error {
	configFile := configFilePath()

	configDir := filepath.Dir(configFile)

	err := os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func configFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, _ := os.UserHomeDir()
		configFile = filepath.Join(home, ".docwal", "config.yml")
	}

	return configFile
}
