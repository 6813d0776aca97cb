package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewAPIKeysCommand creates the api-keys command group
func NewAPIKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "api-keys",
		Aliases: []string{"api-key", "keys"},
		Short:   "Manage API keys",
		Long:    "Generate, inspect, rotate, and revoke your institution's API key",
	}

	cmd.AddCommand(newAPIKeysGenerateCommand())
	cmd.AddCommand(newAPIKeysInfoCommand())
	cmd.AddCommand(newAPIKeysRegenerateCommand())
	cmd.AddCommand(newAPIKeysRevokeCommand())

	return cmd
}

func newAPIKeysGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate an API key",
		Long:  "Generate a new API key for your institution. The full key is shown only once.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := client.APIKeys().Generate(ctx)
			if err != nil {
				return fmt.Errorf("failed to generate API key: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(result)
			case OutputFormatYAML:
				return encodeYAML(result)
			default:
				fmt.Printf("API key: %s\n", result.APIKey)

				if result.Warning != "" {
					fmt.Printf("Warning: %s\n", result.Warning)
				}
			}

			return nil
		},
	}
}

func newAPIKeysInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show API key info",
		Long:  "Display masked information about the current API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			info, err := client.APIKeys().Info(ctx)
			if err != nil {
				return fmt.Errorf("failed to get API key info: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(info)
			case OutputFormatYAML:
				return encodeYAML(info)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Key", info.APIKey)
				_ = table.Append("Active", strconv.FormatBool(info.IsActive))
				_ = table.Append("Created At", valueOrDash(info.CreatedAt))
				_ = table.Append("Last Used", valueOrDash(info.LastUsedAt))
				_ = table.Render()
			}

			return nil
		},
	}
}

func newAPIKeysRegenerateCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "regenerate",
		Short: "Regenerate the API key",
		Long:  "Rotate the institution API key. The previous key stops working immediately.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Print("Regenerating invalidates the current key. Continue? (y/N): ")

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := client.APIKeys().Regenerate(ctx)
			if err != nil {
				return fmt.Errorf("failed to regenerate API key: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(result)
			case OutputFormatYAML:
				return encodeYAML(result)
			default:
				fmt.Printf("New API key: %s\n", result.APIKey)

				if result.Warning != "" {
					fmt.Printf("Warning: %s\n", result.Warning)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newAPIKeysRevokeCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke the API key",
		Long:  "Revoke the institution API key without issuing a replacement",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Print("Really revoke the current API key? (y/N): ")

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := client.APIKeys().Revoke(ctx)
			if err != nil {
				return fmt.Errorf("failed to revoke API key: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(result)
			case OutputFormatYAML:
				return encodeYAML(result)
			default:
				fmt.Println("API key revoked")
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
