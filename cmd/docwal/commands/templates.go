package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/docwal/docwal-go/pkg/docwal"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTemplatesCommand creates the templates command group
func NewTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template"},
		Short:   "Manage credential templates",
		Long:    "List and manage your institution's credential templates",
	}

	cmd.AddCommand(newTemplatesListCommand())
	cmd.AddCommand(newTemplatesGetCommand())
	cmd.AddCommand(newTemplatesCreateCommand())
	cmd.AddCommand(newTemplatesUpdateCommand())
	cmd.AddCommand(newTemplatesDeleteCommand())

	return cmd
}

func newTemplatesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List templates",
		Long:  "List all credential templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			templates, err := client.Templates().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list templates: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(templates)
			case OutputFormatYAML:
				return encodeYAML(templates)
			default:
				if len(templates) == 0 {
					fmt.Println("No templates found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Type", "Version", "Active")

				for _, tpl := range templates {
					_ = table.Append(tpl.ID, tpl.Name, valueOrDash(tpl.CredentialType),
						valueOrDash(tpl.Version), strconv.FormatBool(tpl.IsActive))
				}

				_ = table.Render()
			}

			return nil
		},
	}
}

func newTemplatesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TEMPLATE_ID",
		Short: "Get template details",
		Long:  "Display detailed information about a specific template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			tpl, err := client.Templates().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get template: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(tpl)
			case OutputFormatYAML:
				return encodeYAML(tpl)
			default:
				fmt.Printf("Template: %s\n", tpl.Name)
				fmt.Printf("  ID:          %s\n", tpl.ID)
				fmt.Printf("  Type:        %s\n", valueOrDash(tpl.CredentialType))
				fmt.Printf("  Version:     %s\n", valueOrDash(tpl.Version))
				fmt.Printf("  Active:      %t\n", tpl.IsActive)
				fmt.Printf("  Description: %s\n", valueOrDash(tpl.Description))

				if len(tpl.Schema) > 0 {
					fmt.Println("  Schema:")

					for field, def := range tpl.Schema {
						fmt.Printf("    %s: %v\n", field, def)
					}
				}
			}

			return nil
		},
	}
}

func newTemplatesCreateCommand() *cobra.Command {
	var (
		name           string
		description    string
		credentialType string
		version        string
		schemaPath     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a template",
		Long:  "Create a new credential template",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &docwal.CreateTemplateRequest{
				Name:           name,
				Description:    description,
				CredentialType: credentialType,
				Version:        version,
			}

			if schemaPath != "" {
				data, err := os.ReadFile(schemaPath)
				if err != nil {
					return fmt.Errorf("reading schema file: %w", err)
				}

				err = json.Unmarshal(data, &request.Schema)
				if err != nil {
					return fmt.Errorf("parsing schema file: %w", err)
				}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			tpl, err := client.Templates().Create(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to create template: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(tpl)
			case OutputFormatYAML:
				return encodeYAML(tpl)
			default:
				fmt.Printf("Created template '%s' with ID %s\n", tpl.Name, tpl.ID)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "template name (required)")
	cmd.Flags().StringVar(&description, "description", "", "template description")
	cmd.Flags().StringVar(&credentialType, "type", "", "credential type (e.g. diploma, certificate)")
	cmd.Flags().StringVar(&version, "version", "", "template version (default 1.0)")
	cmd.Flags().StringVar(&schemaPath, "schema", "", "JSON file defining the template fields")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTemplatesUpdateCommand() *cobra.Command {
	var (
		name        string
		description string
		active      bool
	)

	cmd := &cobra.Command{
		Use:   "update TEMPLATE_ID",
		Short: "Update a template",
		Long:  "Update fields of an existing template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := map[string]interface{}{}

			if cmd.Flags().Changed("name") {
				fields["name"] = name
			}

			if cmd.Flags().Changed("description") {
				fields["description"] = description
			}

			if cmd.Flags().Changed("active") {
				fields["is_active"] = active
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			tpl, err := client.Templates().Update(ctx, args[0], fields)
			if err != nil {
				return fmt.Errorf("failed to update template: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(tpl)
			case OutputFormatYAML:
				return encodeYAML(tpl)
			default:
				fmt.Printf("Updated template '%s'\n", tpl.Name)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "new template name")
	cmd.Flags().StringVar(&description, "description", "", "new template description")
	cmd.Flags().BoolVar(&active, "active", true, "whether the template is active")

	return cmd
}

func newTemplatesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete TEMPLATE_ID",
		Short: "Delete a template",
		Long:  "Deactivate a credential template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Really delete template '%s'? (y/N): ", args[0])

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

			_, err = client.Templates().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete template: %w", err)
			}

			fmt.Printf("Deleted template '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
