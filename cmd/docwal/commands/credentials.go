package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/docwal/docwal-go/internal/constants"
	"github.com/docwal/docwal-go/pkg/docwal"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCredentialsCommand creates the credentials command group
func NewCredentialsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "credentials",
		Aliases: []string{"credential", "creds"},
		Short:   "Manage credentials",
		Long:    "Issue, list, revoke, and download credentials",
	}

	cmd.AddCommand(newCredentialsListCommand())
	cmd.AddCommand(newCredentialsGetCommand())
	cmd.AddCommand(newCredentialsIssueCommand())
	cmd.AddCommand(newCredentialsRevokeCommand())
	cmd.AddCommand(newCredentialsResendClaimCommand())
	cmd.AddCommand(newCredentialsDownloadCommand())
	cmd.AddCommand(newCredentialsBatchIssueCommand())
	cmd.AddCommand(newCredentialsBatchUploadCommand())

	return cmd
}

func newCredentialsListCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List credentials",
		Long:  "List credentials issued by your institution",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			credentials, err := client.Credentials().List(ctx, &docwal.ListCredentialsOptions{
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				return fmt.Errorf("failed to list credentials: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(credentials)
			case OutputFormatYAML:
				return encodeYAML(credentials)
			default:
				if len(credentials) == 0 {
					fmt.Println("No credentials found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Doc ID", "Template", "Recipient", "Status", "Issued At")

				for _, cred := range credentials {
					_ = table.Append(cred.DocID, valueOrDash(cred.TemplateName),
						valueOrDash(cred.IndividualEmail), cred.Status, valueOrDash(cred.IssuedAt))
				}

				_ = table.Render()
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum results (default 100)")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")

	return cmd
}

func newCredentialsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DOC_ID",
		Short: "Get credential details",
		Long:  "Display detailed information about a specific credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docID := args[0]

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			cred, err := client.Credentials().Get(ctx, docID)
			if err != nil {
				return fmt.Errorf("failed to get credential: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(cred)
			case OutputFormatYAML:
				return encodeYAML(cred)
			default:
				fmt.Printf("Credential: %s\n", cred.DocID)
				fmt.Printf("  Template:   %s\n", valueOrDash(cred.TemplateName))
				fmt.Printf("  Recipient:  %s\n", valueOrDash(cred.IndividualEmail))
				fmt.Printf("  Status:     %s\n", cred.Status)
				fmt.Printf("  Hash:       %s\n", valueOrDash(cred.DocumentHash))
				fmt.Printf("  Issued At:  %s\n", valueOrDash(cred.IssuedAt))

				if cred.ExpiresAt != "" {
					fmt.Printf("  Expires At: %s\n", cred.ExpiresAt)
				}

				if cred.RevokedAt != "" {
					fmt.Printf("  Revoked At: %s (%s)\n", cred.RevokedAt, cred.RevocationReason)
				}

				if len(cred.CredentialData) > 0 {
					fmt.Println("  Data:")

					for key, value := range cred.CredentialData {
						fmt.Printf("    %s: %v\n", key, value)
					}
				}
			}

			return nil
		},
	}
}

func newCredentialsIssueCommand() *cobra.Command {
	var (
		templateID        string
		email             string
		dataPairs         []string
		documentPath      string
		expiresAt         string
		claimExpiresHours int
	)

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a credential",
		Long:  "Issue a single credential to a recipient",
		RunE: func(cmd *cobra.Command, args []string) error {
			if templateID == "" {
				return constants.ErrTemplateIDRequired
			}

			if email == "" {
				return constants.ErrEmailRequired
			}

			credentialData, err := parseDataPairs(dataPairs)
			if err != nil {
				return err
			}

			request := &docwal.IssueCredentialRequest{
				TemplateID:             templateID,
				IndividualEmail:        email,
				CredentialData:         credentialData,
				ExpiresAt:              expiresAt,
				ClaimTokenExpiresHours: claimExpiresHours,
			}

			if documentPath != "" {
				file, err := os.Open(documentPath)
				if err != nil {
					return fmt.Errorf("opening document: %w", err)
				}
				defer func() { _ = file.Close() }()

				request.DocumentFile = file
				request.DocumentFileName = file.Name()
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := client.Credentials().Issue(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to issue credential: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(result)
			case OutputFormatYAML:
				return encodeYAML(result)
			default:
				fmt.Printf("Issued credential %s\n", result.DocID)
				fmt.Printf("  Status: %s\n", result.Status)
				fmt.Printf("  Hash:   %s\n", result.DocumentHash)

				if result.ClaimToken != "" {
					fmt.Printf("  Claim:  %s\n", result.ClaimToken)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&templateID, "template", "t", "", "template ID (required)")
	cmd.Flags().StringVarP(&email, "email", "e", "", "recipient email (required)")
	cmd.Flags().StringArrayVarP(&dataPairs, "data", "d", nil, "credential data field (key=value, repeatable)")
	cmd.Flags().StringVar(&documentPath, "document", "", "document file to attach (PDF)")
	cmd.Flags().StringVar(&expiresAt, "expires-at", "", "credential expiry (ISO 8601)")
	cmd.Flags().IntVar(&claimExpiresHours, "claim-expires-hours", 0, "claim link lifetime in hours (default 720)")

	return cmd
}

func newCredentialsRevokeCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "revoke DOC_ID",
		Short: "Revoke a credential",
		Long:  "Permanently revoke an issued credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if reason == "" {
				return constants.ErrReasonRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := client.Credentials().Revoke(ctx, args[0], reason)
			if err != nil {
				return fmt.Errorf("failed to revoke credential: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(result)
			case OutputFormatYAML:
				return encodeYAML(result)
			default:
				fmt.Printf("Revoked credential %s\n", args[0])
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&reason, "reason", "r", "", "revocation reason (required)")

	return cmd
}

func newCredentialsResendClaimCommand() *cobra.Command {
	var claimExpiresHours int

	cmd := &cobra.Command{
		Use:   "resend-claim DOC_ID",
		Short: "Resend a claim link",
		Long:  "Generate a fresh claim link for an unclaimed credential and email it to the recipient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := client.Credentials().ResendClaimLink(ctx, args[0], &docwal.ResendClaimOptions{
				ClaimTokenExpiresHours: claimExpiresHours,
			})
			if err != nil {
				return fmt.Errorf("failed to resend claim link: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(result)
			case OutputFormatYAML:
				return encodeYAML(result)
			default:
				fmt.Printf("Resent claim link for %s\n", args[0])

				if result.RecipientEmail != "" {
					fmt.Printf("  Recipient: %s\n", result.RecipientEmail)
				}

				if result.ClaimTokenExpires != "" {
					fmt.Printf("  Expires:   %s\n", result.ClaimTokenExpires)
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&claimExpiresHours, "claim-expires-hours", 0, "claim link lifetime in hours (default 720)")

	return cmd
}

func newCredentialsDownloadCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "download DOC_ID",
		Short: "Download a credential document",
		Long:  "Download the document attached to a credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docID := args[0]

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			data, err := client.Credentials().Download(ctx, docID)
			if err != nil {
				return fmt.Errorf("failed to download credential: %w", err)
			}

			if outPath == "" {
				outPath = docID + ".pdf"
			}

			err = os.WriteFile(outPath, data, constants.DownloadFilePerm)
			if err != nil {
				return fmt.Errorf("writing document: %w", err)
			}

			fmt.Printf("Downloaded %d bytes to %s\n", len(data), outPath)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default DOC_ID.pdf)")

	return cmd
}

func newCredentialsBatchIssueCommand() *cobra.Command {
	var (
		templateID      string
		filePath        string
		noNotifications bool
	)

	cmd := &cobra.Command{
		Use:   "batch-issue",
		Short: "Issue credentials in batch",
		Long:  "Issue multiple credentials from a JSON file containing an array of rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			if templateID == "" {
				return constants.ErrTemplateIDRequired
			}

			if filePath == "" {
				return constants.ErrFileRequired
			}

			data, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("reading batch file: %w", err)
			}

			var rows []docwal.BatchCredential

			err = json.Unmarshal(data, &rows)
			if err != nil {
				return fmt.Errorf("parsing batch file: %w", err)
			}

			if len(rows) == 0 {
				return constants.ErrCredentialsRequired
			}

			request := &docwal.BatchIssueRequest{
				TemplateID:  templateID,
				Credentials: rows,
			}

			if noNotifications {
				sendNotifications := false
				request.SendNotifications = &sendNotifications
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := client.Credentials().BatchIssue(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to batch issue: %w", err)
			}

			return outputBatchResult(result)
		},
	}

	cmd.Flags().StringVarP(&templateID, "template", "t", "", "template ID (required)")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "JSON file of credential rows (required)")
	cmd.Flags().BoolVar(&noNotifications, "no-notifications", false, "skip claim notification emails")

	return cmd
}

func newCredentialsBatchUploadCommand() *cobra.Command {
	var (
		templateID      string
		filePath        string
		noNotifications bool
	)

	cmd := &cobra.Command{
		Use:   "batch-upload",
		Short: "Issue credentials from a ZIP archive",
		Long:  "Issue multiple credentials from a ZIP archive containing a credentials CSV and a documents/ folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			if templateID == "" {
				return constants.ErrTemplateIDRequired
			}

			if filePath == "" {
				return constants.ErrFileRequired
			}

			file, err := os.Open(filePath)
			if err != nil {
				return fmt.Errorf("opening archive: %w", err)
			}
			defer func() { _ = file.Close() }()

			request := &docwal.BatchUploadRequest{
				TemplateID: templateID,
				File:       file,
				FileName:   file.Name(),
			}

			if noNotifications {
				sendNotifications := false
				request.SendNotifications = &sendNotifications
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := client.Credentials().BatchUpload(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to batch upload: %w", err)
			}

			return outputBatchResult(result)
		},
	}

	cmd.Flags().StringVarP(&templateID, "template", "t", "", "template ID (required)")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "ZIP archive (required)")
	cmd.Flags().BoolVar(&noNotifications, "no-notifications", false, "skip claim notification emails")

	return cmd
}

func outputBatchResult(result *docwal.BatchResult) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return encodeJSON(result)
	case OutputFormatYAML:
		return encodeYAML(result)
	default:
		fmt.Printf("Processed %d rows: %d succeeded, %d failed\n",
			result.TotalRows, result.SuccessCount, result.FailureCount)

		if len(result.Results) == 0 {
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Row", "Recipient", "Doc ID", "Status", "Error")

		for _, row := range result.Results {
			_ = table.Append(fmt.Sprintf("%d", row.Row), valueOrDash(row.IndividualEmail),
				valueOrDash(row.DocID), row.Status, valueOrDash(row.Error))
		}

		_ = table.Render()
	}

	return nil
}

// parseDataPairs converts repeated key=value flags into credential data.
func parseDataPairs(pairs []string) (map[string]interface{}, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	data := make(map[string]interface{}, len(pairs))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidDataFormat, pair)
		}

		data[key] = value
	}

	return data, nil
}
