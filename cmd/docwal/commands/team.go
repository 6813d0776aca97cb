package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/docwal/docwal-go/internal/constants"
	"github.com/docwal/docwal-go/pkg/docwal"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTeamCommand creates the team command group
func NewTeamCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage your institution's team",
		Long:  "List, invite, and manage team members and invitations",
	}

	cmd.AddCommand(newTeamListCommand())
	cmd.AddCommand(newTeamCheckEmailCommand())
	cmd.AddCommand(newTeamInviteCommand())
	cmd.AddCommand(newTeamSetRoleCommand())
	cmd.AddCommand(newTeamDeactivateCommand())
	cmd.AddCommand(newTeamReactivateCommand())
	cmd.AddCommand(newTeamRemoveCommand())

	return cmd
}

func newTeamListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List team members",
		Long:  "List team members and pending invitations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			roster, err := client.Team().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list team: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(roster)
			case OutputFormatYAML:
				return encodeYAML(roster)
			default:
				if len(roster.Members) == 0 {
					fmt.Println("No team members found")
				} else {
					table := tablewriter.NewWriter(os.Stdout)
					table.Header("ID", "Email", "Role", "Active", "Joined At")

					for _, member := range roster.Members {
						_ = table.Append(member.ID, member.Email, member.Role,
							strconv.FormatBool(member.IsActive), valueOrDash(member.JoinedAt))
					}

					_ = table.Render()
				}

				if len(roster.PendingInvitations) > 0 {
					fmt.Println("\nPending invitations:")

					inviteTable := tablewriter.NewWriter(os.Stdout)
					inviteTable.Header("ID", "Email", "Role", "Expires At")

					for _, invitation := range roster.PendingInvitations {
						_ = inviteTable.Append(invitation.ID, invitation.Email,
							invitation.Role, valueOrDash(invitation.ExpiresAt))
					}

					_ = inviteTable.Render()
				}
			}

			return nil
		},
	}
}

func newTeamCheckEmailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check-email EMAIL",
		Short: "Check an email before inviting",
		Long:  "Validate an email address against the institution domain before sending an invitation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := client.Team().CheckEmail(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to check email: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(result)
			case OutputFormatYAML:
				return encodeYAML(result)
			default:
				fmt.Printf("Email: %s\n", args[0])
				fmt.Printf("  Valid:          %t\n", result.Valid)
				fmt.Printf("  User Exists:    %t\n", result.UserExists)
				fmt.Printf("  Recommendation: %s\n", valueOrDash(result.Recommendation))

				if result.Reason != "" {
					fmt.Printf("  Reason:         %s\n", result.Reason)
				}
			}

			return nil
		},
	}
}

func newTeamInviteCommand() *cobra.Command {
	var (
		role        string
		noEmail     bool
		addDirectly bool
	)

	cmd := &cobra.Command{
		Use:   "invite EMAIL",
		Short: "Invite a team member",
		Long:  "Invite a new team member or add an existing user directly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &docwal.InviteRequest{
				Email:       args[0],
				Role:        role,
				AddDirectly: addDirectly,
			}

			if noEmail {
				sendEmail := false
				request.SendEmail = &sendEmail
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := client.Team().Invite(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to invite team member: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(result)
			case OutputFormatYAML:
				return encodeYAML(result)
			default:
				if result.Member != nil {
					fmt.Printf("Added %s as %s\n", result.Member.Email, result.Member.Role)
				} else if result.Invitation != nil {
					fmt.Printf("Invited %s as %s\n", result.Invitation.Email, result.Invitation.Role)
				} else {
					fmt.Println(result.Message)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&role, "role", "r", "", "member role: owner, admin, or issuer (default issuer)")
	cmd.Flags().BoolVar(&noEmail, "no-email", false, "do not send an invitation email")
	cmd.Flags().BoolVar(&addDirectly, "add-directly", false, "add an existing user without an invitation")

	return cmd
}

func newTeamSetRoleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-role MEMBER_ID ROLE",
		Short: "Change a member's role",
		Long:  "Change the role of an existing team member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[1] == "" {
				return constants.ErrRoleRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			member, err := client.Team().UpdateRole(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to update role: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return encodeJSON(member)
			case OutputFormatYAML:
				return encodeYAML(member)
			default:
				fmt.Printf("Updated %s to %s\n", valueOrDash(member.Email), member.Role)
			}

			return nil
		},
	}
}

func newTeamDeactivateCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "deactivate MEMBER_ID",
		Short: "Deactivate a team member",
		Long:  "Deactivate a team member without removing them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := client.Team().Deactivate(ctx, args[0], reason)
			if err != nil {
				return fmt.Errorf("failed to deactivate member: %w", err)
			}

			return outputMemberStatus(result, "Deactivated member "+args[0])
		},
	}

	cmd.Flags().StringVarP(&reason, "reason", "r", "", "deactivation reason")

	return cmd
}

func newTeamReactivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reactivate MEMBER_ID",
		Short: "Reactivate a team member",
		Long:  "Reactivate a previously deactivated team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := client.Team().Reactivate(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to reactivate member: %w", err)
			}

			return outputMemberStatus(result, "Reactivated member "+args[0])
		},
	}
}

func newTeamRemoveCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove MEMBER_ID",
		Short: "Remove a team member",
		Long:  "Permanently remove a team member from the institution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Really remove member '%s'? (y/N): ", args[0])

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

			result, err := client.Team().Remove(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to remove member: %w", err)
			}

			return outputMemberStatus(result, "Removed member "+args[0])
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func outputMemberStatus(result *docwal.MemberStatusResult, fallback string) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return encodeJSON(result)
	case OutputFormatYAML:
		return encodeYAML(result)
	default:
		if result.Message != "" {
			fmt.Println(result.Message)
		} else {
			fmt.Println(fallback)
		}
	}

	return nil
}
