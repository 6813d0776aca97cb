package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docwal/docwal-go/internal/constants"
	internalhttp "github.com/docwal/docwal-go/internal/http"
	"github.com/docwal/docwal-go/pkg/docwal"
)

// TeamClient implements docwal.TeamClient.
type TeamClient struct {
	httpClient *internalhttp.Client
}

// NewTeamClient creates a new team client.
func NewTeamClient(httpClient *internalhttp.Client) *TeamClient {
	return &TeamClient{
		httpClient: httpClient,
	}
}

// List implements docwal.TeamClient.List.
func (c *TeamClient) List(ctx context.Context) (*docwal.TeamRoster, error) {
	resp, err := c.httpClient.Get(ctx, "/institutions/team/", nil)
	if err != nil {
		return nil, fmt.Errorf("listing team: %w", err)
	}

	var roster docwal.TeamRoster

	err = json.Unmarshal(resp.Body, &roster)
	if err != nil {
		return nil, fmt.Errorf("parsing team roster: %w", err)
	}

	return &roster, nil
}

// CheckEmail implements docwal.TeamClient.CheckEmail.
func (c *TeamClient) CheckEmail(ctx context.Context, email string) (*docwal.CheckEmailResult, error) {
	body := map[string]interface{}{"email": email}

	resp, err := c.httpClient.Post(ctx, "/institutions/team/check-email/", body)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	var result docwal.CheckEmailResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing check email result: %w", err)
	}

	return &result, nil
}

// Invite implements docwal.TeamClient.Invite.
func (c *TeamClient) Invite(ctx context.Context, request *docwal.InviteRequest) (*docwal.InviteResult, error) {
	role := request.Role
	if role == "" {
		role = constants.DefaultTeamRole
	}

	sendEmail := true
	if request.SendEmail != nil {
		sendEmail = *request.SendEmail
	}

	body := map[string]interface{}{
		"email":        request.Email,
		"role":         role,
		"send_email":   sendEmail,
		"add_directly": request.AddDirectly,
	}

	resp, err := c.httpClient.Post(ctx, "/institutions/team/invite/", body)
	if err != nil {
		return nil, fmt.Errorf("inviting team member: %w", err)
	}

	var result docwal.InviteResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing invite result: %w", err)
	}

	return &result, nil
}

// UpdateRole implements docwal.TeamClient.UpdateRole.
func (c *TeamClient) UpdateRole(ctx context.Context, memberID, role string) (*docwal.TeamMember, error) {
	body := map[string]interface{}{"role": role}

	resp, err := c.httpClient.Patch(ctx, "/institutions/team/members/"+memberID+"/role/", body)
	if err != nil {
		return nil, fmt.Errorf("updating member role: %w", err)
	}

	var member docwal.TeamMember

	err = json.Unmarshal(resp.Body, &member)
	if err != nil {
		return nil, fmt.Errorf("parsing team member: %w", err)
	}

	return &member, nil
}

// Deactivate implements docwal.TeamClient.Deactivate. An empty reason sends
// an empty JSON object, matching the wire contract.
func (c *TeamClient) Deactivate(ctx context.Context, memberID, reason string) (*docwal.MemberStatusResult, error) {
	body := map[string]interface{}{}
	if reason != "" {
		body["reason"] = reason
	}

	resp, err := c.httpClient.Post(ctx, "/institutions/team/members/"+memberID+"/deactivate/", body)
	if err != nil {
		return nil, fmt.Errorf("deactivating team member: %w", err)
	}

	return parseMemberStatus(resp.Body)
}

// Reactivate implements docwal.TeamClient.Reactivate.
func (c *TeamClient) Reactivate(ctx context.Context, memberID string) (*docwal.MemberStatusResult, error) {
	resp, err := c.httpClient.Post(ctx, "/institutions/team/members/"+memberID+"/reactivate/", nil)
	if err != nil {
		return nil, fmt.Errorf("reactivating team member: %w", err)
	}

	return parseMemberStatus(resp.Body)
}

// Remove implements docwal.TeamClient.Remove. Unlike Deactivate, this is a
// hard delete.
func (c *TeamClient) Remove(ctx context.Context, memberID string) (*docwal.MemberStatusResult, error) {
	resp, err := c.httpClient.Delete(ctx, "/institutions/team/members/"+memberID+"/remove/")
	if err != nil {
		return nil, fmt.Errorf("removing team member: %w", err)
	}

	return parseMemberStatus(resp.Body)
}

func parseMemberStatus(body []byte) (*docwal.MemberStatusResult, error) {
	var result docwal.MemberStatusResult

	if len(body) > 0 {
		err := json.Unmarshal(body, &result)
		if err != nil {
			return nil, fmt.Errorf("parsing member status: %w", err)
		}
	}

	return &result, nil
}
