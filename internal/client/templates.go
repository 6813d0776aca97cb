package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docwal/docwal-go/internal/constants"
	internalhttp "github.com/docwal/docwal-go/internal/http"
	"github.com/docwal/docwal-go/pkg/docwal"
)

// TemplatesClient implements docwal.TemplatesClient.
type TemplatesClient struct {
	httpClient *internalhttp.Client
}

// NewTemplatesClient creates a new templates client.
func NewTemplatesClient(httpClient *internalhttp.Client) *TemplatesClient {
	return &TemplatesClient{
		httpClient: httpClient,
	}
}

// List implements docwal.TemplatesClient.List. Only active templates are
// returned by the API.
func (c *TemplatesClient) List(ctx context.Context) ([]docwal.Template, error) {
	resp, err := c.httpClient.Get(ctx, "/templates/", nil)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	var templates []docwal.Template

	err = json.Unmarshal(resp.Body, &templates)
	if err != nil {
		return nil, fmt.Errorf("parsing templates list: %w", err)
	}

	return templates, nil
}

// Get implements docwal.TemplatesClient.Get.
func (c *TemplatesClient) Get(ctx context.Context, templateID string) (*docwal.Template, error) {
	resp, err := c.httpClient.Get(ctx, "/templates/"+templateID+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting template: %w", err)
	}

	var template docwal.Template

	err = json.Unmarshal(resp.Body, &template)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	return &template, nil
}

// Create implements docwal.TemplatesClient.Create.
func (c *TemplatesClient) Create(ctx context.Context, request *docwal.CreateTemplateRequest) (*docwal.Template, error) {
	version := request.Version
	if version == "" {
		version = constants.DefaultTemplateVersion
	}

	body := map[string]interface{}{
		"name":            request.Name,
		"description":     request.Description,
		"credential_type": request.CredentialType,
		"schema":          request.Schema,
		"version":         version,
	}

	resp, err := c.httpClient.Post(ctx, "/templates/", body)
	if err != nil {
		return nil, fmt.Errorf("creating template: %w", err)
	}

	var template docwal.Template

	err = json.Unmarshal(resp.Body, &template)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	return &template, nil
}

// Update implements docwal.TemplatesClient.Update. The server creates a new
// template version when the schema changes.
func (c *TemplatesClient) Update(ctx context.Context, templateID string, fields map[string]interface{}) (*docwal.Template, error) {
	resp, err := c.httpClient.Patch(ctx, "/templates/"+templateID+"/", fields)
	if err != nil {
		return nil, fmt.Errorf("updating template: %w", err)
	}

	var template docwal.Template

	err = json.Unmarshal(resp.Body, &template)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	return &template, nil
}

// Delete implements docwal.TemplatesClient.Delete. Templates are soft
// deleted: the API deactivates them rather than removing records.
func (c *TemplatesClient) Delete(ctx context.Context, templateID string) (*docwal.Template, error) {
	resp, err := c.httpClient.Delete(ctx, "/templates/"+templateID+"/")
	if err != nil {
		return nil, fmt.Errorf("deleting template: %w", err)
	}

	var template docwal.Template

	if len(resp.Body) > 0 {
		err = json.Unmarshal(resp.Body, &template)
		if err != nil {
			return nil, fmt.Errorf("parsing template: %w", err)
		}
	}

	return &template, nil
}
