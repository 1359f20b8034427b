// Package dialogflow wraps the Dialogflow v2 detectIntent API used to
// resolve intents from free-form message text.
package dialogflow

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2/google"
	dialogflow "google.golang.org/api/dialogflow/v2"
	"google.golang.org/api/option"
)

// Client calls the Dialogflow agent of a single GCP project.
type Client struct {
	projectID string
	service   *dialogflow.Service
}

// NewClient creates a Dialogflow client from raw Service Account JSON bytes.
func NewClient(ctx context.Context, projectID string, credentialsJSON []byte) (*Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("dialogflow project id is required")
	}

	config, err := google.JWTConfigFromJSON(credentialsJSON, dialogflow.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	svc, err := dialogflow.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create dialogflow service: %w", err)
	}

	return &Client{projectID: projectID, service: svc}, nil
}

// NewClientWithService creates a Client around an existing service.
// Intended for tests, which build the service against a local endpoint.
func NewClientWithService(projectID string, svc *dialogflow.Service) *Client {
	return &Client{projectID: projectID, service: svc}
}

// DetectIntent sends text to the agent and returns the matched intent,
// fulfillment text and parameters for the given session.
func (c *Client) DetectIntent(ctx context.Context, sessionID, text, languageCode string) (Result, error) {
	if languageCode == "" {
		languageCode = "en"
	}

	session := fmt.Sprintf("projects/%s/agent/sessions/%s", c.projectID, sessionID)
	req := &dialogflow.GoogleCloudDialogflowV2DetectIntentRequest{
		QueryInput: &dialogflow.GoogleCloudDialogflowV2QueryInput{
			Text: &dialogflow.GoogleCloudDialogflowV2TextInput{
				Text:         text,
				LanguageCode: languageCode,
			},
		},
	}

	resp, err := c.service.Projects.Agent.Sessions.DetectIntent(session, req).Context(ctx).Do()
	if err != nil {
		return Result{}, fmt.Errorf("failed to call dialogflow detectIntent: %w", err)
	}
	if resp.QueryResult == nil {
		return Result{}, fmt.Errorf("dialogflow returned no query result")
	}

	result := Result{
		FulfillmentText: resp.QueryResult.FulfillmentText,
		Parameters:      map[string]any{},
	}
	if resp.QueryResult.Intent != nil {
		result.Intent = resp.QueryResult.Intent.DisplayName
	}
	if len(resp.QueryResult.Parameters) > 0 {
		// Parameters arrive as a raw JSON struct; a decode failure only
		// loses parameters, never the whole reply.
		_ = json.Unmarshal(resp.QueryResult.Parameters, &result.Parameters)
	}

	return result, nil
}
