package dialogflow_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dialogflowapi "google.golang.org/api/dialogflow/v2"
	"google.golang.org/api/option"

	"health-info-bot/pkg/dialogflow"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*dialogflow.Client, func()) {
	t.Helper()
	ts := httptest.NewServer(handler)

	svc, err := dialogflowapi.NewService(context.Background(),
		option.WithEndpoint(ts.URL),
		option.WithoutAuthentication(),
	)
	if err != nil {
		ts.Close()
		t.Fatalf("failed to build test service: %v", err)
	}
	return dialogflow.NewClientWithService("test-project", svc), ts.Close
}

func TestDetectIntent(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "sessions/user-1") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"queryResult": {
				"fulfillmentText": "Here are the symptoms.",
				"intent": {"displayName": "get_symptoms"},
				"parameters": {"disease": " malaria "}
			}
		}`))
	})
	defer closeFn()

	result, err := client.DetectIntent(context.Background(), "user-1", "symptoms of malaria", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Intent != "get_symptoms" {
		t.Errorf("intent = %q, want get_symptoms", result.Intent)
	}
	if result.FulfillmentText != "Here are the symptoms." {
		t.Errorf("unexpected fulfillment text: %q", result.FulfillmentText)
	}
	if got := result.StringParam("disease"); got != "malaria" {
		t.Errorf("disease param = %q, want malaria", got)
	}
	if got := result.StringParam("missing"); got != "" {
		t.Errorf("missing param should be empty, got %q", got)
	}
}

func TestDetectIntentUpstreamError(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer closeFn()

	if _, err := client.DetectIntent(context.Background(), "user-1", "hello", "en"); err == nil {
		t.Fatalf("expected error on upstream failure")
	}
}
