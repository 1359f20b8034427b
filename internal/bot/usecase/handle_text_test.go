package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"health-info-bot/internal/bot"
	"health-info-bot/internal/model"
	"health-info-bot/pkg/dialogflow"
)

func TestHandleText(t *testing.T) {
	ctx := context.Background()

	t.Run("Symptoms With Fulfillment Prefix", func(t *testing.T) {
		who := &mockWHO{slugs: map[string]string{"malaria": "malaria"}, section: "content"}
		nlu := &mockNLU{result: dialogflow.Result{
			Intent:          string(model.IntentSymptoms),
			FulfillmentText: "Here is what I found.",
			Parameters:      map[string]any{"disease": "Malaria"},
		}}
		uc := newTestUseCase(who, &mockTranslator{}, &mockDetector{lang: "en"}, nlu)

		out := uc.HandleText(ctx, bot.HandleTextInput{UserID: "wa-1", Text: "what are malaria symptoms"})

		want := "Here is what I found.\n\n🤒 SYMPTOMS OF malaria\n\ncontent"
		if out.Text != want {
			t.Errorf("unexpected reply:\ngot:  %q\nwant: %q", out.Text, want)
		}
	})

	t.Run("Disease From Any Parameter", func(t *testing.T) {
		who := &mockWHO{slugs: map[string]string{"cholera": "cholera"}, section: "content"}
		nlu := &mockNLU{result: dialogflow.Result{
			Intent:     string(model.IntentTreatment),
			Parameters: map[string]any{"any": "Cholera"},
		}}
		uc := newTestUseCase(who, &mockTranslator{}, &mockDetector{lang: "en"}, nlu)

		out := uc.HandleText(ctx, bot.HandleTextInput{UserID: "wa-1", Text: "how do I treat cholera"})

		if !strings.HasPrefix(out.Text, "💊 TREATMENT OF cholera\n\n") {
			t.Errorf("expected treatment reply, got %q", out.Text)
		}
	})

	t.Run("Disease From Memory", func(t *testing.T) {
		who := &mockWHO{slugs: map[string]string{"dengue": "dengue"}, section: "content"}
		nlu := &mockNLU{result: dialogflow.Result{
			Intent:     string(model.IntentSymptoms),
			Parameters: map[string]any{"disease": "Dengue"},
		}}
		uc := newTestUseCase(who, &mockTranslator{}, &mockDetector{lang: "en"}, nlu)

		uc.HandleText(ctx, bot.HandleTextInput{UserID: "wa-1", Text: "dengue symptoms"})

		// Follow-up with no disease parameter.
		nlu.result = dialogflow.Result{Intent: string(model.IntentPrevention)}
		out := uc.HandleText(ctx, bot.HandleTextInput{UserID: "wa-1", Text: "how do I prevent it"})

		if !strings.HasPrefix(out.Text, "🛡️ PREVENTION OF dengue\n\n") {
			t.Errorf("expected remembered disease, got %q", out.Text)
		}
	})

	t.Run("Fallback Intent Uses Agent Reply", func(t *testing.T) {
		nlu := &mockNLU{result: dialogflow.Result{
			Intent:          string(model.IntentFallback),
			FulfillmentText: "Sorry, could you rephrase that?",
		}}
		uc := newTestUseCase(&mockWHO{}, &mockTranslator{}, &mockDetector{lang: "en"}, nlu)

		out := uc.HandleText(ctx, bot.HandleTextInput{UserID: "wa-1", Text: "asdfgh"})

		if out.Text != "Sorry, could you rephrase that?" {
			t.Errorf("expected agent fulfillment alone, got %q", out.Text)
		}
	})

	t.Run("Unmatched Intent Without Fulfillment", func(t *testing.T) {
		nlu := &mockNLU{result: dialogflow.Result{Intent: "smalltalk.greeting"}}
		uc := newTestUseCase(&mockWHO{}, &mockTranslator{}, &mockDetector{lang: "en"}, nlu)

		out := uc.HandleText(ctx, bot.HandleTextInput{UserID: "wa-1", Text: "hello"})

		if out.Text != msgUnknownRequest {
			t.Errorf("expected unknown-request message, got %q", out.Text)
		}
	})

	t.Run("NLU Failure", func(t *testing.T) {
		nlu := &mockNLU{err: errors.New("deadline exceeded")}
		uc := newTestUseCase(&mockWHO{}, &mockTranslator{}, &mockDetector{lang: "en"}, nlu)

		out := uc.HandleText(ctx, bot.HandleTextInput{UserID: "wa-1", Text: "malaria symptoms"})

		if out.Text != msgNLUUnavailable {
			t.Errorf("expected NLU failure message, got %q", out.Text)
		}
	})

	t.Run("Inbound Message Translated Before NLU", func(t *testing.T) {
		who := &mockWHO{slugs: map[string]string{"malaria": "malaria"}, section: "content"}
		nlu := &mockNLU{result: dialogflow.Result{
			Intent:     string(model.IntentSymptoms),
			Parameters: map[string]any{"disease": "malaria"},
		}}
		uc := newTestUseCase(who, &mockTranslator{}, &mockDetector{lang: "hi"}, nlu)

		out := uc.HandleText(ctx, bot.HandleTextInput{UserID: "wa-1", Text: "मलेरिया के लक्षण"})

		if nlu.lastText != "[hi>en]मलेरिया के लक्षण" {
			t.Errorf("expected translated NLU input, got %q", nlu.lastText)
		}
		if out.UserLang != "hi" {
			t.Errorf("expected user lang hi, got %q", out.UserLang)
		}
		if !strings.HasPrefix(out.Text, "[en>hi]") {
			t.Errorf("expected back-translated reply, got %q", out.Text)
		}
	})

	t.Run("Memory Updated From Text Path", func(t *testing.T) {
		who := &mockWHO{slugs: map[string]string{"malaria": "malaria"}, section: "content"}
		nlu := &mockNLU{result: dialogflow.Result{
			Intent:     string(model.IntentSymptoms),
			Parameters: map[string]any{"disease": "Malaria"},
		}}
		uc := newTestUseCase(who, &mockTranslator{}, &mockDetector{lang: "en"}, nlu)

		uc.HandleText(ctx, bot.HandleTextInput{UserID: "wa-1", Text: "malaria symptoms"})

		memory, err := uc.repo.GetMemory(ctx, "wa-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if memory.LastDisease != "malaria" {
			t.Errorf("expected remembered disease malaria, got %q", memory.LastDisease)
		}
		if len(memory.LastQueries) != 1 {
			t.Fatalf("expected one stored query, got %d", len(memory.LastQueries))
		}
		if memory.LastQueries[0].Intent != string(model.IntentSymptoms) {
			t.Errorf("unexpected stored intent %q", memory.LastQueries[0].Intent)
		}
	})
}

func TestLastQueriesResponse(t *testing.T) {
	if got := lastQueriesResponse(&model.UserMemory{}); got != msgNoPastQueries {
		t.Errorf("expected empty-history message, got %q", got)
	}
}
