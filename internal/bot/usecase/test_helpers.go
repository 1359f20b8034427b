package usecase

import (
	"context"

	"health-info-bot/internal/memory/repository/inmem"
	"health-info-bot/pkg/dialogflow"
	"health-info-bot/pkg/whoint"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// Mock WHO gateway for testing
type mockWHO struct {
	slugs       map[string]string
	slugErr     error
	section     string
	sectionErr  error
	outbreak    []string
	outbreakErr error
}

func (m *mockWHO) ResolveSlug(ctx context.Context, disease string) (string, error) {
	if m.slugErr != nil {
		return "", m.slugErr
	}
	return m.slugs[disease], nil
}

func (m *mockWHO) FactSheetURL(slug string) string {
	return "https://who.test/fact-sheets/" + slug
}

func (m *mockWHO) FetchSection(ctx context.Context, url string, section whoint.Section, subject string) (string, error) {
	return m.section, m.sectionErr
}

func (m *mockWHO) OutbreakNews(ctx context.Context) ([]string, error) {
	return m.outbreak, m.outbreakErr
}

// Mock translator: decorates instead of translating so tests can assert
// which direction ran.
type mockTranslator struct {
	err error
}

func (m *mockTranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "[" + from + ">" + to + "]" + text, nil
}

// Mock language detector with a fixed answer.
type mockDetector struct {
	lang string
	err  error
}

func (m *mockDetector) Detect(text string) (string, error) {
	return m.lang, m.err
}

// Mock NLU intent detector.
type mockNLU struct {
	result   dialogflow.Result
	err      error
	lastText string
}

func (m *mockNLU) DetectIntent(ctx context.Context, sessionID, text, languageCode string) (dialogflow.Result, error) {
	m.lastText = text
	return m.result, m.err
}

func newTestUseCase(who *mockWHO, translator *mockTranslator, detector *mockDetector, nlu *mockNLU) *implUseCase {
	return New(&mockLogger{}, inmem.New(), who, translator, detector, nlu)
}
