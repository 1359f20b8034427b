package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"health-info-bot/internal/model"
	"health-info-bot/pkg/vaccine"
	"health-info-bot/pkg/whoint"
)

// respond builds the English reply body for one intent. The switch is the
// single dispatch point for both channels; every intent degrades to its
// documented fallback text rather than failing.
func (uc *implUseCase) respond(ctx context.Context, intent model.Intent, disease, date string, memory *model.UserMemory) string {
	switch intent {
	case model.IntentDiseaseOverview:
		return uc.sectionResponse(ctx, sectionRequest{
			header:   "📖 DISEASE OVERVIEW OF",
			label:    "Overview",
			section:  whoint.SectionOverview,
			disease:  disease,
			missing:  fmt.Sprintf("Disease not found: %s.", disease),
		})
	case model.IntentSymptoms:
		return uc.sectionResponse(ctx, sectionRequest{
			header:   "🤒 SYMPTOMS OF",
			label:    "Symptoms",
			section:  whoint.SectionSymptoms,
			disease:  disease,
			missing:  fmt.Sprintf("No URL found for %s.", disease),
		})
	case model.IntentTreatment:
		return uc.sectionResponse(ctx, sectionRequest{
			header:   "💊 TREATMENT OF",
			label:    "Treatment",
			section:  whoint.SectionTreatment,
			disease:  disease,
			missing:  fmt.Sprintf("No URL found for %s.", disease),
		})
	case model.IntentPrevention:
		return uc.sectionResponse(ctx, sectionRequest{
			header:   "🛡️ PREVENTION OF",
			label:    "Prevention",
			section:  whoint.SectionPrevention,
			disease:  disease,
			missing:  fmt.Sprintf("No URL found for %s.", disease),
		})
	case model.IntentOutbreak:
		return uc.outbreakResponse(ctx)
	case model.IntentVaccine:
		return uc.vaccineResponse(ctx, date)
	case model.IntentLastQueries:
		return lastQueriesResponse(memory)
	case model.IntentFallback:
		return " "
	default:
		return msgUnknownRequest
	}
}

// sectionRequest parameterizes a fact-sheet section reply.
type sectionRequest struct {
	header  string         // reply header prefix, e.g. "🤒 SYMPTOMS OF"
	label   string         // section label for fallback text, e.g. "Symptoms"
	section whoint.Section // which WHO page section to extract
	disease string
	missing string // text when the disease has no known fact sheet
}

func (uc *implUseCase) sectionResponse(ctx context.Context, req sectionRequest) string {
	header := fmt.Sprintf("%s %s\n\n", req.header, req.disease)

	if req.disease == "" {
		return header + msgNoDisease
	}

	slug, err := uc.who.ResolveSlug(ctx, req.disease)
	if err != nil {
		uc.l.Errorf(ctx, "bot usecase: resolve slug for %q: %v", req.disease, err)
		slug = ""
	}
	if slug == "" {
		return header + req.missing
	}

	text, err := uc.who.FetchSection(ctx, uc.who.FactSheetURL(slug), req.section, req.disease)
	if err != nil {
		if !errors.Is(err, whoint.ErrSectionNotFound) {
			uc.l.Warnf(ctx, "bot usecase: fetch %s for %q: %v", req.label, req.disease, err)
		}
		return header + fmt.Sprintf("%s not found for %s.", req.label, req.disease)
	}
	return header + text
}

func (uc *implUseCase) outbreakResponse(ctx context.Context) string {
	lines, err := uc.who.OutbreakNews(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "bot usecase: outbreak news: %v", err)
		return outbreakHeader + msgOutbreakUnavailable
	}
	return outbreakHeader + strings.Join(lines, "\n\n")
}

// vaccineResponse renders the polio schedule from the given birth date
// parameter; an absent or unparseable date means "born today".
func (uc *implUseCase) vaccineResponse(_ context.Context, date string) string {
	birth := time.Now().UTC().Truncate(24 * time.Hour)
	if date != "" {
		// Dialogflow sends RFC3339; only the date part matters.
		if parsed, err := time.Parse("2006-01-02", strings.SplitN(date, "T", 2)[0]); err == nil {
			birth = parsed
		}
	}

	schedule := vaccine.BuildPolioSchedule(birth)
	return vaccineHeader + vaccine.FormatSchedule(schedule) + vaccineExtraInfo
}

func lastQueriesResponse(memory *model.UserMemory) string {
	if len(memory.LastQueries) == 0 {
		return msgNoPastQueries
	}
	lines := make([]string, 0, len(memory.LastQueries))
	for _, q := range memory.LastQueries {
		lines = append(lines, fmt.Sprintf("%s · %s · %s", q.Timestamp.Format(time.RFC3339), q.Intent, q.Disease))
	}
	return "Your last queries:\n" + strings.Join(lines, "\n")
}
