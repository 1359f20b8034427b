package model

// Intent is a named category of user request, decided by the NLU agent.
type Intent string

const (
	IntentDiseaseOverview Intent = "get_disease_overview"
	IntentSymptoms        Intent = "get_symptoms"
	IntentTreatment       Intent = "get_treatment"
	IntentPrevention      Intent = "get_prevention"
	IntentOutbreak        Intent = "disease_outbreak.general"
	IntentVaccine         Intent = "get_vaccine"
	IntentLastQueries     Intent = "get_last_queries"
	IntentFallback        Intent = "Default Fallback Intent"

	// IntentUnknown is any display name the bot has no responder for.
	IntentUnknown Intent = ""
)

// knownIntents is the closed set of intents with a responder.
var knownIntents = map[Intent]struct{}{
	IntentDiseaseOverview: {},
	IntentSymptoms:        {},
	IntentTreatment:       {},
	IntentPrevention:      {},
	IntentOutbreak:        {},
	IntentVaccine:         {},
	IntentLastQueries:     {},
	IntentFallback:        {},
}

// ParseIntent maps an NLU display name onto the typed intent set.
// Unrecognized names become IntentUnknown so dispatch always has a
// default arm to land on.
func ParseIntent(displayName string) Intent {
	intent := Intent(displayName)
	if _, ok := knownIntents[intent]; ok {
		return intent
	}
	return IntentUnknown
}

// NeedsDisease reports whether the intent reads a fact-sheet section and
// therefore requires a disease name.
func (i Intent) NeedsDisease() bool {
	switch i {
	case IntentDiseaseOverview, IntentSymptoms, IntentTreatment, IntentPrevention:
		return true
	}
	return false
}
