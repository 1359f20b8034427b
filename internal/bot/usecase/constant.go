package usecase

// User-facing fallback strings. Responses are built in English and
// translated to the user's language at the end of the pipeline.
const (
	msgUnknownRequest      = "Sorry, I don't understand your request."
	msgProcessingError     = "⚠️ An error occurred while processing your request."
	msgNLUUnavailable      = "⚠️ Something went wrong while connecting to Dialogflow."
	msgNoDisease           = "No disease provided."
	msgNoPastQueries       = "No past queries stored."
	msgOutbreakUnavailable = "Unable to fetch outbreak data."
)

const (
	outbreakHeader = "🌍 LATEST OUTBREAK NEWS\n\n"
	vaccineHeader  = "💉 POLIO VACCINATION SCHEDULE\n\n"

	// vaccineExtraInfo follows the schedule in every vaccination reply.
	vaccineExtraInfo = "\n📘 ADDITIONAL INFORMATION\n" +
		"⚠️ Disease & Symptoms: Polio causes fever,weakness,headache,vomiting,stiffness,paralysis\n\n" +
		"ℹ️ About the Vaccine: OPV (oral drops),IPV (injection)\n\n" +
		"⚕️ Side Effects: Safe; rarely mild fever.\n\n"
)
