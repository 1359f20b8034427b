package mymemory

// translateResponse is the subset of the MyMemory /get payload the bot reads.
type translateResponse struct {
	ResponseData struct {
		TranslatedText string  `json:"translatedText"`
		Match          float64 `json:"match"`
	} `json:"responseData"`
	ResponseStatus any `json:"responseStatus"` // number on success, string on quota errors
}
