package whoint

// outbreakFeed is the subset of the WHO outbreak news response the bot reads.
type outbreakFeed struct {
	Value []outbreakItem `json:"value"`
}

type outbreakItem struct {
	Title            string `json:"Title"`
	TitleSuffix      string `json:"TitleSuffix"`
	OverrideTitle    string `json:"OverrideTitle"`
	UseOverrideTitle bool   `json:"UseOverrideTitle"`
	ItemDefaultURL   string `json:"ItemDefaultUrl"`
	FormattedDate    string `json:"FormattedDate"`
}
