package whoint

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"health-info-bot/pkg/textutil"
)

// ErrSectionNotFound means the page had no matching heading, or the matched
// section carried no usable content. Callers supply the fallback message.
var ErrSectionNotFound = errors.New("whoint: section not found")

// sectionCharLimit bounds the extracted text; cuts prefer sentence
// boundaries (see textutil.Truncate).
const sectionCharLimit = 500

// Section is a named content region of a WHO fact-sheet page.
type Section string

const (
	SectionOverview   Section = "overview"
	SectionSymptoms   Section = "symptoms"
	SectionTreatment  Section = "treatment"
	SectionPrevention Section = "prevention"
)

// keywords returns the lowercase heading keywords that identify the section.
// Treatment content appears under either "Treatment" or "Management"
// depending on the fact sheet.
func (s Section) keywords() []string {
	if s == SectionTreatment {
		return []string{"treatment", "management"}
	}
	return []string{string(s)}
}

// Marker is the per-section decoration prefixed to each extracted item.
// Overview has none: it is rendered as prose rather than bullet lines.
func (s Section) Marker() string {
	switch s {
	case SectionSymptoms:
		return "🔹"
	case SectionTreatment:
		return "💊"
	case SectionPrevention:
		return "🛡️"
	}
	return ""
}

// ExtractSection locates the section's heading in the page markup and
// collects the content between it and the next heading.
//
// Fact sheets are not uniformly structured: some encode content as bullet
// lists, others as prose. Sections with a marker therefore prefer list items
// and fall back to paragraphs; the overview is always prose, paragraphs
// joined by a space. The result is prefixed with an intent header and
// truncated to the message length limit.
func ExtractSection(page io.Reader, section Section, subject string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return "", fmt.Errorf("%w: unparseable page: %v", ErrSectionNotFound, err)
	}

	heading := findHeading(doc, section.keywords())
	if heading == nil {
		return "", ErrSectionNotFound
	}

	// Everything up to the next heading belongs to this section.
	span := heading.NextUntil("h2, h3")

	body := ""
	if marker := section.Marker(); marker != "" {
		items := collectListItems(span, marker)
		if len(items) == 0 {
			items = collectParagraphs(span, marker)
		}
		body = strings.Join(items, "\n\n")
	} else {
		body = strings.Join(collectParagraphs(span, ""), " ")
	}

	if body == "" {
		return "", ErrSectionNotFound
	}

	text := fmt.Sprintf("Intent of %s:\n\n%s", capitalize(subject), body)
	return textutil.Truncate(text, sectionCharLimit), nil
}

// findHeading returns the first h2/h3 whose normalized text contains any of
// the keywords, in document order, or nil.
func findHeading(doc *goquery.Document, keywords []string) *goquery.Selection {
	var heading *goquery.Selection
	doc.Find("h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.ToLower(normalizeSpace(s.Text()))
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				heading = s
				return false
			}
		}
		return true
	})
	return heading
}

// collectListItems gathers the text of every list item inside the span's
// bullet lists, decorated with the marker.
func collectListItems(span *goquery.Selection, marker string) []string {
	var items []string
	span.Filter("ul").Each(func(_ int, ul *goquery.Selection) {
		ul.Find("li").Each(func(_ int, li *goquery.Selection) {
			if text := normalizeSpace(li.Text()); text != "" {
				items = append(items, decorate(marker, text))
			}
		})
	})
	return items
}

// collectParagraphs gathers the text of the span's paragraph blocks.
func collectParagraphs(span *goquery.Selection, marker string) []string {
	var items []string
	span.Filter("p").Each(func(_ int, p *goquery.Selection) {
		if text := normalizeSpace(p.Text()); text != "" {
			items = append(items, decorate(marker, text))
		}
	})
	return items
}

func decorate(marker, text string) string {
	if marker == "" {
		return text
	}
	return marker + " " + text
}

// normalizeSpace trims and collapses internal whitespace runs to one space.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
