package extract

import "regexp"

// DefaultSectionHeaders are the headings scanned for when deciding where a
// located section ends.
var DefaultSectionHeaders = []string{
	"experience", "education", "skills", "projects", "certifications",
	"awards", "summary", "objective", "references",
}

// Heading synonyms tried, in order, when locating a section. List order
// takes priority over document position: an earlier synonym matching late
// in the document beats a later synonym matching early.
var (
	DefaultExperienceSynonyms = []string{
		"experience", "work history", "employment", "professional experience",
	}
	DefaultEducationSynonyms = []string{
		"education", "academic", "qualifications", "degree",
	}
)

// findSection locates the span of the section named by synonyms. The span
// starts at the first whole-word occurrence of the first synonym that
// matches anywhere, and ends at the nearest following section heading
// (skipping the matched heading's own line) or end of document.
func findSection(text string, synonyms, headers []*regexp.Regexp) (string, bool) {
	lower := asciiLower(text)

	start := -1
	for _, re := range synonyms {
		if loc := re.FindStringIndex(lower); loc != nil {
			start = loc[0]
			break
		}
	}
	if start == -1 {
		return "", false
	}

	end := len(text)
	if from := start + SectionHeaderSkip; from < len(lower) {
		tail := lower[from:]
		for _, re := range headers {
			if loc := re.FindStringIndex(tail); loc != nil {
				if p := from + loc[0]; p < end {
					end = p
				}
			}
		}
	}

	return text[start:end], true
}

// splitBefore splits text at every newline whose following text matches
// boundary, which must be anchored at the start. The newline itself is
// consumed. This stands in for a lookahead split, which RE2 cannot express.
func splitBefore(text string, boundary *regexp.Regexp) []string {
	var parts []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		if boundary.MatchString(text[i+1:]) {
			parts = append(parts, text[start:i])
			start = i + 1
		}
	}
	return append(parts, text[start:])
}
