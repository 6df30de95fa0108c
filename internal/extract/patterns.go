package extract

import (
	"regexp"
	"strings"
)

// Tuned limits entangled with extraction accuracy; change deliberately,
// not in passing.
const (
	// MinInputLength is the shortest document accepted for extraction.
	MinInputLength = 50
	// NameScanLimit bounds the recognizer scan for the candidate name,
	// which is assumed to sit near the top of the document.
	NameScanLimit = 500
	// CompanyScanLimit bounds the recognizer scan per experience entry.
	CompanyScanLimit = 300
	// TitleLimit caps the job title taken from an entry's first line.
	TitleLimit = 100
	// DescriptionLimit caps the stored raw text of an entry.
	DescriptionLimit = 500
	// SectionHeaderSkip is how far past a matched heading the search for
	// the next heading starts, so a section never ends on its own line.
	SectionHeaderSkip = 50

	MaxExperienceEntries     = 5
	MaxEducationEntries      = 3
	MinExperienceEntryLength = 20
	MinEducationEntryLength  = 10
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Ordered: international with separators, US style, bare 10 digits.
	// The first pattern that matches anything wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{10}`),
	}

	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/([a-zA-Z0-9-]+)`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/([a-zA-Z0-9-]+)`)

	// Month-name-plus-year or a bare year, used for entry durations.
	datePattern = regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|\d{4}`)

	yearPattern = regexp.MustCompile(`\b(?:19\d{2}|20\d{2})\b`)

	// Entry boundaries, anchored: applied to the text following a newline.
	experienceBoundary = regexp.MustCompile(`^(?:\d{4}|\w+\s+\d{4})`)
	educationBoundary  = regexp.MustCompile(`(?i)^(?:\d{4}|bachelor|master|phd|b\.)`)
)

// DegreeKeywords are matched in list order; the first hit becomes the
// degree, regardless of where it appears in the entry.
var DegreeKeywords = []string{
	"Bachelor", "Master", "PhD", "B.Tech", "M.Tech", "B.S.", "M.S.",
	"BA", "MA", "MBA", "B.E.", "M.E.", "Associate",
}

// truncateRunes cuts s to at most n characters. Cuts are by raw character
// count, not word boundary; truncated text may end mid-word.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// asciiLower lowercases ASCII letters only, so byte offsets into the result
// map one-to-one back into the original text.
func asciiLower(s string) string {
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func compileWholeWord(words []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		out = append(out, regexp.MustCompile(`\b`+regexp.QuoteMeta(strings.ToLower(w))+`\b`))
	}
	return out
}

func compileHeaders(headers []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(headers))
	for _, h := range headers {
		out = append(out, regexp.MustCompile(`\n\s*\b`+regexp.QuoteMeta(strings.ToLower(h))+`\b`))
	}
	return out
}
