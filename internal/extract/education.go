package extract

import (
	"strings"
	"unicode/utf8"

	"resume-extract/internal/ner"
)

// extractEducation segments the education section into at most
// MaxEducationEntries records.
func (e *Extractor) extractEducation(text string) ([]EducationEntry, error) {
	entries := []EducationEntry{}

	section, ok := findSection(text, e.educationSynonyms, e.headerPatterns)
	if !ok {
		return entries, nil
	}

	for _, raw := range splitBefore(section, educationBoundary) {
		if utf8.RuneCountInString(strings.TrimSpace(raw)) < MinEducationEntryLength {
			continue
		}

		entry := EducationEntry{}

		lower := strings.ToLower(raw)
		for _, keyword := range DegreeKeywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				degree := keyword
				entry.Degree = &degree
				break
			}
		}

		// Graduation year is usually the last one mentioned, so the last
		// 19xx/20xx token wins over earlier ones.
		if years := yearPattern.FindAllString(raw, -1); len(years) > 0 {
			year := years[len(years)-1]
			entry.Year = &year
		}

		// Institution names can appear anywhere in the entry; unlike
		// experience there is no scan cap here.
		entities, err := e.recognizer.Recognize(raw)
		if err != nil {
			return nil, err
		}
		for _, ent := range entities {
			if ent.Label == ner.LabelOrganization {
				institution := ent.Text
				entry.Institution = &institution
				break
			}
		}

		// Field stays unset: no extraction rule for area of study.

		entries = append(entries, entry)
		if len(entries) == MaxEducationEntries {
			break
		}
	}

	return entries, nil
}
