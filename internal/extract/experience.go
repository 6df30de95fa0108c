package extract

import (
	"strings"
	"unicode/utf8"

	"resume-extract/internal/ner"
)

// extractExperience segments the experience section into at most
// MaxExperienceEntries records, in document order (most recent first,
// assuming a conventionally ordered resume).
func (e *Extractor) extractExperience(text string) ([]ExperienceEntry, error) {
	entries := []ExperienceEntry{}

	section, ok := findSection(text, e.experienceSynonyms, e.headerPatterns)
	if !ok {
		return entries, nil
	}

	for _, raw := range splitBefore(section, experienceBoundary) {
		trimmed := strings.TrimSpace(raw)
		if utf8.RuneCountInString(trimmed) < MinExperienceEntryLength {
			continue
		}

		entry := ExperienceEntry{}

		if dates := datePattern.FindAllString(raw, -1); len(dates) > 0 {
			if len(dates) > 2 {
				dates = dates[:2]
			}
			duration := strings.Join(dates, " - ")
			entry.Duration = &duration
		}

		entities, err := e.recognizer.Recognize(truncateRunes(raw, CompanyScanLimit))
		if err != nil {
			return nil, err
		}
		for _, ent := range entities {
			if ent.Label == ner.LabelOrganization {
				company := ent.Text
				entry.Company = &company
				break
			}
		}

		// The first line usually carries the title.
		firstLine, _, _ := strings.Cut(trimmed, "\n")
		title := truncateRunes(strings.TrimSpace(firstLine), TitleLimit)
		entry.Title = &title

		description := truncateRunes(trimmed, DescriptionLimit)
		entry.Description = &description

		entries = append(entries, entry)
		if len(entries) == MaxExperienceEntries {
			break
		}
	}

	return entries, nil
}
