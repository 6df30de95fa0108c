package extract

import (
	"strings"

	"resume-extract/internal/ner"
)

// extractContact never fails on absent fields; only a recognizer fault
// surfaces as an error.
func (e *Extractor) extractContact(text string) (*Contact, error) {
	contact := &Contact{}

	if m := emailPattern.FindString(text); m != "" {
		contact.Email = &m
	}

	for _, pattern := range phonePatterns {
		if m := pattern.FindString(text); m != "" {
			contact.Phone = &m
			break
		}
	}

	if m := linkedinPattern.FindStringSubmatch(text); m != nil {
		handle := "linkedin.com/in/" + m[1]
		contact.LinkedIn = &handle
	}

	if m := githubPattern.FindStringSubmatch(text); m != nil {
		handle := "github.com/" + m[1]
		contact.GitHub = &handle
	}

	// The name is assumed to sit near the top, so only the head of the
	// document goes through the recognizer.
	entities, err := e.recognizer.Recognize(truncateRunes(text, NameScanLimit))
	if err != nil {
		return nil, err
	}
	for _, ent := range entities {
		// Long person spans are usually mis-tagged sentences; skip them.
		if ent.Label == ner.LabelPerson && len(strings.Fields(ent.Text)) <= 4 {
			name := ent.Text
			contact.Name = &name
			break
		}
	}

	return contact, nil
}
