package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-extract/internal/ner"
)

// orgStub tags a fixed set of organization names when they occur in the
// scanned text, in the order given.
func orgStub(names ...string) ner.Recognizer {
	return ner.Func(func(text string) ([]ner.Entity, error) {
		var entities []ner.Entity
		for _, name := range names {
			if strings.Contains(text, name) {
				entities = append(entities, ner.Entity{Label: ner.LabelOrganization, Text: name})
			}
		}
		return entities, nil
	})
}

func TestExtractExperience_SegmentsEntries(t *testing.T) {
	text := "Experience\nSenior Engineer leading the platform team at Initech\n" +
		"2020 Platform Engineer\nBuilt the deployment pipeline at Initech\n" +
		"2018 Junior Developer\nWrote internal tooling at Globex for data teams\n"

	e := New(orgStub("Initech", "Globex"), Config{})

	entries, err := e.extractExperience(text)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Experience", strval(t, entries[0].Title))
	assert.Nil(t, entries[0].Duration)
	assert.Equal(t, "Initech", strval(t, entries[0].Company))

	assert.Equal(t, "2020 Platform Engineer", strval(t, entries[1].Title))
	assert.Equal(t, "2020", strval(t, entries[1].Duration))
	assert.Equal(t, "Initech", strval(t, entries[1].Company))

	assert.Equal(t, "2018 Junior Developer", strval(t, entries[2].Title))
	assert.Equal(t, "2018", strval(t, entries[2].Duration))
	assert.Equal(t, "Globex", strval(t, entries[2].Company))
}

func TestExtractExperience_DurationJoinsFirstTwoDates(t *testing.T) {
	text := "Experience\nConsultant role description text\n" +
		"2016 Consultant May 2016 Aug 2017 advising enterprise clients\n"

	e := New(&ner.Static{}, Config{})

	entries, err := e.extractExperience(text)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Only the first two date tokens make it into the duration.
	assert.Equal(t, "2016 - May 2016", strval(t, entries[1].Duration))
}

func TestExtractExperience_CapAndNoiseFilter(t *testing.T) {
	var b strings.Builder
	b.WriteString("Experience\nLead role on many projects over the years\n")
	b.WriteString("2021 ok\n") // under 20 characters: noise, dropped
	for year := 2020; year > 2013; year-- {
		fmt.Fprintf(&b, "%d Engineer working on backend services\n", year)
	}

	e := New(&ner.Static{}, Config{})

	entries, err := e.extractExperience(b.String())
	require.NoError(t, err)

	assert.Len(t, entries, MaxExperienceEntries)
	for _, entry := range entries {
		assert.GreaterOrEqual(t, len(*entry.Description), MinExperienceEntryLength)
	}
}

func TestExtractExperience_TruncatesTitleAndDescription(t *testing.T) {
	longLine := strings.Repeat("Senior Engineer ", 50) // well over both limits
	text := "Experience\n2019 " + longLine + "\n" + strings.Repeat("did things ", 60)

	e := New(&ner.Static{}, Config{})

	entries, err := e.extractExperience(text)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	last := entries[len(entries)-1]
	assert.Len(t, *last.Title, TitleLimit)
	assert.Len(t, *last.Description, DescriptionLimit)
}

func TestExtractExperience_NoSectionMeansNoEntries(t *testing.T) {
	e := New(&ner.Static{}, Config{})

	entries, err := e.extractExperience("Just a plain paragraph about hobbies and travel.")
	require.NoError(t, err)

	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}
