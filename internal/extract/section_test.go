package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSection_EndsAtNextHeading(t *testing.T) {
	text := "Experience\nSenior Engineer at Acme Corp 2019 to 2021\nBuilt the billing platform\n\nEducation\nBS Stanford 2015\n"

	section, ok := findSection(text,
		compileWholeWord(DefaultExperienceSynonyms),
		compileHeaders(DefaultSectionHeaders))
	require.True(t, ok)

	end := strings.Index(text, "\n\nEducation")
	assert.Equal(t, text[:end], section)
}

func TestFindSection_SynonymOrderBeatsDocumentPosition(t *testing.T) {
	// "work history" appears first in the document, but "experience" comes
	// first in the synonym list, so its later match wins.
	text := "Work History\nAcme 2019 to 2021 building services\n\nnotes mentioning experience keyword much later in the document"

	section, ok := findSection(text,
		compileWholeWord([]string{"experience", "work history"}),
		compileHeaders(DefaultSectionHeaders))
	require.True(t, ok)

	assert.True(t, strings.HasPrefix(section, "experience keyword"))
}

func TestFindSection_WholeWordOnly(t *testing.T) {
	text := "A highly experienced engineer with many employments behind them"

	_, ok := findSection(text,
		compileWholeWord([]string{"experience", "employment"}),
		compileHeaders(DefaultSectionHeaders))

	assert.False(t, ok)
}

func TestFindSection_HeadingInsideSkipWindowIgnored(t *testing.T) {
	// "skills" sits on its own line within the first 50 characters after
	// the section start, so it cannot terminate the section.
	text := "Experience\nSkills: Go\nGo developer with years of shipping software"

	section, ok := findSection(text,
		compileWholeWord(DefaultExperienceSynonyms),
		compileHeaders(DefaultSectionHeaders))
	require.True(t, ok)

	assert.Equal(t, text, section)
}

func TestFindSection_NotFound(t *testing.T) {
	_, ok := findSection("nothing relevant in here",
		compileWholeWord(DefaultEducationSynonyms),
		compileHeaders(DefaultSectionHeaders))

	assert.False(t, ok)
}

func TestSplitBefore_ExperienceBoundaries(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "bare year and month-year boundaries",
			text: "intro\n2020 job A\nmore detail\nJan 2021 job B",
			want: []string{"intro", "2020 job A\nmore detail", "Jan 2021 job B"},
		},
		{
			name: "newline without a date does not split",
			text: "first line\nsecond line without dates",
			want: []string{"first line\nsecond line without dates"},
		},
		{
			name: "word followed by year splits",
			text: "header\nSummer 2019 internship",
			want: []string{"header", "Summer 2019 internship"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitBefore(tt.text, experienceBoundary))
		})
	}
}

func TestSplitBefore_EducationBoundaries(t *testing.T) {
	text := "Education\nBachelor of Science, Stanford, 2014\nMaster of Science, MIT, 2018\nB. Eng, TU Delft, 2012"

	parts := splitBefore(text, educationBoundary)

	assert.Equal(t, []string{
		"Education",
		"Bachelor of Science, Stanford, 2014",
		"Master of Science, MIT, 2018",
		"B. Eng, TU Delft, 2012",
	}, parts)
}
