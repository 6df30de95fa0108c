// Package extract implements the resume-extraction pipeline: contact
// details via pattern matching, skills via vocabulary containment, and
// experience/education entries via heuristic section segmentation. It is
// single-pass and best-effort; resumes have no grammar, so extraction is
// heuristic and absent fields are a normal outcome.
package extract

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"resume-extract/internal/ner"
)

// ErrInputTooShort rejects documents below MinInputLength before any
// extraction runs.
var ErrInputTooShort = errors.New("input text too short")

// Config carries the injectable vocabularies. Zero-value fields fall back
// to the package defaults.
type Config struct {
	Vocabulary         []string
	SectionHeaders     []string
	ExperienceSynonyms []string
	EducationSynonyms  []string
}

// Extractor runs the full pipeline over one document per call. It holds no
// per-document state and is safe for concurrent use if its Recognizer is.
type Extractor struct {
	recognizer ner.Recognizer
	skills     *SkillMatcher

	headerPatterns     []*regexp.Regexp
	experienceSynonyms []*regexp.Regexp
	educationSynonyms  []*regexp.Regexp
}

func New(recognizer ner.Recognizer, cfg Config) *Extractor {
	headers := cfg.SectionHeaders
	if headers == nil {
		headers = DefaultSectionHeaders
	}
	expSynonyms := cfg.ExperienceSynonyms
	if expSynonyms == nil {
		expSynonyms = DefaultExperienceSynonyms
	}
	eduSynonyms := cfg.EducationSynonyms
	if eduSynonyms == nil {
		eduSynonyms = DefaultEducationSynonyms
	}

	return &Extractor{
		recognizer:         recognizer,
		skills:             NewSkillMatcher(cfg.Vocabulary),
		headerPatterns:     compileHeaders(headers),
		experienceSynonyms: compileWholeWord(expSynonyms),
		educationSynonyms:  compileWholeWord(eduSynonyms),
	}
}

// Skills exposes the configured matcher for callers that only need
// skill extraction, such as job-description analysis.
func (e *Extractor) Skills() *SkillMatcher {
	return e.skills
}

// ValidateInput rejects missing or too-short documents. Callers must check
// this before Extract so that invalid input never reaches the extractors.
func ValidateInput(text string) error {
	if utf8.RuneCountInString(text) < MinInputLength {
		return ErrInputTooShort
	}
	return nil
}

// Extract runs the four extractors independently over text and assembles
// the result. Field-level absence is never an error; only structural
// faults (a failing recognizer, an unexpected panic) surface as an error,
// which callers wrap with ErrorResultFrom.
func (e *Extractor) Extract(text string) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("extraction panic: %v", r)
		}
	}()

	contact, err := e.extractContact(text)
	if err != nil {
		return nil, err
	}

	skills := e.skills.Match(text)

	experience, err := e.extractExperience(text)
	if err != nil {
		return nil, err
	}

	education, err := e.extractEducation(text)
	if err != nil {
		return nil, err
	}

	return &Result{
		Contact:    contact,
		Skills:     skills,
		Experience: experience,
		Education:  education,
		Summary: Summary{
			TotalSkills:     len(skills),
			TotalExperience: len(experience),
			TotalEducation:  len(education),
		},
	}, nil
}
