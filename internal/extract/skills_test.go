package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillMatcher_SubstringContainment(t *testing.T) {
	m := NewSkillMatcher(nil)

	// Matching is literal substring containment, not word-boundary:
	// "javascript" contains both "javascript" and "java", and "frameworks"
	// contains "r".
	found := m.Match("Built javascript frameworks for the web")

	assert.Contains(t, found, "JavaScript")
	assert.Contains(t, found, "Java")
	assert.Contains(t, found, "R")
}

func TestSkillMatcher_CaseInsensitive(t *testing.T) {
	m := NewSkillMatcher(nil)

	found := m.Match("Strong PYTHON and docker experience, some PostgreSQL")

	assert.Contains(t, found, "Python")
	assert.Contains(t, found, "Docker")
	assert.Contains(t, found, "PostgreSQL")
}

func TestSkillMatcher_CanonicalCasing(t *testing.T) {
	m := NewSkillMatcher(nil)

	found := m.Match("experience with kubernetes and tensorflow")

	assert.Contains(t, found, "Kubernetes")
	assert.Contains(t, found, "TensorFlow")
	assert.NotContains(t, found, "kubernetes")
}

func TestSkillMatcher_Idempotent(t *testing.T) {
	m := NewSkillMatcher(nil)
	text := "Go, Python, AWS, Docker, Kubernetes and more Go"

	first := m.Match(text)
	second := m.Match(text)

	assert.ElementsMatch(t, first, second)
}

func TestSkillMatcher_DeduplicatesVocabulary(t *testing.T) {
	m := NewSkillMatcher([]string{"Go", "Go", "Rust"})

	found := m.Match("we write Go services")

	assert.Equal(t, []string{"Go"}, found)
}

func TestSkillMatcher_InjectedVocabulary(t *testing.T) {
	m := NewSkillMatcher([]string{"COBOL", "Fortran"})

	found := m.Match("Maintained cobol batch jobs and some Python scripts")

	// Python is not in the injected vocabulary, so it cannot match.
	assert.Equal(t, []string{"COBOL"}, found)
}

func TestSkillMatcher_NoMatches(t *testing.T) {
	m := NewSkillMatcher([]string{"Erlang"})

	assert.Empty(t, m.Match("gardening and cooking"))
}
