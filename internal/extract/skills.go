package extract

import "strings"

// DefaultSkillVocabulary is the stock set of recognized technical terms.
// Callers can supply their own vocabulary through Config to localize or
// extend it without code changes.
var DefaultSkillVocabulary = []string{
	// Programming languages
	"Python", "JavaScript", "Java", "C++", "C#", "Ruby", "PHP", "Swift",
	"Kotlin", "Go", "Rust", "TypeScript", "R", "MATLAB", "Scala", "Perl",

	// Web technologies
	"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Express.js",
	"Django", "Flask", "FastAPI", "Spring Boot", "ASP.NET", "jQuery",
	"Next.js", "Nuxt.js", "Svelte", "Tailwind CSS", "Bootstrap",

	// Databases
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Cassandra",
	"Oracle", "SQLite", "DynamoDB", "Firebase", "Neo4j", "MariaDB",

	// Cloud & DevOps
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "CI/CD",
	"Terraform", "Ansible", "Git", "GitHub", "GitLab", "Bitbucket",
	"Linux", "Unix", "Shell Scripting", "Bash",

	// Data science & ML
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Keras",
	"Scikit-learn", "Pandas", "NumPy", "NLP", "Computer Vision", "AI",
	"Data Analysis", "Statistics", "Tableau", "Power BI", "Spark",

	// Mobile
	"Android", "iOS", "React Native", "Flutter", "Xamarin",

	// General
	"REST API", "GraphQL", "Microservices", "Agile", "Scrum", "JIRA",
	"Testing", "Unit Testing", "Jest", "Pytest", "Selenium",
}

// SkillMatcher tests vocabulary terms against a document. Presence is
// binary: no scoring, no frequency weighting.
type SkillMatcher struct {
	vocabulary []string
}

func NewSkillMatcher(vocabulary []string) *SkillMatcher {
	if vocabulary == nil {
		vocabulary = DefaultSkillVocabulary
	}
	return &SkillMatcher{vocabulary: vocabulary}
}

// Match returns the canonical-cased vocabulary terms contained in text,
// case-insensitively. Containment is plain substring, not word-boundary
// matching: "Java" inside "JavaScript" counts. That quirk is part of the
// contract, not a bug.
func (m *SkillMatcher) Match(text string) []string {
	lower := strings.ToLower(text)

	found := []string{}
	seen := make(map[string]bool)
	for _, skill := range m.vocabulary {
		if seen[skill] {
			continue
		}
		if strings.Contains(lower, strings.ToLower(skill)) {
			seen[skill] = true
			found = append(found, skill)
		}
	}
	return found
}
