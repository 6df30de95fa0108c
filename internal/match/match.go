// Package match scores a set of resume skills against the skills demanded
// by a job description.
package match

import (
	"fmt"
	"math"
	"strings"
)

// Analysis is the result of comparing resume skills with JD skills.
type Analysis struct {
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	MatchScore    float64  `json:"matchScore"`
	Tips          []string `json:"tips"`
	JDSkills      []string `json:"jdSkills"`
}

// Analyze intersects the two skill sets. The score is the share of JD
// skills covered by the resume, as a percentage rounded to two decimals;
// zero when the JD yielded no skills.
func Analyze(resumeSkills, jdSkills []string) *Analysis {
	have := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		have[s] = true
	}

	matched := []string{}
	missing := []string{}
	seen := make(map[string]bool, len(jdSkills))
	for _, s := range jdSkills {
		if seen[s] {
			continue
		}
		seen[s] = true
		if have[s] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}

	score := 0.0
	if len(seen) > 0 {
		score = math.Round(float64(len(matched))/float64(len(seen))*100*100) / 100
	}

	tips := []string{}
	if len(missing) > 0 {
		tips = append(tips, fmt.Sprintf("Consider adding these missing skills: %s", strings.Join(missing, ", ")))
	}
	if score < 60 {
		tips = append(tips, "Your resume might need better alignment with the job requirements.")
	}

	return &Analysis{
		MatchedSkills: matched,
		MissingSkills: missing,
		MatchScore:    score,
		Tips:          tips,
		JDSkills:      jdSkills,
	}
}
