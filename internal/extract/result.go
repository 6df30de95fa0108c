package extract

// Contact holds whatever contact details were found. Every field is
// independently optional; nil is a normal outcome, not an error.
type Contact struct {
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Name     *string `json:"name"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
}

// ExperienceEntry is one segmented job record.
type ExperienceEntry struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Duration    *string `json:"duration"`
	Description *string `json:"description"`
}

// EducationEntry is one segmented degree record. Field (area of study) is
// defined in the output schema but not populated by the heuristic pipeline;
// there is no extraction rule for it yet.
type EducationEntry struct {
	Degree      *string `json:"degree"`
	Institution *string `json:"institution"`
	Year        *string `json:"year"`
	Field       *string `json:"field"`
}

type Summary struct {
	TotalSkills     int `json:"totalSkills"`
	TotalExperience int `json:"totalExperience"`
	TotalEducation  int `json:"totalEducation"`
}

// Result is the success shape: always exactly these five keys.
type Result struct {
	Contact    *Contact          `json:"contact"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Summary    Summary           `json:"summary"`
}

// ErrorResult is the failure shape, mutually exclusive with Result on the
// same output channel.
type ErrorResult struct {
	Error   string `json:"error"`
	Skipped bool   `json:"skipped"`
	Reason  string `json:"reason,omitempty"`
}

// ErrorResultFrom wraps a structural extraction failure into the
// error-shaped output variant.
func ErrorResultFrom(err error) *ErrorResult {
	return &ErrorResult{
		Error:   err.Error(),
		Skipped: true,
		Reason:  "Extraction failed: " + err.Error(),
	}
}
