package domain

// Skill levels accepted by the recommendation API.
const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
)

// Recommendation is an ephemeral, per-request result. It is never persisted.
type Recommendation struct {
	CourseName     string  `json:"courseName"`
	UniversityName string  `json:"universityName"`
	MatchScore     float64 `json:"matchScore"`
	Rationale      string  `json:"rationale"`
	Category       string  `json:"category"`
	Duration       string  `json:"duration"`
	Difficulty     string  `json:"difficulty"`
}
