package coursefile

import "github.com/learnly-labs/learnly/internal/api"

// CourseFile is a YAML course definition as authored for the create and
// update commands. Pointer fields distinguish "absent" from zero values so
// partial updates leave unset fields untouched server-side.
type CourseFile struct {
	Title              string   `yaml:"title"`
	Slug               string   `yaml:"slug,omitempty"`
	Description        string   `yaml:"description"`
	Category           string   `yaml:"category"`
	Level              string   `yaml:"level,omitempty"`
	Price              *float64 `yaml:"price,omitempty"`
	Currency           string   `yaml:"currency,omitempty"`
	IsFree             *bool    `yaml:"is_free,omitempty"`
	IsPublished        *bool    `yaml:"is_published,omitempty"`
	ThumbnailURL       string   `yaml:"thumbnail_url,omitempty"`
	DurationHours      *float64 `yaml:"duration_hours,omitempty"`
	LearningObjectives []string `yaml:"learning_objectives,omitempty"`
	Requirements       []string `yaml:"requirements,omitempty"`
}

// MissingCreateFields lists the required fields a new course is missing.
// Updates are partial and skip this check.
func (cf *CourseFile) MissingCreateFields() []string {
	var missing []string
	if cf.Title == "" {
		missing = append(missing, "title")
	}
	if cf.Slug == "" {
		missing = append(missing, "slug")
	}
	if cf.Description == "" {
		missing = append(missing, "description")
	}
	if cf.Category == "" {
		missing = append(missing, "category")
	}
	return missing
}

// ToInput converts the file into the API's course payload.
func (cf *CourseFile) ToInput() api.CourseInput {
	return api.CourseInput{
		Title:              cf.Title,
		Slug:               cf.Slug,
		Description:        cf.Description,
		Category:           cf.Category,
		Level:              cf.Level,
		Price:              cf.Price,
		Currency:           cf.Currency,
		IsFree:             cf.IsFree,
		IsPublished:        cf.IsPublished,
		ThumbnailURL:       cf.ThumbnailURL,
		LearningObjectives: cf.LearningObjectives,
		Requirements:       cf.Requirements,
		DurationHours:      cf.DurationHours,
	}
}
