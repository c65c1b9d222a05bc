package coursefile

import (
	"strings"
	"testing"
)

func TestValidate_ValidCourse(t *testing.T) {
	res, err := Validate([]byte(fullCourseYAML))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !res.Valid {
		t.Fatalf("expected valid, got issues: %v", res.Issues)
	}
}

func TestValidate_BadLevel(t *testing.T) {
	data := strings.Replace(fullCourseYAML, "level: intermediate", "level: expert", 1)

	res, err := Validate([]byte(data))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if res.Valid {
		t.Fatal("expected validation failure for bad level")
	}
	if !hasIssueAt(res, "/level") {
		t.Errorf("no issue reported at /level: %v", res.Issues)
	}
}

func TestValidate_BadSlug(t *testing.T) {
	data := strings.Replace(fullCourseYAML,
		"slug: go-for-backend-engineers", "slug: Go For Backend!", 1)

	res, err := Validate([]byte(data))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if res.Valid {
		t.Fatal("expected validation failure for bad slug")
	}
	if !hasIssueAt(res, "/slug") {
		t.Errorf("no issue reported at /slug: %v", res.Issues)
	}
}

func TestValidate_BadCurrency(t *testing.T) {
	data := strings.Replace(fullCourseYAML, "currency: USD", "currency: dollars", 1)

	res, err := Validate([]byte(data))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if res.Valid {
		t.Fatal("expected validation failure for bad currency")
	}
}

func TestValidate_UnknownField(t *testing.T) {
	data := fullCourseYAML + "instructor_name: someone\n"

	res, err := Validate([]byte(data))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if res.Valid {
		t.Fatal("expected validation failure for unknown field")
	}
}

func TestValidate_ShortDescription(t *testing.T) {
	data := strings.Replace(fullCourseYAML,
		"description: A practical course on writing production Go services.",
		"description: short", 1)

	res, err := Validate([]byte(data))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if res.Valid {
		t.Fatal("expected validation failure for short description")
	}
	if !hasIssueAt(res, "/description") {
		t.Errorf("no issue reported at /description: %v", res.Issues)
	}
}

func TestValidate_MalformedYAML(t *testing.T) {
	if _, err := Validate([]byte("title: [unclosed")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func hasIssueAt(res *ValidationResult, path string) bool {
	for _, issue := range res.Issues {
		if issue.Path == path {
			return true
		}
	}
	return false
}
