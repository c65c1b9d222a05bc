package coursefile

import (
	"os"
	"path/filepath"
	"testing"
)

const fullCourseYAML = `title: Go for Backend Engineers
slug: go-for-backend-engineers
description: A practical course on writing production Go services.
category: programming
level: intermediate
price: 49.99
currency: USD
is_free: false
is_published: true
duration_hours: 12.5
learning_objectives:
  - Build HTTP services
  - Write table-driven tests
requirements:
  - Basic programming experience
`

func TestParse(t *testing.T) {
	cf, err := Parse([]byte(fullCourseYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cf.Title != "Go for Backend Engineers" {
		t.Errorf("title = %q", cf.Title)
	}
	if cf.Slug != "go-for-backend-engineers" {
		t.Errorf("slug = %q", cf.Slug)
	}
	if cf.Level != "intermediate" {
		t.Errorf("level = %q", cf.Level)
	}
	if cf.Price == nil || *cf.Price != 49.99 {
		t.Errorf("price = %v", cf.Price)
	}
	if cf.IsFree == nil || *cf.IsFree {
		t.Errorf("is_free = %v", cf.IsFree)
	}
	if cf.IsPublished == nil || !*cf.IsPublished {
		t.Errorf("is_published = %v", cf.IsPublished)
	}
	if len(cf.LearningObjectives) != 2 {
		t.Errorf("learning_objectives = %v", cf.LearningObjectives)
	}
}

func TestParse_AbsentFieldsStayNil(t *testing.T) {
	cf, err := Parse([]byte("title: Minimal\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cf.Price != nil || cf.IsFree != nil || cf.IsPublished != nil || cf.DurationHours != nil {
		t.Error("fields absent from the YAML must stay nil for partial updates")
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("title: [unclosed")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.yaml")
	if err := os.WriteFile(path, []byte(fullCourseYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cf, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if cf.Category != "programming" {
		t.Errorf("category = %q", cf.Category)
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestMissingCreateFields(t *testing.T) {
	cf, err := Parse([]byte(fullCourseYAML))
	if err != nil {
		t.Fatal(err)
	}
	if missing := cf.MissingCreateFields(); len(missing) != 0 {
		t.Errorf("complete file reported missing fields: %v", missing)
	}

	partial := &CourseFile{Title: "Only a title"}
	missing := partial.MissingCreateFields()
	want := []string{"slug", "description", "category"}
	if len(missing) != len(want) {
		t.Fatalf("missing = %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("missing[%d] = %q, want %q", i, missing[i], want[i])
		}
	}
}

func TestToInput(t *testing.T) {
	cf, err := Parse([]byte(fullCourseYAML))
	if err != nil {
		t.Fatal(err)
	}
	in := cf.ToInput()
	if in.Title != cf.Title || in.Slug != cf.Slug || in.Category != cf.Category {
		t.Error("ToInput dropped identity fields")
	}
	if in.Price == nil || *in.Price != 49.99 {
		t.Errorf("price = %v", in.Price)
	}
	if in.DurationHours == nil || *in.DurationHours != 12.5 {
		t.Errorf("duration_hours = %v", in.DurationHours)
	}
}
