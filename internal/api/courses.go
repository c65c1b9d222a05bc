package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Course is a course record as returned by the backend.
type Course struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Slug               string   `json:"slug"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Level              string   `json:"level"`
	Price              float64  `json:"price"`
	Currency           string   `json:"currency"`
	IsFree             bool     `json:"is_free"`
	IsPublished        bool     `json:"is_published"`
	InstructorID       int      `json:"instructor_id"`
	ThumbnailURL       string   `json:"thumbnail_url,omitempty"`
	DurationHours      float64  `json:"duration_hours,omitempty"`
	LearningObjectives []string `json:"learning_objectives,omitempty"`
	Requirements       []string `json:"requirements,omitempty"`
	CreatedAt          string   `json:"created_at,omitempty"`
	UpdatedAt          string   `json:"updated_at,omitempty"`
}

// CourseInput is the create/update payload for a course.
type CourseInput struct {
	Title              string   `json:"title,omitempty"`
	Slug               string   `json:"slug,omitempty"`
	Description        string   `json:"description,omitempty"`
	Category           string   `json:"category,omitempty"`
	Level              string   `json:"level,omitempty"`
	Price              *float64 `json:"price,omitempty"`
	Currency           string   `json:"currency,omitempty"`
	IsFree             *bool    `json:"is_free,omitempty"`
	IsPublished        *bool    `json:"is_published,omitempty"`
	ThumbnailURL       string   `json:"thumbnail_url,omitempty"`
	LearningObjectives []string `json:"learning_objectives,omitempty"`
	Requirements       []string `json:"requirements,omitempty"`
	DurationHours      *float64 `json:"duration_hours,omitempty"`
}

// Lesson is a lesson within a course.
type Lesson struct {
	ID              int    `json:"id"`
	CourseID        int    `json:"course_id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Order           int    `json:"order"`
	ContentType     string `json:"content_type"`
	ContentURL      string `json:"content_url"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	IsPublished     bool   `json:"is_published"`
}

// CourseFilter narrows course listings. Zero values mean no filtering.
type CourseFilter struct {
	Category string
	Level    string
	Skip     int
	Limit    int
}

// Courses lists courses matching the filter. Works unauthenticated; the
// backend simply hides unpublished courses from anonymous callers.
func (c *Client) Courses(ctx context.Context, filter CourseFilter) ([]Course, error) {
	q := url.Values{}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Level != "" {
		q.Set("level", filter.Level)
	}
	if filter.Skip > 0 {
		q.Set("skip", strconv.Itoa(filter.Skip))
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}

	path := "/courses/"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var courses []Course
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Course fetches one course by id.
func (c *Client) Course(ctx context.Context, id int) (*Course, error) {
	var course Course
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/courses/%d", id), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse creates a course. Instructor or admin only; the backend
// enforces the role.
func (c *Client) CreateCourse(ctx context.Context, in CourseInput) (*Course, error) {
	var course Course
	if err := c.doJSON(ctx, http.MethodPost, "/courses/", in, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse applies a partial update to a course.
func (c *Client) UpdateCourse(ctx context.Context, id int, in CourseInput) (*Course, error) {
	var course Course
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/courses/%d", id), in, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/courses/%d", id), nil, nil)
}

// Enroll enrolls the signed-in user in a course.
func (c *Client) Enroll(ctx context.Context, courseID int) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/courses/%d/enroll", courseID), nil, nil)
}

// Lessons lists a course's lessons.
func (c *Client) Lessons(ctx context.Context, courseID int) ([]Lesson, error) {
	var lessons []Lesson
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/courses/%d/lessons", courseID), nil, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}
