package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/learnly-labs/learnly/internal/session"
)

// DashboardStats aggregates the per-role dashboard figures. Only the fields
// relevant to the requested role are populated.
type DashboardStats struct {
	// Student
	TotalCoursesEnrolled int     `json:"total_courses_enrolled,omitempty"`
	CompletedCourses     int     `json:"completed_courses,omitempty"`
	InProgressCourses    int     `json:"in_progress_courses,omitempty"`
	TotalCertificates    int     `json:"total_certificates,omitempty"`
	AverageGrade         float64 `json:"average_grade,omitempty"`

	// Instructor
	TotalCourses  int     `json:"total_courses,omitempty"`
	TotalStudents int     `json:"total_students,omitempty"`
	TotalRevenue  float64 `json:"total_revenue,omitempty"`

	// Admin
	TotalUsers int `json:"total_users,omitempty"`
}

// Dashboard fetches the dashboard statistics for the given role.
func (c *Client) Dashboard(ctx context.Context, role session.Role) (*DashboardStats, error) {
	switch role {
	case session.RoleStudent, session.RoleInstructor, session.RoleAdmin:
	default:
		return nil, fmt.Errorf("no dashboard for role %q", role)
	}

	var stats DashboardStats
	path := fmt.Sprintf("/certificates/dashboard/%s", role)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
