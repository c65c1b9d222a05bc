package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/learnly-labs/learnly/internal/api"
	"github.com/learnly-labs/learnly/internal/coursefile"
	"github.com/spf13/cobra"
)

var (
	coursesCategory string
	coursesLevel    string
	coursesJSON     bool
	courseFilePath  string
)

func init() {
	coursesListCmd.Flags().StringVar(&coursesCategory, "category", "", "Filter by category")
	coursesListCmd.Flags().StringVar(&coursesLevel, "level", "", "Filter by level (beginner, intermediate, advanced)")
	coursesListCmd.Flags().BoolVar(&coursesJSON, "json", false, "Output in JSON format")

	coursesCreateCmd.Flags().StringVarP(&courseFilePath, "file", "f", "", "YAML course definition")
	_ = coursesCreateCmd.MarkFlagRequired("file")
	coursesUpdateCmd.Flags().StringVarP(&courseFilePath, "file", "f", "", "YAML course definition with the fields to change")
	_ = coursesUpdateCmd.MarkFlagRequired("file")

	coursesCmd.AddCommand(coursesListCmd)
	coursesCmd.AddCommand(coursesShowCmd)
	coursesCmd.AddCommand(coursesCreateCmd)
	coursesCmd.AddCommand(coursesUpdateCmd)
	coursesCmd.AddCommand(coursesDeleteCmd)
	rootCmd.AddCommand(coursesCmd)
}

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Browse and manage courses",
}

var coursesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List courses",
	Long:  `List published courses. Signed-in instructors and admins also see their unpublished courses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		// Course listings are public; a stored session just widens the
		// results, so a missing one is not an error here.
		_, _ = c.Bootstrap(cmd.Context())

		courses, err := c.Courses(cmd.Context(), api.CourseFilter{
			Category: coursesCategory,
			Level:    coursesLevel,
		})
		if err != nil {
			return fmt.Errorf("listing courses: %w", err)
		}

		if len(courses) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No courses found.")
			return nil
		}

		if coursesJSON {
			out, err := json.MarshalIndent(courses, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tLEVEL\tPRICE\tPUBLISHED")
		for _, course := range courses {
			price := "free"
			if !course.IsFree {
				price = fmt.Sprintf("%.2f %s", course.Price, course.Currency)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%t\n",
				course.ID, course.Title, course.Category, course.Level, price, course.IsPublished)
		}
		return w.Flush()
	},
}

var coursesShowCmd = &cobra.Command{
	Use:   "show <course-id>",
	Short: "Show one course with its lessons",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseCourseID(args[0])
		if err != nil {
			return err
		}

		c := newClient()
		_, _ = c.Bootstrap(cmd.Context())

		course, err := c.Course(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("fetching course %d: %w", id, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (#%d)\n", course.Title, course.ID)
		fmt.Fprintf(out, "%s | %s", course.Category, course.Level)
		if course.IsFree {
			fmt.Fprint(out, " | free")
		} else {
			fmt.Fprintf(out, " | %.2f %s", course.Price, course.Currency)
		}
		fmt.Fprintf(out, "\n\n%s\n", course.Description)
		if len(course.LearningObjectives) > 0 {
			fmt.Fprintf(out, "\nYou will learn:\n")
			for _, obj := range course.LearningObjectives {
				fmt.Fprintf(out, "  - %s\n", obj)
			}
		}

		lessons, err := c.Lessons(cmd.Context(), id)
		if err == nil && len(lessons) > 0 {
			fmt.Fprintf(out, "\nLessons:\n")
			for _, l := range lessons {
				fmt.Fprintf(out, "  %2d. %s (%s)\n", l.Order, l.Title, l.ContentType)
			}
		}
		return nil
	},
}

var coursesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a course from a YAML definition",
	Long:  `Create a course from a YAML file. Instructor or admin role required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cf, err := loadCourseFile(courseFilePath, true)
		if err != nil {
			return err
		}

		c := newClient()
		if _, err := requireSession(cmd, c); err != nil {
			return err
		}

		course, err := c.CreateCourse(cmd.Context(), cf.ToInput())
		if err != nil {
			return fmt.Errorf("creating course: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created course %q (#%d)\n", course.Title, course.ID)
		return nil
	},
}

var coursesUpdateCmd = &cobra.Command{
	Use:   "update <course-id>",
	Short: "Update a course from a YAML definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseCourseID(args[0])
		if err != nil {
			return err
		}

		cf, err := loadCourseFile(courseFilePath, false)
		if err != nil {
			return err
		}

		c := newClient()
		if _, err := requireSession(cmd, c); err != nil {
			return err
		}

		course, err := c.UpdateCourse(cmd.Context(), id, cf.ToInput())
		if err != nil {
			return fmt.Errorf("updating course %d: %w", id, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated course %q (#%d)\n", course.Title, course.ID)
		return nil
	},
}

var coursesDeleteCmd = &cobra.Command{
	Use:   "delete <course-id>",
	Short: "Delete a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseCourseID(args[0])
		if err != nil {
			return err
		}

		c := newClient()
		if _, err := requireSession(cmd, c); err != nil {
			return err
		}

		if err := c.DeleteCourse(cmd.Context(), id); err != nil {
			return fmt.Errorf("deleting course %d: %w", id, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted course %d\n", id)
		return nil
	},
}

func parseCourseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid course id %q", arg)
	}
	return id, nil
}

// loadCourseFile parses and schema-validates a course definition before any
// network call, so authors get field-level errors locally.
func loadCourseFile(path string, create bool) (*coursefile.CourseFile, error) {
	result, err := coursefile.ValidateFile(path)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		var b strings.Builder
		fmt.Fprintf(&b, "invalid course file %s:", path)
		for _, issue := range result.Issues {
			fmt.Fprintf(&b, "\n  %s: %s", issue.Path, issue.Message)
		}
		return nil, fmt.Errorf("%s", b.String())
	}

	cf, err := coursefile.ParseFile(path)
	if err != nil {
		return nil, err
	}

	if create {
		if missing := cf.MissingCreateFields(); len(missing) > 0 {
			return nil, fmt.Errorf("course file %s is missing required fields: %s",
				path, strings.Join(missing, ", "))
		}
	}
	return cf, nil
}
