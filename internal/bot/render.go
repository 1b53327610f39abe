package bot

import (
	"fmt"
	"strings"

	"github.com/dkenzhe/college-bot/internal/models"
)

// Display caps. Teachers render unbounded; everything else truncates with a
// "... and N more" suffix.
const (
	maxStudentsShown = 15
	maxGradesShown   = 10
	maxRefShown      = 10
)

var rowSeparator = strings.Repeat("─", 20)

func strOr(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}

func moreSuffix(total, shown int, noun string) string {
	if total <= shown {
		return ""
	}
	return fmt.Sprintf("\n... and %d more %s", total-shown, noun)
}

func renderStudentList(students []models.StudentDetail) string {
	if len(students) == 0 {
		return "❌ No students found"
	}
	var b strings.Builder
	b.WriteString("🎓 ALL STUDENTS:\n\n")
	shown := students
	if len(shown) > maxStudentsShown {
		shown = shown[:maxStudentsShown]
	}
	for _, s := range shown {
		fmt.Fprintf(&b, "#%d %s %s", s.ID, s.FirstName, s.LastName)
		if s.GroupName != nil {
			fmt.Fprintf(&b, " - %s", *s.GroupName)
		}
		fmt.Fprintf(&b, "\n📧 %s\n%s\n", strOr(s.Email, "no email"), rowSeparator)
	}
	b.WriteString(moreSuffix(len(students), len(shown), "students"))
	return b.String()
}

func renderTeacherList(teachers []models.TeacherDetail) string {
	if len(teachers) == 0 {
		return "❌ No teachers found"
	}
	var b strings.Builder
	b.WriteString("👨‍🏫 ALL TEACHERS:\n\n")
	for _, t := range teachers {
		fmt.Fprintf(&b, "#%d %s %s", t.ID, t.FirstName, t.LastName)
		if t.DepartmentName != nil {
			fmt.Fprintf(&b, " - %s", *t.DepartmentName)
		}
		fmt.Fprintf(&b, "\n📧 %s\n%s\n", strOr(t.Email, "no email"), rowSeparator)
	}
	return b.String()
}

func renderGradeList(grades []models.GradeDetail) string {
	if len(grades) == 0 {
		return "❌ No grades found"
	}
	var b strings.Builder
	b.WriteString("📚 ALL GRADES:\n\n")
	shown := grades
	if len(shown) > maxGradesShown {
		shown = shown[:maxGradesShown]
	}
	for _, g := range shown {
		fmt.Fprintf(&b, "#%d %s %s\n", g.ID, g.StudentFirstName, g.StudentLastName)
		fmt.Fprintf(&b, "📖 %s: %d\n", g.SubjectName, g.Grade.Grade)
		fmt.Fprintf(&b, "👨‍🏫 %s %s\n", g.TeacherFirstName, g.TeacherLastName)
		if g.ExamDate != nil {
			fmt.Fprintf(&b, "📅 %s\n", g.ExamDate.Format("2006-01-02"))
		}
		b.WriteString(rowSeparator + "\n")
	}
	b.WriteString(moreSuffix(len(grades), len(shown), "grades"))
	return b.String()
}

func renderSearchResults(students []models.StudentDetail) string {
	if len(students) == 0 {
		return "❌ No students found"
	}
	var b strings.Builder
	b.WriteString("🔍 FOUND STUDENTS:\n\n")
	shown := students
	if len(shown) > maxRefShown {
		shown = shown[:maxRefShown]
	}
	for _, s := range shown {
		fmt.Fprintf(&b, "#%d %s %s", s.ID, s.FirstName, s.LastName)
		if s.GroupName != nil {
			fmt.Fprintf(&b, " - %s", *s.GroupName)
		}
		fmt.Fprintf(&b, "\n📧 %s\n%s\n", strOr(s.Email, "no email"), rowSeparator)
	}
	b.WriteString(moreSuffix(len(students), len(shown), "students"))
	return b.String()
}

func renderStats(stats *models.Stats) string {
	if stats == nil {
		return "❌ Failed to collect statistics"
	}
	var b strings.Builder
	b.WriteString("📊 COLLEGE STATISTICS\n\n")
	fmt.Fprintf(&b, "🎓 Students: %d\n", stats.Students)
	fmt.Fprintf(&b, "👨‍🏫 Teachers: %d\n", stats.Teachers)
	fmt.Fprintf(&b, "🏫 Groups: %d\n", stats.Groups)
	fmt.Fprintf(&b, "📚 Departments: %d\n", stats.Departments)
	fmt.Fprintf(&b, "📝 Grades: %d\n", stats.Grades)
	fmt.Fprintf(&b, "📈 Total records: %d", stats.TotalRecords())
	return b.String()
}

// Reference lists shown inside prompts, capped at maxRefShown rows.

func renderGroupRefs(groups []models.Group) string {
	lines := make([]string, 0, len(groups))
	for i, g := range groups {
		if i == maxRefShown {
			break
		}
		lines = append(lines, fmt.Sprintf("#%d - %s", g.ID, g.Name))
	}
	return strings.Join(lines, "\n")
}

func renderDepartmentRefs(departments []models.Department) string {
	lines := make([]string, 0, len(departments))
	for i, d := range departments {
		if i == maxRefShown {
			break
		}
		lines = append(lines, fmt.Sprintf("#%d - %s", d.ID, d.Name))
	}
	return strings.Join(lines, "\n")
}

func renderSubjectRefs(subjects []models.Subject) string {
	lines := make([]string, 0, len(subjects))
	for i, s := range subjects {
		if i == maxRefShown {
			break
		}
		lines = append(lines, fmt.Sprintf("#%d - %s", s.ID, s.Name))
	}
	return strings.Join(lines, "\n")
}

func renderStudentRefs(students []models.StudentDetail) string {
	lines := make([]string, 0, len(students))
	for i, s := range students {
		if i == maxRefShown {
			break
		}
		lines = append(lines, fmt.Sprintf("#%d - %s %s", s.ID, s.FirstName, s.LastName))
	}
	return strings.Join(lines, "\n")
}

func renderTeacherRefs(teachers []models.TeacherDetail) string {
	lines := make([]string, 0, len(teachers))
	for i, t := range teachers {
		if i == maxRefShown {
			break
		}
		lines = append(lines, fmt.Sprintf("#%d - %s %s", t.ID, t.FirstName, t.LastName))
	}
	return strings.Join(lines, "\n")
}

func renderGradeRefs(grades []models.GradeDetail) string {
	lines := make([]string, 0, len(grades))
	for i, g := range grades {
		if i == maxRefShown {
			break
		}
		lines = append(lines, fmt.Sprintf("#%d - %s %s: %d in %s", g.ID, g.StudentFirstName, g.StudentLastName, g.Grade.Grade, g.SubjectName))
	}
	return strings.Join(lines, "\n")
}
