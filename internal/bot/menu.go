package bot

// Menu button labels. The transport renders them as a reply keyboard and the
// dispatcher treats them as exact-match triggers on message text.
const (
	LabelAllStudents   = "🎓 All students"
	LabelAllTeachers   = "👨‍🏫 All teachers"
	LabelAllGrades     = "📚 All grades"
	LabelAddStudent    = "➕ Add student"
	LabelAddTeacher    = "➕ Add teacher"
	LabelAddGrade      = "📝 Add grade"
	LabelEditStudent   = "✏️ Edit student"
	LabelEditTeacher   = "✏️ Edit teacher"
	LabelEditGrade     = "✏️ Edit grade"
	LabelDeleteStudent = "🗑 Delete student"
	LabelDeleteTeacher = "🗑 Delete teacher"
	LabelDeleteGrade   = "🗑 Delete grade"
	LabelFindStudent   = "🔍 Find student"
	LabelStats         = "📊 Statistics"
)

// MenuLabels returns the button labels in keyboard order.
func MenuLabels() []string {
	return []string{
		LabelAllStudents, LabelAllTeachers, LabelAllGrades,
		LabelAddStudent, LabelAddTeacher, LabelAddGrade,
		LabelEditStudent, LabelEditTeacher, LabelEditGrade,
		LabelDeleteStudent, LabelDeleteTeacher, LabelDeleteGrade,
		LabelFindStudent, LabelStats,
	}
}
