package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkenzhe/college-bot/internal/models"
	"github.com/dkenzhe/college-bot/internal/service"
	"github.com/dkenzhe/college-bot/internal/session"
)

type spyStudents struct {
	students    []models.StudentDetail
	known       map[int]bool
	createOK    bool
	updateOK    bool
	deleteOK    bool
	createCalls []service.StudentInput
	updateCalls []int
	deleteCalls []int
	searchCalls []string
}

func (s *spyStudents) List(ctx context.Context) []models.StudentDetail { return s.students }

func (s *spyStudents) Get(ctx context.Context, id int) *models.StudentDetail {
	if !s.known[id] {
		return nil
	}
	return &models.StudentDetail{Student: models.Student{ID: id}}
}

func (s *spyStudents) Search(ctx context.Context, name string) []models.StudentDetail {
	s.searchCalls = append(s.searchCalls, name)
	return s.students
}

func (s *spyStudents) Create(ctx context.Context, in service.StudentInput) bool {
	s.createCalls = append(s.createCalls, in)
	return s.createOK
}

func (s *spyStudents) Update(ctx context.Context, id int, in service.StudentInput) bool {
	s.updateCalls = append(s.updateCalls, id)
	return s.updateOK
}

func (s *spyStudents) Delete(ctx context.Context, id int) bool {
	s.deleteCalls = append(s.deleteCalls, id)
	return s.deleteOK
}

type spyTeachers struct {
	teachers    []models.TeacherDetail
	known       map[int]bool
	createOK    bool
	updateOK    bool
	deleteOK    bool
	createCalls []service.TeacherInput
	deleteCalls []int
}

func (s *spyTeachers) List(ctx context.Context) []models.TeacherDetail { return s.teachers }

func (s *spyTeachers) Get(ctx context.Context, id int) *models.TeacherDetail {
	if !s.known[id] {
		return nil
	}
	return &models.TeacherDetail{Teacher: models.Teacher{ID: id}}
}

func (s *spyTeachers) Create(ctx context.Context, in service.TeacherInput) bool {
	s.createCalls = append(s.createCalls, in)
	return s.createOK
}

func (s *spyTeachers) Update(ctx context.Context, id int, in service.TeacherInput) bool {
	return s.updateOK
}

func (s *spyTeachers) Delete(ctx context.Context, id int) bool {
	s.deleteCalls = append(s.deleteCalls, id)
	return s.deleteOK
}

type spyGrades struct {
	grades      []models.GradeDetail
	createOK    bool
	updateOK    bool
	deleteOK    bool
	createCalls []int // grade values
	updateCalls []int
	deleteCalls []int
}

func (s *spyGrades) List(ctx context.Context) []models.GradeDetail { return s.grades }

func (s *spyGrades) Create(ctx context.Context, studentID, subjectID, grade, teacherID int) bool {
	s.createCalls = append(s.createCalls, grade)
	return s.createOK
}

func (s *spyGrades) UpdateValue(ctx context.Context, id, grade int) bool {
	s.updateCalls = append(s.updateCalls, grade)
	return s.updateOK
}

func (s *spyGrades) Delete(ctx context.Context, id int) bool {
	s.deleteCalls = append(s.deleteCalls, id)
	return s.deleteOK
}

type spyRefs struct{}

func (spyRefs) Groups(ctx context.Context) []models.Group {
	return []models.Group{{ID: 1, Name: "SE-21"}}
}

func (spyRefs) Departments(ctx context.Context) []models.Department {
	return []models.Department{{ID: 1, Name: "Software Engineering"}}
}

func (spyRefs) Subjects(ctx context.Context) []models.Subject {
	return []models.Subject{{ID: 1, Name: "Databases"}}
}

type spyStats struct{ stats *models.Stats }

func (s spyStats) Collect(ctx context.Context) *models.Stats { return s.stats }

type fixture struct {
	dispatcher *Dispatcher
	students   *spyStudents
	teachers   *spyTeachers
	grades     *spyGrades
	sessions   *session.MemoryStore
}

func newFixture() *fixture {
	students := &spyStudents{createOK: true, updateOK: true, deleteOK: true, known: map[int]bool{1: true}}
	teachers := &spyTeachers{createOK: true, updateOK: true, deleteOK: true, known: map[int]bool{1: true}}
	grades := &spyGrades{createOK: true, updateOK: true, deleteOK: true}
	sessions := session.NewMemoryStore()
	d := NewDispatcher(Deps{
		Students: students,
		Teachers: teachers,
		Grades:   grades,
		Refs:     spyRefs{},
		Stats:    spyStats{stats: &models.Stats{Students: 3}},
		Sessions: sessions,
	})
	return &fixture{dispatcher: d, students: students, teachers: teachers, grades: grades, sessions: sessions}
}

const chatID int64 = 100

func TestMenuSelectionArmsForm(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	reply := f.dispatcher.HandleMessage(ctx, chatID, LabelAddStudent)

	assert.Contains(t, reply.Text, "ADD STUDENT")
	assert.Contains(t, reply.Text, "SE-21")
	assert.Equal(t, session.FormAddStudent, f.sessions.Get(ctx, chatID))
}

func TestAddStudentHappyPath(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.dispatcher.HandleMessage(ctx, chatID, LabelAddStudent)
	reply := f.dispatcher.HandleMessage(ctx, chatID, "Ivan Ivanov ivan@mail.com +79991234567 1")

	assert.Contains(t, reply.Text, "✅")
	require.Len(t, f.students.createCalls, 1)
	assert.Equal(t, service.StudentInput{
		FirstName: "Ivan", LastName: "Ivanov", Email: "ivan@mail.com", Phone: "+79991234567", GroupID: 1,
	}, f.students.createCalls[0])
	assert.Equal(t, session.FormNone, f.sessions.Get(ctx, chatID))
}

func TestFormatErrorResetsStateWithoutStoreCall(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.dispatcher.HandleMessage(ctx, chatID, LabelAddStudent)
	reply := f.dispatcher.HandleMessage(ctx, chatID, "Ivan Ivanov")

	assert.Contains(t, reply.Text, "Invalid input format")
	assert.Empty(t, f.students.createCalls)
	assert.Equal(t, session.FormNone, f.sessions.Get(ctx, chatID))
}

func TestAddGradeBoundaries(t *testing.T) {
	tests := []struct {
		grade    string
		accepted bool
	}{
		{"0", false},
		{"1", true},
		{"5", true},
		{"6", false},
	}

	for _, tt := range tests {
		t.Run("grade "+tt.grade, func(t *testing.T) {
			f := newFixture()
			ctx := context.Background()

			f.dispatcher.HandleMessage(ctx, chatID, LabelAddGrade)
			reply := f.dispatcher.HandleMessage(ctx, chatID, "1 1 "+tt.grade+" 1")

			if tt.accepted {
				assert.Contains(t, reply.Text, "✅")
				assert.Len(t, f.grades.createCalls, 1)
			} else {
				assert.Contains(t, reply.Text, "between 1 and 5")
				assert.Empty(t, f.grades.createCalls)
			}
			assert.Equal(t, session.FormNone, f.sessions.Get(ctx, chatID))
		})
	}
}

func TestAddGradeUnknownStudent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.dispatcher.HandleMessage(ctx, chatID, LabelAddGrade)
	reply := f.dispatcher.HandleMessage(ctx, chatID, "99 1 5 1")

	assert.Contains(t, reply.Text, "Student with this ID not found")
	assert.Empty(t, f.grades.createCalls)
}

func TestAddGradeUnknownTeacher(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.dispatcher.HandleMessage(ctx, chatID, LabelAddGrade)
	reply := f.dispatcher.HandleMessage(ctx, chatID, "1 1 5 99")

	assert.Contains(t, reply.Text, "Teacher with this ID not found")
	assert.Empty(t, f.grades.createCalls)
}

func TestEditGradeRangeCheck(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.dispatcher.HandleMessage(ctx, chatID, LabelEditGrade)
	reply := f.dispatcher.HandleMessage(ctx, chatID, "7 6")

	assert.Contains(t, reply.Text, "between 1 and 5")
	assert.Empty(t, f.grades.updateCalls)
}

func TestDeleteStudentExtraTokensIgnored(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.dispatcher.HandleMessage(ctx, chatID, LabelDeleteStudent)
	reply := f.dispatcher.HandleMessage(ctx, chatID, "5 please and thanks")

	assert.Contains(t, reply.Text, "✅")
	assert.Equal(t, []int{5}, f.students.deleteCalls)
}

func TestStoreFailureReply(t *testing.T) {
	f := newFixture()
	f.students.createOK = false
	ctx := context.Background()

	f.dispatcher.HandleMessage(ctx, chatID, LabelAddStudent)
	reply := f.dispatcher.HandleMessage(ctx, chatID, "Ivan Ivanov ivan@mail.com +79991234567 1")

	assert.Contains(t, reply.Text, "❌ Failed to add student")
	assert.Equal(t, session.FormNone, f.sessions.Get(ctx, chatID))
}

func TestSequenceNoLeakageBetweenTurns(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.dispatcher.HandleMessage(ctx, chatID, LabelAddStudent)
	assert.Equal(t, session.FormAddStudent, f.sessions.Get(ctx, chatID))

	reply := f.dispatcher.HandleMessage(ctx, chatID, "Ivan Ivanov ivan@mail.com +79991234567 1")
	assert.Contains(t, reply.Text, "✅")
	assert.Equal(t, session.FormNone, f.sessions.Get(ctx, chatID))

	f.dispatcher.HandleMessage(ctx, chatID, LabelAddStudent)
	reply = f.dispatcher.HandleMessage(ctx, chatID, "malformed")
	assert.Contains(t, reply.Text, "Invalid input format")
	assert.Equal(t, session.FormNone, f.sessions.Get(ctx, chatID))

	// Only the first, well-formed turn reached the store.
	assert.Len(t, f.students.createCalls, 1)
}

func TestUnrecognizedInputWhileIdle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	reply := f.dispatcher.HandleMessage(ctx, chatID, "what can you do?")

	assert.Contains(t, reply.Text, "Use the menu")
	assert.True(t, reply.ShowMenu)
	assert.Equal(t, session.FormNone, f.sessions.Get(ctx, chatID))
}

func TestStartResetsPendingForm(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.dispatcher.HandleMessage(ctx, chatID, LabelAddStudent)
	reply := f.dispatcher.HandleMessage(ctx, chatID, "/start")

	assert.Contains(t, reply.Text, "Welcome")
	assert.True(t, reply.ShowMenu)
	assert.Equal(t, session.FormNone, f.sessions.Get(ctx, chatID))
}

func TestViewLeavesPendingFormUntouched(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.dispatcher.HandleMessage(ctx, chatID, LabelAddStudent)
	f.dispatcher.HandleMessage(ctx, chatID, LabelAllStudents)

	// Menu labels match before pending-form dispatch, so a view does not
	// consume the armed form.
	assert.Equal(t, session.FormAddStudent, f.sessions.Get(ctx, chatID))
}

func TestStatsView(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	reply := f.dispatcher.HandleMessage(ctx, chatID, LabelStats)

	assert.Contains(t, reply.Text, "COLLEGE STATISTICS")
	assert.Contains(t, reply.Text, "🎓 Students: 3")
}

func TestFindStudentJoinsTokens(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.dispatcher.HandleMessage(ctx, chatID, LabelFindStudent)
	f.dispatcher.HandleMessage(ctx, chatID, "Ivan Ivanov")

	require.Len(t, f.students.searchCalls, 1)
	assert.Equal(t, "Ivan Ivanov", f.students.searchCalls[0])
	assert.Equal(t, session.FormNone, f.sessions.Get(ctx, chatID))
}

func TestChatsAreIsolated(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.dispatcher.HandleMessage(ctx, chatID, LabelAddStudent)
	other := f.dispatcher.HandleMessage(ctx, chatID+1, "free text from another chat")

	assert.Contains(t, other.Text, "Use the menu")
	assert.Equal(t, session.FormAddStudent, f.sessions.Get(ctx, chatID))
}
