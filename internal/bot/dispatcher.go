package bot

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/dkenzhe/college-bot/internal/models"
	"github.com/dkenzhe/college-bot/internal/service"
	"github.com/dkenzhe/college-bot/internal/session"
)

type studentService interface {
	List(ctx context.Context) []models.StudentDetail
	Get(ctx context.Context, id int) *models.StudentDetail
	Search(ctx context.Context, name string) []models.StudentDetail
	Create(ctx context.Context, in service.StudentInput) bool
	Update(ctx context.Context, id int, in service.StudentInput) bool
	Delete(ctx context.Context, id int) bool
}

type teacherService interface {
	List(ctx context.Context) []models.TeacherDetail
	Get(ctx context.Context, id int) *models.TeacherDetail
	Create(ctx context.Context, in service.TeacherInput) bool
	Update(ctx context.Context, id int, in service.TeacherInput) bool
	Delete(ctx context.Context, id int) bool
}

type gradeService interface {
	List(ctx context.Context) []models.GradeDetail
	Create(ctx context.Context, studentID, subjectID, grade, teacherID int) bool
	UpdateValue(ctx context.Context, id, grade int) bool
	Delete(ctx context.Context, id int) bool
}

type referenceService interface {
	Groups(ctx context.Context) []models.Group
	Departments(ctx context.Context) []models.Department
	Subjects(ctx context.Context) []models.Subject
}

type statsService interface {
	Collect(ctx context.Context) *models.Stats
}

type dispatchObserver interface {
	ObserveDispatch(outcome string, duration time.Duration)
}

// Reply is what the transport sends back. ShowMenu asks it to attach the
// reply keyboard.
type Reply struct {
	Text     string
	ShowMenu bool
}

// menuAction pairs a reply builder with the form the selection arms.
// FormNone marks plain views that leave session state untouched.
type menuAction struct {
	outcome string
	next    session.Form
	reply   func(ctx context.Context) string
}

// Deps wires the dispatcher's collaborators. Metrics may be nil.
type Deps struct {
	Students studentService
	Teachers teacherService
	Grades   gradeService
	Refs     referenceService
	Stats    statsService
	Sessions session.Store
	Metrics  dispatchObserver
	Logger   *zap.Logger
}

// Dispatcher routes inbound messages: menu labels arm forms or render views,
// free text is parsed against the chat's pending form, everything else falls
// through to the unrecognized reply.
type Dispatcher struct {
	students studentService
	teachers teacherService
	grades   gradeService
	refs     referenceService
	stats    statsService
	sessions session.Store
	metrics  dispatchObserver
	logger   *zap.Logger
	validate *validator.Validate
	menu     map[string]menuAction
}

// NewDispatcher constructs the dispatcher and its menu registration table.
func NewDispatcher(deps Deps) *Dispatcher {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	d := &Dispatcher{
		students: deps.Students,
		teachers: deps.Teachers,
		grades:   deps.Grades,
		refs:     deps.Refs,
		stats:    deps.Stats,
		sessions: deps.Sessions,
		metrics:  deps.Metrics,
		logger:   deps.Logger,
		validate: validator.New(),
	}
	d.menu = map[string]menuAction{
		LabelAllStudents:   {outcome: service.OutcomeView, next: session.FormNone, reply: d.viewStudents},
		LabelAllTeachers:   {outcome: service.OutcomeView, next: session.FormNone, reply: d.viewTeachers},
		LabelAllGrades:     {outcome: service.OutcomeView, next: session.FormNone, reply: d.viewGrades},
		LabelStats:         {outcome: service.OutcomeView, next: session.FormNone, reply: d.viewStats},
		LabelAddStudent:    {outcome: service.OutcomePrompt, next: session.FormAddStudent, reply: d.promptAddStudent},
		LabelAddTeacher:    {outcome: service.OutcomePrompt, next: session.FormAddTeacher, reply: d.promptAddTeacher},
		LabelAddGrade:      {outcome: service.OutcomePrompt, next: session.FormAddGrade, reply: d.promptAddGrade},
		LabelEditStudent:   {outcome: service.OutcomePrompt, next: session.FormEditStudent, reply: d.promptEditStudent},
		LabelEditTeacher:   {outcome: service.OutcomePrompt, next: session.FormEditTeacher, reply: d.promptEditTeacher},
		LabelEditGrade:     {outcome: service.OutcomePrompt, next: session.FormEditGrade, reply: d.promptEditGrade},
		LabelDeleteStudent: {outcome: service.OutcomePrompt, next: session.FormDeleteStudent, reply: d.promptDeleteStudent},
		LabelDeleteTeacher: {outcome: service.OutcomePrompt, next: session.FormDeleteTeacher, reply: d.promptDeleteTeacher},
		LabelDeleteGrade:   {outcome: service.OutcomePrompt, next: session.FormDeleteGrade, reply: d.promptDeleteGrade},
		LabelFindStudent:   {outcome: service.OutcomePrompt, next: session.FormFindStudent, reply: d.promptFindStudent},
	}
	return d
}

// HandleMessage processes one inbound message and returns the reply.
func (d *Dispatcher) HandleMessage(ctx context.Context, chatID int64, text string) Reply {
	start := time.Now()
	outcome, reply := d.route(ctx, chatID, strings.TrimSpace(text))
	if d.metrics != nil {
		d.metrics.ObserveDispatch(outcome, time.Since(start))
	}
	d.logger.Debug("message handled",
		zap.Int64("chat_id", chatID),
		zap.String("outcome", outcome),
	)
	return reply
}

func (d *Dispatcher) route(ctx context.Context, chatID int64, text string) (string, Reply) {
	if text == "/start" || text == "/help" {
		d.sessions.Clear(ctx, chatID)
		return service.OutcomePrompt, Reply{
			Text:     "🏫 Welcome to the college records database!\nPick an action from the menu:",
			ShowMenu: true,
		}
	}

	// Menu labels win over pending forms, matching the transport's
	// handler precedence.
	if action, ok := d.menu[text]; ok {
		if action.next != session.FormNone {
			d.sessions.Set(ctx, chatID, action.next)
		}
		return action.outcome, Reply{Text: action.reply(ctx)}
	}

	if form := d.sessions.Get(ctx, chatID); form != session.FormNone {
		// One attempt per prompt: the token is consumed before the
		// input is even parsed.
		d.sessions.Clear(ctx, chatID)
		return d.dispatchForm(ctx, form, text)
	}

	return service.OutcomeUnrecognized, Reply{
		Text:     "🤔 Use the menu buttons to navigate",
		ShowMenu: true,
	}
}

func (d *Dispatcher) dispatchForm(ctx context.Context, form session.Form, text string) (string, Reply) {
	tokens := strings.Fields(text)

	switch form {
	case session.FormAddStudent:
		in, err := parseStudentInput(tokens)
		if err != nil {
			return formatError()
		}
		if !d.students.Create(ctx, in) {
			return service.OutcomeStoreError, Reply{Text: "❌ Failed to add student"}
		}
		return service.OutcomeOK, Reply{Text: "✅ Student added successfully!"}

	case session.FormAddTeacher:
		in, err := parseTeacherInput(tokens)
		if err != nil {
			return formatError()
		}
		if !d.teachers.Create(ctx, in) {
			return service.OutcomeStoreError, Reply{Text: "❌ Failed to add teacher"}
		}
		return service.OutcomeOK, Reply{Text: "✅ Teacher added successfully!"}

	case session.FormAddGrade:
		in, err := parseGradeInput(tokens)
		if err != nil {
			return formatError()
		}
		if d.students.Get(ctx, in.StudentID) == nil {
			return service.OutcomeNotFound, Reply{Text: "❌ Student with this ID not found"}
		}
		if d.teachers.Get(ctx, in.TeacherID) == nil {
			return service.OutcomeNotFound, Reply{Text: "❌ Teacher with this ID not found"}
		}
		if err := d.validate.Struct(in); err != nil {
			return service.OutcomeRangeError, Reply{Text: "❌ Grade must be between 1 and 5"}
		}
		if !d.grades.Create(ctx, in.StudentID, in.SubjectID, in.Grade, in.TeacherID) {
			return service.OutcomeStoreError, Reply{Text: "❌ Failed to add grade"}
		}
		return service.OutcomeOK, Reply{Text: "✅ Grade added successfully!"}

	case session.FormEditStudent:
		id, in, err := parseStudentEdit(tokens)
		if err != nil {
			return formatError()
		}
		if !d.students.Update(ctx, id, in) {
			return service.OutcomeStoreError, Reply{Text: "❌ Failed to update student"}
		}
		return service.OutcomeOK, Reply{Text: "✅ Student updated successfully!"}

	case session.FormEditTeacher:
		id, in, err := parseTeacherEdit(tokens)
		if err != nil {
			return formatError()
		}
		if !d.teachers.Update(ctx, id, in) {
			return service.OutcomeStoreError, Reply{Text: "❌ Failed to update teacher"}
		}
		return service.OutcomeOK, Reply{Text: "✅ Teacher updated successfully!"}

	case session.FormEditGrade:
		in, err := parseGradeEdit(tokens)
		if err != nil {
			return formatError()
		}
		if err := d.validate.Struct(in); err != nil {
			return service.OutcomeRangeError, Reply{Text: "❌ Grade must be between 1 and 5"}
		}
		if !d.grades.UpdateValue(ctx, in.ID, in.Grade) {
			return service.OutcomeStoreError, Reply{Text: "❌ Failed to update grade"}
		}
		return service.OutcomeOK, Reply{Text: "✅ Grade updated successfully!"}

	case session.FormDeleteStudent:
		id, err := parseID(tokens)
		if err != nil {
			return formatError()
		}
		if !d.students.Delete(ctx, id) {
			return service.OutcomeStoreError, Reply{Text: "❌ Failed to delete student"}
		}
		return service.OutcomeOK, Reply{Text: "✅ Student deleted successfully!"}

	case session.FormDeleteTeacher:
		id, err := parseID(tokens)
		if err != nil {
			return formatError()
		}
		if !d.teachers.Delete(ctx, id) {
			return service.OutcomeStoreError, Reply{Text: "❌ Failed to delete teacher"}
		}
		return service.OutcomeOK, Reply{Text: "✅ Teacher deleted successfully!"}

	case session.FormDeleteGrade:
		id, err := parseID(tokens)
		if err != nil {
			return formatError()
		}
		if !d.grades.Delete(ctx, id) {
			return service.OutcomeStoreError, Reply{Text: "❌ Failed to delete grade"}
		}
		return service.OutcomeOK, Reply{Text: "✅ Grade deleted successfully!"}

	case session.FormFindStudent:
		if len(tokens) < minFindTokens {
			return formatError()
		}
		matches := d.students.Search(ctx, strings.Join(tokens, " "))
		return service.OutcomeOK, Reply{Text: renderSearchResults(matches)}
	}

	d.logger.Warn("unknown pending form", zap.Stringer("form", form))
	return service.OutcomeUnrecognized, Reply{Text: "🤔 Use the menu buttons to navigate", ShowMenu: true}
}

func formatError() (string, Reply) {
	return service.OutcomeFormatError, Reply{Text: "❌ Invalid input format. Check your input."}
}
