package bot

import (
	"context"
	"fmt"
)

// Views re-query the store on every selection; nothing is cached.

func (d *Dispatcher) viewStudents(ctx context.Context) string {
	return renderStudentList(d.students.List(ctx))
}

func (d *Dispatcher) viewTeachers(ctx context.Context) string {
	return renderTeacherList(d.teachers.List(ctx))
}

func (d *Dispatcher) viewGrades(ctx context.Context) string {
	return renderGradeList(d.grades.List(ctx))
}

func (d *Dispatcher) viewStats(ctx context.Context) string {
	return renderStats(d.stats.Collect(ctx))
}

// Prompt builders pre-seed the form with reference rows so the user can pick
// valid ids without leaving the chat.

func (d *Dispatcher) promptAddStudent(ctx context.Context) string {
	return fmt.Sprintf(
		"📝 ADD STUDENT\n\nAvailable groups:\n%s\n\nEnter data as:\n<first name> <last name> <email> <phone> <group id>\n\nExample:\nIvan Ivanov ivan@mail.com +79991234567 1",
		renderGroupRefs(d.refs.Groups(ctx)),
	)
}

func (d *Dispatcher) promptAddTeacher(ctx context.Context) string {
	return fmt.Sprintf(
		"👨‍🏫 ADD TEACHER\n\nAvailable departments:\n%s\n\nEnter data as:\n<first name> <last name> <email> <phone> <department id>\n\nExample:\nPetr Petrov petr@college.edu +79998887766 1",
		renderDepartmentRefs(d.refs.Departments(ctx)),
	)
}

func (d *Dispatcher) promptAddGrade(ctx context.Context) string {
	return fmt.Sprintf(
		"📚 ADD GRADE\n\nStudents:\n%s\n\nSubjects:\n%s\n\nTeachers:\n%s\n\nEnter data as:\n<student id> <subject id> <grade> <teacher id>\n\nExample:\n1 1 5 1\n\nGrade: from 1 to 5",
		renderStudentRefs(d.students.List(ctx)),
		renderSubjectRefs(d.refs.Subjects(ctx)),
		renderTeacherRefs(d.teachers.List(ctx)),
	)
}

func (d *Dispatcher) promptEditStudent(ctx context.Context) string {
	return fmt.Sprintf(
		"✏️ EDIT STUDENT\n\nStudents:\n%s\n\nGroups:\n%s\n\nEnter data as:\n<student id> <first name> <last name> <email> <phone> <group id>\n\nExample:\n1 Ivan Ivanov ivan@mail.com +79991234567 1",
		renderStudentRefs(d.students.List(ctx)),
		renderGroupRefs(d.refs.Groups(ctx)),
	)
}

func (d *Dispatcher) promptEditTeacher(ctx context.Context) string {
	return fmt.Sprintf(
		"✏️ EDIT TEACHER\n\nTeachers:\n%s\n\nDepartments:\n%s\n\nEnter data as:\n<teacher id> <first name> <last name> <email> <phone> <department id>\n\nExample:\n1 Petr Petrov petr@college.edu +79998887766 1",
		renderTeacherRefs(d.teachers.List(ctx)),
		renderDepartmentRefs(d.refs.Departments(ctx)),
	)
}

func (d *Dispatcher) promptEditGrade(ctx context.Context) string {
	return fmt.Sprintf(
		"✏️ EDIT GRADE\n\nGrades:\n%s\n\nEnter data as:\n<grade id> <new grade>\n\nExample:\n1 5\n\nGrade: from 1 to 5",
		renderGradeRefs(d.grades.List(ctx)),
	)
}

func (d *Dispatcher) promptDeleteStudent(ctx context.Context) string {
	return fmt.Sprintf(
		"🗑 DELETE STUDENT\n\nStudents:\n%s\n\nEnter the id of the student to delete:\n\nExample:\n1",
		renderStudentRefs(d.students.List(ctx)),
	)
}

func (d *Dispatcher) promptDeleteTeacher(ctx context.Context) string {
	return fmt.Sprintf(
		"🗑 DELETE TEACHER\n\nTeachers:\n%s\n\nEnter the id of the teacher to delete:\n\nExample:\n1",
		renderTeacherRefs(d.teachers.List(ctx)),
	)
}

func (d *Dispatcher) promptDeleteGrade(ctx context.Context) string {
	return fmt.Sprintf(
		"🗑 DELETE GRADE\n\nGrades:\n%s\n\nEnter the id of the grade to delete:\n\nExample:\n1",
		renderGradeRefs(d.grades.List(ctx)),
	)
}

func (d *Dispatcher) promptFindStudent(context.Context) string {
	return "🔍 FIND STUDENT\n\nEnter a first or last name (or part of it):\n\nExample:\nIvanov"
}
