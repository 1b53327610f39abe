package models

import "time"

// Grade is an exam grade on the 1..5 scale. The range is additionally
// enforced by a check constraint at the store.
type Grade struct {
	ID        int        `db:"id"`
	StudentID int        `db:"student_id"`
	SubjectID int        `db:"subject_id"`
	Grade     int        `db:"grade"`
	ExamDate  *time.Time `db:"exam_date"`
	TeacherID int        `db:"teacher_id"`
}

// GradeDetail carries the grade together with the display names of the
// student, subject and teacher it references.
type GradeDetail struct {
	Grade
	StudentFirstName string `db:"student_first_name"`
	StudentLastName  string `db:"student_last_name"`
	SubjectName      string `db:"subject_name"`
	TeacherFirstName string `db:"teacher_first_name"`
	TeacherLastName  string `db:"teacher_last_name"`
}
