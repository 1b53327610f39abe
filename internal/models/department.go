package models

// Department groups teachers, study groups and subjects.
type Department struct {
	ID            int    `db:"id"`
	Name          string `db:"name"`
	HeadTeacherID *int   `db:"head_teacher_id"`
}
