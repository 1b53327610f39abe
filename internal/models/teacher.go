package models

import "time"

// Teacher is a member of the teaching staff.
type Teacher struct {
	ID           int        `db:"id"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Email        *string    `db:"email"`
	Phone        *string    `db:"phone"`
	DepartmentID *int       `db:"department_id"`
	HireDate     *time.Time `db:"hire_date"`
}

// TeacherDetail carries the teacher together with the department display name.
type TeacherDetail struct {
	Teacher
	DepartmentName *string `db:"department_name"`
}
