package models

// Subject is a course taught within a department.
type Subject struct {
	ID           int    `db:"id"`
	Name         string `db:"name"`
	DepartmentID *int   `db:"department_id"`
}
