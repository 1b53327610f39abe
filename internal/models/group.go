package models

import "time"

// Group is a study group curated by a teacher.
type Group struct {
	ID           int        `db:"id"`
	Name         string     `db:"name"`
	DepartmentID *int       `db:"department_id"`
	StartDate    *time.Time `db:"start_date"`
	EndDate      *time.Time `db:"end_date"`
	CuratorID    *int       `db:"curator_id"`
}
