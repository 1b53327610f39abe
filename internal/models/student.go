package models

import "time"

// Student is a learner enrolled in a group.
type Student struct {
	ID             int        `db:"id"`
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	Email          *string    `db:"email"`
	Phone          *string    `db:"phone"`
	GroupID        *int       `db:"group_id"`
	EnrollmentDate *time.Time `db:"enrollment_date"`
}

// StudentDetail carries the student together with the group display name.
// The name is resolved with an outer join so students without a group still
// show up.
type StudentDetail struct {
	Student
	GroupName *string `db:"group_name"`
}
