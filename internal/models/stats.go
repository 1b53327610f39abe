package models

// Stats is a snapshot of record counts across the college schema.
type Stats struct {
	Students    int
	Teachers    int
	Groups      int
	Departments int
	Grades      int
}

// TotalRecords sums the mutable record kinds, matching the stats view.
func (s Stats) TotalRecords() int {
	return s.Students + s.Teachers + s.Grades
}
