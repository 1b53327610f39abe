package bot

import (
	"errors"
	"strconv"

	"github.com/dkenzhe/college-bot/internal/service"
)

// errBadFormat covers both arity failures and numeric coercion failures on a
// form submission. The attempt is consumed either way.
var errBadFormat = errors.New("bad input format")

// Minimum token counts per form. Extra trailing tokens are ignored.
const (
	minAddStudentTokens  = 5
	minAddTeacherTokens  = 5
	minAddGradeTokens    = 4
	minEditStudentTokens = 6
	minEditTeacherTokens = 6
	minEditGradeTokens   = 2
	minDeleteTokens      = 1
	minFindTokens        = 1
)

// gradeInput is the parsed add-grade form. The range tag backs the
// dispatcher's distinct out-of-range reply.
type gradeInput struct {
	StudentID int
	SubjectID int
	Grade     int `validate:"min=1,max=5"`
	TeacherID int
}

// gradeEdit is the parsed edit-grade form.
type gradeEdit struct {
	ID    int
	Grade int `validate:"min=1,max=5"`
}

func atoi(token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, errBadFormat
	}
	return n, nil
}

func parseStudentInput(tokens []string) (service.StudentInput, error) {
	if len(tokens) < minAddStudentTokens {
		return service.StudentInput{}, errBadFormat
	}
	groupID, err := atoi(tokens[4])
	if err != nil {
		return service.StudentInput{}, err
	}
	return service.StudentInput{
		FirstName: tokens[0],
		LastName:  tokens[1],
		Email:     tokens[2],
		Phone:     tokens[3],
		GroupID:   groupID,
	}, nil
}

func parseTeacherInput(tokens []string) (service.TeacherInput, error) {
	if len(tokens) < minAddTeacherTokens {
		return service.TeacherInput{}, errBadFormat
	}
	departmentID, err := atoi(tokens[4])
	if err != nil {
		return service.TeacherInput{}, err
	}
	return service.TeacherInput{
		FirstName:    tokens[0],
		LastName:     tokens[1],
		Email:        tokens[2],
		Phone:        tokens[3],
		DepartmentID: departmentID,
	}, nil
}

func parseGradeInput(tokens []string) (gradeInput, error) {
	if len(tokens) < minAddGradeTokens {
		return gradeInput{}, errBadFormat
	}
	var in gradeInput
	var err error
	if in.StudentID, err = atoi(tokens[0]); err != nil {
		return gradeInput{}, err
	}
	if in.SubjectID, err = atoi(tokens[1]); err != nil {
		return gradeInput{}, err
	}
	if in.Grade, err = atoi(tokens[2]); err != nil {
		return gradeInput{}, err
	}
	if in.TeacherID, err = atoi(tokens[3]); err != nil {
		return gradeInput{}, err
	}
	return in, nil
}

func parseStudentEdit(tokens []string) (int, service.StudentInput, error) {
	if len(tokens) < minEditStudentTokens {
		return 0, service.StudentInput{}, errBadFormat
	}
	id, err := atoi(tokens[0])
	if err != nil {
		return 0, service.StudentInput{}, err
	}
	in, err := parseStudentInput(tokens[1:])
	if err != nil {
		return 0, service.StudentInput{}, err
	}
	return id, in, nil
}

func parseTeacherEdit(tokens []string) (int, service.TeacherInput, error) {
	if len(tokens) < minEditTeacherTokens {
		return 0, service.TeacherInput{}, errBadFormat
	}
	id, err := atoi(tokens[0])
	if err != nil {
		return 0, service.TeacherInput{}, err
	}
	in, err := parseTeacherInput(tokens[1:])
	if err != nil {
		return 0, service.TeacherInput{}, err
	}
	return id, in, nil
}

func parseGradeEdit(tokens []string) (gradeEdit, error) {
	if len(tokens) < minEditGradeTokens {
		return gradeEdit{}, errBadFormat
	}
	var in gradeEdit
	var err error
	if in.ID, err = atoi(tokens[0]); err != nil {
		return gradeEdit{}, err
	}
	if in.Grade, err = atoi(tokens[1]); err != nil {
		return gradeEdit{}, err
	}
	return in, nil
}

func parseID(tokens []string) (int, error) {
	if len(tokens) < minDeleteTokens {
		return 0, errBadFormat
	}
	return atoi(tokens[0])
}
