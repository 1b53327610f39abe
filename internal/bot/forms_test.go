package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkenzhe/college-bot/internal/service"
)

func TestParseStudentInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    service.StudentInput
		wantErr bool
	}{
		{
			name:  "well formed",
			input: "Ivan Ivanov ivan@mail.com +79991234567 1",
			want:  service.StudentInput{FirstName: "Ivan", LastName: "Ivanov", Email: "ivan@mail.com", Phone: "+79991234567", GroupID: 1},
		},
		{
			name:  "extra trailing tokens ignored",
			input: "Ivan Ivanov ivan@mail.com +79991234567 1 extra stuff",
			want:  service.StudentInput{FirstName: "Ivan", LastName: "Ivanov", Email: "ivan@mail.com", Phone: "+79991234567", GroupID: 1},
		},
		{
			name:    "too few tokens",
			input:   "Ivan Ivanov ivan@mail.com",
			wantErr: true,
		},
		{
			name:    "non numeric group id",
			input:   "Ivan Ivanov ivan@mail.com +79991234567 one",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStudentInput(strings.Fields(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, errBadFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGradeInput(t *testing.T) {
	in, err := parseGradeInput(strings.Fields("1 2 5 3"))
	require.NoError(t, err)
	assert.Equal(t, gradeInput{StudentID: 1, SubjectID: 2, Grade: 5, TeacherID: 3}, in)

	// The parser only coerces; range is checked after foreign keys resolve.
	in, err = parseGradeInput(strings.Fields("1 2 9 3"))
	require.NoError(t, err)
	assert.Equal(t, 9, in.Grade)

	_, err = parseGradeInput(strings.Fields("1 2 5"))
	assert.ErrorIs(t, err, errBadFormat)

	_, err = parseGradeInput(strings.Fields("1 two 5 3"))
	assert.ErrorIs(t, err, errBadFormat)
}

func TestParseStudentEdit(t *testing.T) {
	id, in, err := parseStudentEdit(strings.Fields("4 Ivan Ivanov ivan@mail.com +79991234567 2"))
	require.NoError(t, err)
	assert.Equal(t, 4, id)
	assert.Equal(t, 2, in.GroupID)

	_, _, err = parseStudentEdit(strings.Fields("Ivan Ivanov ivan@mail.com +79991234567 2"))
	assert.ErrorIs(t, err, errBadFormat)
}

func TestParseTeacherEdit(t *testing.T) {
	id, in, err := parseTeacherEdit(strings.Fields("2 Petr Petrov petr@college.edu +79998887766 1"))
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	assert.Equal(t, 1, in.DepartmentID)
}

func TestParseGradeEdit(t *testing.T) {
	in, err := parseGradeEdit(strings.Fields("7 4"))
	require.NoError(t, err)
	assert.Equal(t, gradeEdit{ID: 7, Grade: 4}, in)

	_, err = parseGradeEdit(strings.Fields("7"))
	assert.ErrorIs(t, err, errBadFormat)
}

func TestParseID(t *testing.T) {
	id, err := parseID(strings.Fields("12 trailing ignored"))
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	_, err = parseID(nil)
	assert.ErrorIs(t, err, errBadFormat)

	_, err = parseID(strings.Fields("abc"))
	assert.ErrorIs(t, err, errBadFormat)
}
