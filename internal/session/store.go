// Package session tracks the pending form of each conversation. A chat holds
// at most one token naming the multi-field form its next free-text message is
// expected to fill; the token spans exactly one prompt-reply turn.
package session

import "context"

// Form is the closed set of pending-form tokens. FormNone means the chat is
// idle and free text falls through to the unrecognized reply.
type Form int

const (
	FormNone Form = iota
	FormAddStudent
	FormAddTeacher
	FormAddGrade
	FormEditStudent
	FormEditTeacher
	FormEditGrade
	FormDeleteStudent
	FormDeleteTeacher
	FormDeleteGrade
	FormFindStudent
)

var formNames = map[Form]string{
	FormNone:          "none",
	FormAddStudent:    "add_student",
	FormAddTeacher:    "add_teacher",
	FormAddGrade:      "add_grade",
	FormEditStudent:   "edit_student",
	FormEditTeacher:   "edit_teacher",
	FormEditGrade:     "edit_grade",
	FormDeleteStudent: "delete_student",
	FormDeleteTeacher: "delete_teacher",
	FormDeleteGrade:   "delete_grade",
	FormFindStudent:   "find_student",
}

func (f Form) String() string {
	if name, ok := formNames[f]; ok {
		return name
	}
	return "unknown"
}

// Store maps a chat id to its pending form. Implementations swallow backend
// failures: a failed read behaves as an idle chat and a failed write is
// logged, so the conversation stays usable.
type Store interface {
	Get(ctx context.Context, chatID int64) Form
	Set(ctx context.Context, chatID int64, form Form)
	Clear(ctx context.Context, chatID int64)
}
