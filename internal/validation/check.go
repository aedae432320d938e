package validation

import "github.com/emizen/notesapp/internal/common"

// The Check* variants wrap the boolean rules into per-rule ValidationErrors
// so services can hand a specific message back to the UI layer.

func CheckName(s string) error {
	if s == "" {
		return common.NewValidationError("name", "must not be empty")
	}
	return nil
}

func CheckEmail(s string) error {
	if !Email(s) {
		return common.NewValidationError("email", "must look like name@example.com")
	}
	return nil
}

func CheckMobile(s string) error {
	if !Mobile(s) {
		return common.NewValidationError("mobile", "must be a 10-digit number starting with 6-9")
	}
	return nil
}

func CheckPassword(s, ownerName string) error {
	if !Password(s, ownerName) {
		return common.NewValidationError("password",
			"must be 8-15 characters with at least one lowercase letter, two uppercase letters, "+
				"two digits and one of "+passwordSymbols+", and must not contain your name")
	}
	return nil
}

func CheckNoteTitle(s string) error {
	if !NoteTitle(s) {
		return common.NewValidationError("title", "must be 5-100 characters")
	}
	return nil
}

func CheckNoteDescription(s string) error {
	if !NoteDescription(s) {
		return common.NewValidationError("description", "must be 100-1000 characters")
	}
	return nil
}
