package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"valid", "test@example.com", true},
		{"valid with plus", "te+st@example.com", true},
		{"valid four char local", "abcd@mail.org", true},
		{"too short everywhere", "a@b.c", false},
		{"local too short", "abc@example.com", false},
		{"local too long", strings.Repeat("a", 26) + "@example.com", false},
		{"domain too short", "test@a.b", false},
		{"domain too long", "test@" + strings.Repeat("a", 24) + ".com", false},
		{"no tld", "test@example", false},
		{"one letter tld", "test@example.c", false},
		{"missing at", "testexample.com", false},
		{"illegal local char", "te st@example.com", false},
		{"empty", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Email(tc.email))
		})
	}
}

func TestMobile(t *testing.T) {
	tests := []struct {
		name   string
		mobile string
		want   bool
	}{
		{"valid", "9876543210", true},
		{"valid leading six", "6123456789", true},
		{"leading five", "5876543210", false},
		{"valid with dash", "98765-43210", true},
		{"valid with spaces", "98765 432 10", true},
		{"nine digits", "987654321", false},
		{"eleven digits", "98765432101", false},
		{"letters only", "abcdefghij", false},
		{"empty", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Mobile(tc.mobile))
		})
	}
}

func TestNormalizeMobile(t *testing.T) {
	assert.Equal(t, "9876543210", NormalizeMobile("98765-43210"))
	assert.Equal(t, "9876543210", NormalizeMobile("(98765) 432 10"))
	assert.Equal(t, "", NormalizeMobile("abc"))
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		owner    string
		want     bool
	}{
		{"valid", "AB12cd34@", "Alice", true},
		{"valid max length", "AB12cdefghij34@", "Alice", true},
		{"too short", "AB12cd@", "Alice", false},
		{"too long", "AB12cdefghijk345@", "Alice", false},
		{"no lowercase", "AB12CD34@", "Alice", false},
		{"one uppercase only", "Ab12cd34@", "Alice", false},
		{"one digit only", "ABcdefg1@", "Alice", false},
		{"no symbol", "AB12cd345", "Alice", false},
		{"illegal symbol", "AB12cd34#", "Alice", false},
		{"owner name broken up is fine", "ABal12ice34@x", "alice", true},
		{"contains owner name", "ABalice12@", "Alice", false},
		{"owner name different case", "ABALICE12@x", "alice", false},
		{"empty owner imposes nothing", "AB12cd34@", "", true},
		{"empty password", "", "Alice", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Password(tc.password, tc.owner))
		})
	}
}

func TestNoteTitle(t *testing.T) {
	assert.False(t, NoteTitle(strings.Repeat("a", 4)))
	assert.True(t, NoteTitle(strings.Repeat("a", 5)))
	assert.True(t, NoteTitle(strings.Repeat("a", 100)))
	assert.False(t, NoteTitle(strings.Repeat("a", 101)))
	assert.False(t, NoteTitle(""))
}

func TestNoteDescription(t *testing.T) {
	assert.False(t, NoteDescription(strings.Repeat("a", 99)))
	assert.True(t, NoteDescription(strings.Repeat("a", 100)))
	assert.True(t, NoteDescription(strings.Repeat("a", 1000)))
	assert.False(t, NoteDescription(strings.Repeat("a", 1001)))
}

func TestCheckVariantsReportRules(t *testing.T) {
	assert.NoError(t, CheckEmail("test@example.com"))
	assert.Error(t, CheckEmail("a@b.c"))
	assert.Error(t, CheckName(""))
	assert.Error(t, CheckMobile("123"))
	assert.Error(t, CheckPassword("short", "x"))
	assert.Error(t, CheckNoteTitle("abc"))
	assert.Error(t, CheckNoteDescription("too short"))
}
