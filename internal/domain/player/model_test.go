package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Palmer, Arnold", Player{FirstName: "Arnold", LastName: "Palmer"}.DisplayName())
	assert.Equal(t, "Arnold", Player{FirstName: "Arnold"}.DisplayName())
	assert.Equal(t, "Palmer", Player{LastName: " Palmer "}.DisplayName())
}

func TestValidate(t *testing.T) {
	email := "arnie@example.com"
	badEmail := "arnie@localhost"
	handicap := 60.0

	assert.NoError(t, Player{FirstName: "Arnold", LastName: "Palmer", Email: &email}.Validate())
	assert.Error(t, Player{FirstName: "", LastName: "Palmer"}.Validate())
	assert.Error(t, Player{FirstName: "Arnold", LastName: " "}.Validate())
	assert.Error(t, Player{FirstName: "Arnold", LastName: "Palmer", Email: &badEmail}.Validate())
	assert.Error(t, Player{FirstName: "Arnold", LastName: "Palmer", Handicap: &handicap}.Validate())
}

func TestValidateEmail(t *testing.T) {
	for _, ok := range []string{"a@b.co", "first.last@club.golf"} {
		assert.NoError(t, ValidateEmail(ok), ok)
	}
	for _, bad := range []string{"", "nobody", "Name <a@b.co>", "a@b"} {
		assert.Error(t, ValidateEmail(bad), bad)
	}
}
