package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ada@internhub.app"))
	assert.True(t, IsValidEmail("  Ada.Lovelace+tag@uni.edu  "))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidCGPA(t *testing.T) {
	assert.True(t, IsValidCGPA(0))
	assert.True(t, IsValidCGPA(8.4))
	assert.True(t, IsValidCGPA(10))
	assert.False(t, IsValidCGPA(-0.1))
	assert.False(t, IsValidCGPA(10.1))
}

func TestNormalizeStringSet(t *testing.T) {
	assert.Nil(t, NormalizeStringSet(nil))
	assert.Equal(t, []string{"Go", "SQL"}, NormalizeStringSet([]string{" Go ", "", "SQL", "  "}))
	assert.Equal(t, []string{}, NormalizeStringSet([]string{"", "   "}))
}
