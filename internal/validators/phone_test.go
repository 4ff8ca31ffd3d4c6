package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "11987654321", NormalizePhone("(11) 98765-4321"))
	assert.Equal(t, "+5511987654321", NormalizePhone("+55 (11) 98765-4321"))
	assert.Equal(t, "1134567890", NormalizePhone("11 3456-7890"))
}

func TestIsPhoneValid(t *testing.T) {
	assert.True(t, IsPhoneValid("(11) 98765-4321"))
	assert.True(t, IsPhoneValid("+55 11 98765-4321"))
	assert.True(t, IsPhoneValid("3456-7890"))

	assert.False(t, IsPhoneValid("123"))
	assert.False(t, IsPhoneValid(""))
	assert.False(t, IsPhoneValid("12345678901234"))
}
