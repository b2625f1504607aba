package utils

import (
	"testing"

	"github.com/jjjonesjr33/petlibro/mocks"
	"github.com/stretchr/testify/assert"
)

type validatedConfig struct {
	Email  string `validate:"required,email"`
	Region string `validate:"required" default:"US"`
	Volume uint8  `validate:"percent" default:"50"`
}

// Tests defaults plus validation.
func TestValidate(t *testing.T) {
	v := NewValidator(mocks.FakeNewLogger(nil))

	good := &validatedConfig{Email: "user@example.com"}
	assert.True(t, v.Validate(good), "valid object")
	assert.Equal(t, "US", good.Region, "default applied")
	assert.Equal(t, uint8(50), good.Volume, "default volume")

	bad := &validatedConfig{Email: "not-an-email"}
	assert.False(t, v.Validate(bad), "invalid email")

	over := &validatedConfig{Email: "user@example.com", Volume: 120}
	assert.False(t, v.Validate(over), "volume over 100")
}
