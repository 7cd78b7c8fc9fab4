package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorChecks(t *testing.T) {
	notFound := NotFound("billing with ID %s not found", "abc")
	conflict := Conflict("task is already assigned to this user")
	unauthorized := Unauthorized("invalid credentials")
	invalid := Invalid("title is required")

	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsConflict(conflict))
	assert.True(t, IsUnauthorized(unauthorized))
	assert.True(t, IsValidation(invalid))

	assert.False(t, IsNotFound(conflict))
	assert.False(t, IsConflict(invalid))
	assert.False(t, IsValidation(notFound))
	assert.False(t, IsUnauthorized(fmt.Errorf("plain error")))

	assert.Equal(t, "billing with ID abc not found", notFound.Error())
}

func TestErrorChecksThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading billing: %w", NotFound("not found"))
	assert.True(t, IsNotFound(err))
}
