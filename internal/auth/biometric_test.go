// ABOUTME: Tests for the biometric capability contract.
// ABOUTME: The no-hardware fallback must never report success.
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnavailableCapability(t *testing.T) {
	var c Capability = Unavailable{}

	assert.False(t, c.Supported())
	assert.False(t, c.Enrolled())
	assert.False(t, c.Authenticate())
	assert.NotEmpty(t, c.Kind())
}
