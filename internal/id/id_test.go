package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUID(t *testing.T) {
	a := UUID()
	b := UUID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
