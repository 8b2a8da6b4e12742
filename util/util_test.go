package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModIsNeverNegative(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, Mod(0, 12))
	assert.Equal(3, Mod(15, 12))
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(9, Mod(-27, 12))
}

func TestGetKeys(t *testing.T) {
	m := map[uint8]bool{60: true, 64: true}
	keys := GetKeys(m)
	assert.ElementsMatch(t, []uint8{60, 64}, keys)
}
