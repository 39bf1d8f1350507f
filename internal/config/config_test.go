package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/home/me/exports", expandHome("~/exports", "/home/me"))
	assert.Equal(t, "/abs/path", expandHome("/abs/path", "/home/me"))
	assert.Equal(t, "~", expandHome("~", "/home/me"))
	assert.Equal(t, "relative/path", expandHome("relative/path", "/home/me"))
}
