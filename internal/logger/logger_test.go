package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetLevel(t *testing.T) {
	base := New()
	assert.Equal(t, zerolog.DebugLevel, base.GetLevel())

	assert.Equal(t, zerolog.WarnLevel, SetLevel(base, "warn").GetLevel())
	assert.Equal(t, zerolog.DebugLevel, SetLevel(base, "chatty").GetLevel())
}
