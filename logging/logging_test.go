package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	logger, err := New("warn", "json")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = New("loud", "json")
	assert.Error(t, err)

	_, err = New("info", "xml")
	assert.Error(t, err)
}

func TestSession(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	a, idA := Session(zap.New(core))
	b, idB := Session(zap.New(core))
	assert.NotEqual(t, idA, idB)

	a.Info("started")
	b.Info("started")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, idA.String(), entries[0].ContextMap()["session"])
	assert.Equal(t, idB.String(), entries[1].ContextMap()["session"])
}
