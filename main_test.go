package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/briangreenhill/ftracker/internal/workout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := newLogger(&buf, "debug", "json")
	require.NoError(t, err)
	logger.Debug("hello", slog.String("kind", "Running"))
	assert.Contains(t, buf.String(), `"kind":"Running"`)

	buf.Reset()
	logger, err = newLogger(&buf, "warn", "text")
	require.NoError(t, err)
	logger.Info("dropped")
	assert.Empty(t, buf.String())

	_, err = newLogger(&buf, "loud", "text")
	assert.Error(t, err)

	_, err = newLogger(&buf, "info", "xml")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	var out, logs bytes.Buffer
	logger, err := newLogger(&logs, "info", "text")
	require.NoError(t, err)

	err = run(context.Background(), &out, &logs, []string{"report", "-type", "RUN", "-data", "15000,1,75"}, logger, workout.NewService(logger))
	require.NoError(t, err)
	assert.Equal(t, "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.\n", out.String())
	assert.Contains(t, logs.String(), "Report complete")

	err = run(context.Background(), &out, &logs, []string{"report", "-type", "XYZ", "-data", "1,1,1"}, logger, workout.NewService(logger))
	assert.ErrorIs(t, err, workout.ErrUnknownWorkoutType)
}
