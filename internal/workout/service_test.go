package workout

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var demoLines = []string{
	"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
	"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
	"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServiceReportDemo(t *testing.T) {
	svc := NewService(newTestLogger())

	lines, err := svc.Report(context.Background(), DemoPackages())
	require.NoError(t, err)
	assert.Equal(t, demoLines, lines)
}

func TestServiceReportKeepsOrder(t *testing.T) {
	svc := NewService(newTestLogger())
	packages := DemoPackages()
	reversed := []Package{packages[2], packages[1], packages[0]}

	lines, err := svc.Report(context.Background(), reversed)
	require.NoError(t, err)
	assert.Equal(t, []string{demoLines[2], demoLines[1], demoLines[0]}, lines)
}

func TestServiceReportFailsWithoutPartialOutput(t *testing.T) {
	svc := NewService(newTestLogger())
	packages := []Package{
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "XYZ", Data: []float64{1, 1, 1}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}

	lines, err := svc.Report(context.Background(), packages)
	assert.ErrorIs(t, err, ErrUnknownWorkoutType)
	assert.ErrorContains(t, err, "package 1 (XYZ)")
	assert.Nil(t, lines)
}

func TestServiceReportCancelled(t *testing.T) {
	svc := NewService(newTestLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lines, err := svc.Report(ctx, DemoPackages())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, lines)
}

func TestServiceReportEmpty(t *testing.T) {
	svc := NewService(newTestLogger())

	lines, err := svc.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
