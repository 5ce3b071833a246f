package logging

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type fixedClock struct{ t *time.Time }

func (c fixedClock) Now() time.Time { return *c.t }

func TestDailyFile(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2024, 3, 9, 23, 59, 0, 0, time.Local)

	w, err := NewDailyFile(dir, "", fixedClock{&day})
	require.NoError(t, err)
	defer w.Close()

	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	log := zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel))
	log.Debug("first")
	log.With(zap.String("farm_id", "farm-1")).Info("second")

	day = day.Add(2 * time.Minute)
	log.Warn("third")

	first, err := os.ReadFile(DailyFileName(dir, "", time.Date(2024, 3, 9, 0, 0, 0, 0, time.Local)))
	require.NoError(t, err)
	assert.Contains(t, string(first), "first")
	assert.Contains(t, string(first), `"farm_id": "farm-1"`)
	assert.NotContains(t, string(first), "third")

	second, err := os.ReadFile(DailyFileName(dir, "", time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)))
	require.NoError(t, err)
	assert.Contains(t, string(second), "third")
}

func TestDailyFileCore_Appends(t *testing.T) {
	dir := t.TempDir()
	path := DailyFileName(dir, "run", time.Now())
	require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0644))

	core, err := NewDailyFileCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), dir, "run")
	require.NoError(t, err)
	zap.New(core).Debug("appended")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "existing\n")
	assert.Contains(t, string(content), "appended")
}

func TestDailyFileName(t *testing.T) {
	assert.Equal(t, "/logs/farm_creator_2024-03-09.log", DailyFileName("/logs", "", time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)))
}
