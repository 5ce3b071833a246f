package logging

import (
	"fmt"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap/zapcore"
)

const (
	defaultLogFilePrefix = "farm_creator"
	// logFileMaxAge is how long old daily files are kept. They are removed when
	// the writer switches to a new day.
	logFileMaxAge = 30 * 24 * time.Hour
)

type localClock struct{}

func (localClock) Now() time.Time { return time.Now() }

// DailyFileName is the log file used for entries written on the day of t.
func DailyFileName(dir, prefix string, t time.Time) string {
	if prefix == "" {
		prefix = defaultLogFilePrefix
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s.log", prefix, t.Format("2006-01-02")))
}

// NewDailyFile appends to <dir>/<prefix>_<YYYY-MM-DD>.log and switches files
// when the local date changes.
func NewDailyFile(dir, prefix string, clock rotatelogs.Clock) (*rotatelogs.RotateLogs, error) {
	if prefix == "" {
		prefix = defaultLogFilePrefix
	}
	if clock == nil {
		clock = localClock{}
	}
	return rotatelogs.New(
		filepath.Join(dir, prefix+"_%Y-%m-%d.log"),
		rotatelogs.WithClock(clock),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithMaxAge(logFileMaxAge),
	)
}

// NewDailyFileCore writes every entry, regardless of level, to a daily file.
func NewDailyFileCore(enc zapcore.Encoder, dir, prefix string) (zapcore.Core, error) {
	w, err := NewDailyFile(dir, prefix, nil)
	if err != nil {
		return nil, err
	}
	return zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel), nil
}
