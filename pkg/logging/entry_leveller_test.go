package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevels(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want map[string]zapcore.Level
	}{
		{
			name: "single",
			spec: "deadline=debug",
			want: map[string]zapcore.Level{"deadline": zapcore.DebugLevel},
		},
		{
			name: "multiple with spaces",
			spec: "deadline=debug, provision.cleanup=warn",
			want: map[string]zapcore.Level{
				"deadline":          zapcore.DebugLevel,
				"provision.cleanup": zapcore.WarnLevel,
			},
		},
		{
			name: "root and malformed entries",
			spec: "=error,nolevel,listener=loud",
			want: map[string]zapcore.Level{"": zapcore.ErrorLevel},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevels(tt.spec))
		})
	}
}

func TestEntryLeveller(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(NewEntryLeveller(core, map[string]zapcore.Level{
		"deadline":          zapcore.DebugLevel,
		"provision":         zapcore.WarnLevel,
		"provision.cleanup": zapcore.InfoLevel,
	}))

	log.Named("deadline").Debug("deadline debug")
	log.Named("deadline").Named("http").Debug("nested deadline debug")
	log.Named("provision").Info("provision info")
	log.Named("provision").Warn("provision warn")
	log.Named("provision").Named("cleanup").Info("cleanup info")
	log.Named("listener").Debug("listener debug")
	log.Named("listener").Info("listener info")

	var messages []string
	for _, e := range logs.All() {
		messages = append(messages, e.Message)
	}
	assert.Equal(t, []string{
		"deadline debug",
		"nested deadline debug",
		"provision warn",
		"cleanup info",
		"listener info",
	}, messages)
}

func TestEntryLeveller_Enabled(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)

	el := NewEntryLeveller(core, map[string]zapcore.Level{"http": zapcore.DebugLevel})
	assert.True(t, el.Enabled(zapcore.DebugLevel))
	assert.True(t, el.Enabled(zapcore.InfoLevel))

	quiet := NewEntryLeveller(core, map[string]zapcore.Level{"http": zapcore.WarnLevel})
	assert.False(t, quiet.Enabled(zapcore.DebugLevel))
	assert.True(t, quiet.Enabled(zapcore.InfoLevel))
}

func TestEntryLeveller_DebugWithoutVerbose(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(NewEntryLeveller(core, ParseLevels("http=debug")))

	log.Named("http").Debug("GET https://deadline.us-west-2.amazonaws.com")
	log.Named("provision").Debug("not shown")

	if assert.Equal(t, 1, logs.Len()) {
		assert.Equal(t, "http", logs.All()[0].LoggerName)
	}
}
