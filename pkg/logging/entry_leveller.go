package logging

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// EntryLeveller is a zapcore.Core that applies a minimum level per logger name.
// A level set for "provision" also applies to "provision.cleanup" unless that
// name has its own entry.
type EntryLeveller struct {
	zapcore.Core

	levels map[string]zapcore.Level
	lowest zapcore.Level
}

// ParseLevels reads a "name=level,name=level" list as found in LOG_LEVEL.
// Malformed entries are skipped. An empty name sets the level for the root logger.
func ParseLevels(spec string) map[string]zapcore.Level {
	levels := make(map[string]zapcore.Level)
	for _, entry := range strings.Split(spec, ",") {
		name, lvl, ok := strings.Cut(strings.TrimSpace(entry), "=")
		if !ok {
			continue
		}
		level, err := zapcore.ParseLevel(lvl)
		if err != nil {
			continue
		}
		levels[strings.TrimSpace(name)] = level
	}
	return levels
}

func NewEntryLeveller(core zapcore.Core, levels map[string]zapcore.Level) *EntryLeveller {
	copied := make(map[string]zapcore.Level, len(levels))
	for k, v := range levels {
		copied[k] = v
	}
	lowest := zapcore.InvalidLevel
	for _, v := range copied {
		if lowest == zapcore.InvalidLevel || v < lowest {
			lowest = v
		}
	}
	return &EntryLeveller{Core: core, levels: copied, lowest: lowest}
}

func (el *EntryLeveller) With(f []zapcore.Field) zapcore.Core {
	return &EntryLeveller{Core: el.Core.With(f), levels: el.levels, lowest: el.lowest}
}

// Enabled is checked by the logger before Check, without the logger name, so
// it has to admit any level that some name is configured for.
func (el *EntryLeveller) Enabled(lvl zapcore.Level) bool {
	if el.lowest != zapcore.InvalidLevel && lvl >= el.lowest {
		return true
	}
	return el.Core.Enabled(lvl)
}

// levelFor walks from the most to the least specific name.
func (el *EntryLeveller) levelFor(name string) (zapcore.Level, bool) {
	for name != "" {
		if lvl, ok := el.levels[name]; ok {
			return lvl, true
		}
		idx := strings.LastIndexByte(name, '.')
		if idx < 0 {
			break
		}
		name = name[:idx]
	}
	lvl, ok := el.levels[""]
	return lvl, ok
}

func (el *EntryLeveller) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	lvl, ok := el.levelFor(e.LoggerName)
	if !ok {
		return el.Core.Check(e, ce)
	}
	if e.Level < lvl {
		return ce
	}
	return ce.AddCore(e, el)
}
