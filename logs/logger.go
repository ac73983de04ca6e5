package logs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/reusee/exprs/cmds"
	"github.com/reusee/exprs/modes"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var (
	level        = new(slog.LevelVar)
	levelFromCmd bool
)

func init() {
	for _, name := range []string{"debug", "info", "warn", "error"} {
		cmds.Define("-log-"+name, cmds.Func(func() {
			if err := SetLevel(name); err != nil {
				panic(err)
			}
			levelFromCmd = true
		}).Desc("set log level to "+name))
	}
}

// SetLevel sets the level of all loggers by name: debug, info, warn or error.
func SetLevel(name string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("log level %q: %w", name, err)
	}
	level.Set(l)
	return nil
}

// SetDefaultLevel is SetLevel unless a -log-* command already chose the level.
func SetDefaultLevel(name string) error {
	if levelFromCmd || name == "" {
		return nil
	}
	return SetLevel(name)
}

type Logger = *slog.Logger

func (Module) Logger(
	writer Writer,
	mode modes.Mode,
) Logger {
	var handlers []slog.Handler

	// services log to the journal, everything else to the terminal
	isSystemdService := false
	if cgroupPath, err := getCgroupPath(); err == nil {
		isSystemdService = strings.HasSuffix(
			path.Dir(cgroupPath),
			".service",
		)
	}

	var journalErr error
	if isSystemdService && mode != modes.ModeDevelopment {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			journalErr = err
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	if len(handlers) == 0 {
		terminalHandler := slog.NewTextHandler(
			writer,
			&slog.HandlerOptions{
				Level: level,
			},
		)
		if journalErr != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", journalErr)
			_ = terminalHandler.Handle(context.Background(), record)
		}
		handlers = append(handlers, terminalHandler)
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}

func getCgroupPath() (string, error) {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return "", err
	}
	parts := strings.Split(string(content), ":")
	if len(parts) >= 3 {
		return strings.TrimSpace(parts[2]), nil
	}
	return "", nil
}
