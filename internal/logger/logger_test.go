package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// TestLogBeforeInit must stay the first test in this file: it checks the
// package state before any Init call has replaced the loggers.
func TestLogBeforeInit(t *testing.T) {
	if Log == nil || Sugar == nil {
		t.Fatal("package loggers must be usable before Init")
	}

	// Until Init runs every call discards its input, it never
	// dereferences a nil logger.
	Debug("uninitialized", zap.String("key", "value"))
	Info("uninitialized")
	Warn("uninitialized")
	Error("uninitialized")
	Sugar.Debugf("uninitialized %d", 1)
	Sync()
}

func TestInitWithNoOutputs(t *testing.T) {
	// Empty Path and no console leaves the logger with zero cores. Test
	// binaries init exactly this way to stay quiet.
	if err := InitWithFileConfig("error", FileConfig{}, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Debug("dropped")
	Info("dropped")
	Warn("dropped")
	Error("dropped")
	Sugar.Infof("dropped %d", 1)
	Sync()
}

func TestLevelFiltering(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error"}
	tags := []string{"DEBUG", "INFO", "WARN", "ERROR"}

	for min, minName := range levels {
		t.Run(minName, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), minName+".log")
			cfg := FileConfig{
				Path:       logFile,
				MaxSizeMB:  5,
				MaxBackups: 1,
				MaxAgeDays: 1,
			}
			if err := InitWithFileConfig(minName, cfg, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("level check")
			Info("level check")
			Warn("level check")
			Error("level check")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}

			for i, tag := range tags {
				got := strings.Contains(string(content), tag)
				want := i >= min
				if got != want {
					t.Errorf("min level %s: %s present=%v, want %v", minName, tag, got, want)
				}
			}
		})
	}
}

func TestFileRotation(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "fork.log")

	// 1MB is the smallest size lumberjack rotates at.
	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
		Compress:   false,
	}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	// Write well past the rotation threshold.
	filler := strings.Repeat("mesh", 64)
	for i := 0; i < 12000; i++ {
		Sugar.Infof("entry %d %s", i, filler)
	}
	Sync()

	if _, err := os.Stat(logFile); err != nil {
		t.Fatalf("active log file missing: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read log dir: %v", err)
	}

	names := make([]string, 0, len(entries))
	rotated := 0
	for _, e := range entries {
		names = append(names, e.Name())
		if e.Name() == "fork.log" {
			continue
		}
		// Backups are renamed to fork-<timestamp>.log.
		if strings.HasPrefix(e.Name(), "fork-") && strings.HasSuffix(e.Name(), ".log") {
			rotated++
		}
	}
	if rotated == 0 {
		t.Errorf("expected rotated backups next to the active log, found %v", names)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("fork.log")

	if cfg.Path != "fork.log" {
		t.Errorf("path: got %s, want fork.log", cfg.Path)
	}
	if cfg.MaxSizeMB != 50 || cfg.MaxBackups != 3 || cfg.MaxAgeDays != 7 {
		t.Errorf("rotation defaults: got %d/%d/%d, want 50/3/7",
			cfg.MaxSizeMB, cfg.MaxBackups, cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected compression on by default")
	}
}
