package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/voxel-map/config"
)

func TestSetupDisabledByDefault(t *testing.T) {
	dir := t.TempDir()
	log, closer, err := Setup(config.LogConfig{Enabled: false, Level: "debug", Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	if log.GetLevel() != zerolog.Disabled {
		t.Errorf("Expected disabled logger, got level %s", log.GetLevel())
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Expected no files written, got %d", len(entries))
	}
}

func TestSetupWritesJSONLines(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	log, closer, err := Setup(config.LogConfig{Enabled: true, Level: "debug", Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	log.Debug().Str("widget", "1:1").Msg("field updated")
	closer.Close()

	f, err := os.Open(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("Expected log file: %v", err)
	}
	defer f.Close()

	var lines []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m map[string]any
		if err := json.Unmarshal(sc.Bytes(), &m); err != nil {
			t.Fatalf("Expected JSON line, got %q: %v", sc.Text(), err)
		}
		lines = append(lines, m)
	}
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[1]["widget"] != "1:1" || lines[1]["message"] != "field updated" {
		t.Errorf("Unexpected entry %v", lines[1])
	}
}

func TestSetupLevelFilters(t *testing.T) {
	dir := t.TempDir()
	log, closer, err := Setup(config.LogConfig{Enabled: true, Level: "warn", Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	log.Info().Msg("dropped")
	closer.Close()

	info, err := os.Stat(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("Expected empty log at warn level, got %d bytes", info.Size())
	}
}

func TestSetupBadLevel(t *testing.T) {
	if _, _, err := Setup(config.LogConfig{Enabled: true, Level: "loud", Dir: t.TempDir()}); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestSetupRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, make([]byte, MaxLogSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	_, closer, err := Setup(config.LogConfig{Enabled: true, Level: "info", Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	entries, _ := os.ReadDir(dir)
	rotated := false
	for _, e := range entries {
		if e.Name() != FileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("Expected rotated log file")
	}
	info, _ := os.Stat(path)
	if info.Size() > MaxLogSize {
		t.Errorf("Expected fresh log file, got %d bytes", info.Size())
	}
}
