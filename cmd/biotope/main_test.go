package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"galapagos/internal/statlog"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// writeConfig stores a small run configuration in a temp dir.
func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	content := `
biotope:
  width: 16
  height: 16
  seed: 3
  finches_per_kind: 4
  kinds: [Cheater, Samaritan, Analyzer]
run:
  rounds: 5
sweep:
  runs: 3
  workers: 2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "biotope version "+version) {
		t.Errorf("unexpected output %q", out)
	}
}

func TestStrategiesCmd(t *testing.T) {
	out, err := execute(t, "strategies", "--json")
	if err != nil {
		t.Fatalf("strategies: %v", err)
	}
	var entries []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	names := map[string]string{}
	for _, e := range entries {
		names[e.Name] = e.Description
	}
	for _, want := range []string{"Analyzer", "Cheater", "FlipFlopper"} {
		if names[want] == "" {
			t.Errorf("missing strategy %s or its description", want)
		}
	}
}

func TestRunCmdWritesOutputs(t *testing.T) {
	cfgPath := writeConfig(t)
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "stats.csv")
	dbPath := filepath.Join(dir, "stats.db")
	videoPath := filepath.Join(dir, "run.avi")

	out, err := execute(t, "run", "--config", cfgPath, "--quiet", "--csv", csvPath, "--sqlite", dbPath,
		"--video", videoPath, "--video-scale", "2")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "round 5") || !strings.Contains(out, "Samaritan") {
		t.Errorf("unexpected summary %q", out)
	}

	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if lines := strings.Count(string(data), "\n"); lines != 7 {
		t.Errorf("csv lines = %d, want header + 6 rows", lines)
	}
	if info, err := os.Stat(videoPath); err != nil || info.Size() == 0 {
		t.Errorf("video not written: %v", err)
	}

	store, err := statlog.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer store.Close()
	runs, err := store.Runs()
	if err != nil || len(runs) != 1 || runs[0].Seed != 3 {
		t.Fatalf("runs = %+v, %v", runs, err)
	}
	last, err := store.LastRound(runs[0].ID)
	if err != nil || last != 5 {
		t.Fatalf("last round = %d, %v", last, err)
	}
}

func TestRunCmdReportsCSVWriteError(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	_, err := execute(t, "run", "--config", writeConfig(t), "--quiet", "--csv", "/dev/full")
	if err == nil || !strings.Contains(err.Error(), "csv log") {
		t.Fatalf("run --csv /dev/full err = %v, want csv log error", err)
	}
}

func TestRunCmdRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("biotope:\n  kinds: []\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := execute(t, "run", "--config", path); err == nil {
		t.Fatal("expected error for empty kinds")
	}
}

func TestRunCmdJSON(t *testing.T) {
	out, err := execute(t, "run", "--config", writeConfig(t), "--quiet", "--rounds", "2", "--json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var stats struct {
		Round int
		Kinds map[string]struct{ Population int }
	}
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if stats.Round != 2 || len(stats.Kinds) != 3 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestSweepCmd(t *testing.T) {
	out, err := execute(t, "sweep", "--config", writeConfig(t), "--rounds", "2")
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if !strings.Contains(out, "3 runs of 2 rounds") {
		t.Errorf("unexpected header in %q", out)
	}
	for _, k := range []string{"Cheater", "Samaritan", "Analyzer"} {
		if !strings.Contains(out, k) {
			t.Errorf("sweep output missing %s", k)
		}
	}
}

func TestConfigCmdPrintsLoadableYAML(t *testing.T) {
	t.Setenv("GALAPAGOS_SEED", "77")
	out, err := execute(t, "config", "--config", writeConfig(t))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "seed: 77") || !strings.Contains(out, "width: 16") {
		t.Errorf("unexpected config output %q", out)
	}
}

func TestConfigCmdParams(t *testing.T) {
	out, err := execute(t, "config", "--config", writeConfig(t), "--params")
	if err != nil {
		t.Fatalf("config --params: %v", err)
	}
	for _, want := range []string{"World", "Finches", "Population", "Width", "16", "Cheater,Samaritan,Analyzer"} {
		if !strings.Contains(out, want) {
			t.Errorf("params output missing %q: %q", want, out)
		}
	}
}

func TestHistoryCmd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "stats.db")
	if _, err := execute(t, "run", "--config", writeConfig(t), "--quiet", "--sqlite", dbPath); err != nil {
		t.Fatalf("run: %v", err)
	}

	out, err := execute(t, "history", dbPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "16x16") {
		t.Errorf("run listing missing size: %q", out)
	}

	out, err = execute(t, "history", dbPath, "--run", "1", "--kind", "Cheater")
	if err != nil {
		t.Fatalf("history --run: %v", err)
	}
	if got := strings.Count(out, "Cheater"); got != 6 {
		t.Errorf("Cheater rows = %d, want 6", got)
	}
}

func TestChartCmd(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "stats.db")
	if _, err := execute(t, "run", "--config", writeConfig(t), "--quiet", "--sqlite", dbPath); err != nil {
		t.Fatalf("run: %v", err)
	}

	pngPath := filepath.Join(dir, "pop.png")
	out, err := execute(t, "chart", dbPath, "--run", "1", "--out", pngPath, "--width", "300", "--height", "150")
	if err != nil {
		t.Fatalf("chart: %v", err)
	}
	if !strings.Contains(out, "pop.png") {
		t.Errorf("unexpected output %q", out)
	}
	info, err := os.Stat(pngPath)
	if err != nil || info.Size() == 0 {
		t.Fatalf("png not written: %v", err)
	}

	if _, err := execute(t, "chart", dbPath); err == nil {
		t.Fatalf("chart without --run should fail")
	}
}
