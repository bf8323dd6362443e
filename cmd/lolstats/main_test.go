package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/lolgame/pkg/stats"
)

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func testDeps(store stats.Store) deps {
	return deps{
		openStore: func(string) (stats.Store, error) { return store, nil },
		newScreen: func() (tcell.Screen, error) {
			screen := tcell.NewSimulationScreen("UTF-8")
			screen.SetSize(40, 12)
			return screen, nil
		},
		now: func() time.Time { return testNow },
	}
}

func run(t *testing.T, d deps, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(d)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRecordAndShow(t *testing.T) {
	d := testDeps(stats.NewMemoryStore())

	out, err := run(t, d, "record", "champion", "--won", "--attempts", "3")
	if err != nil {
		t.Fatalf("record error: %v", err)
	}
	if !strings.Contains(out, "champion: played 1, won 1, total attempts 3") {
		t.Errorf("record output = %q", out)
	}

	if _, err := run(t, d, "record", "champion", "--attempts", "5"); err != nil {
		t.Fatalf("record error: %v", err)
	}
	if _, err := run(t, d, "record", "ability", "--won", "--attempts", "1"); err != nil {
		t.Fatalf("record error: %v", err)
	}

	out, err = run(t, d, "show")
	if err != nil {
		t.Fatalf("show error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("show output should have header + 2 rows, got:\n%s", out)
	}
	if !strings.HasPrefix(lines[1], "ability") || !strings.HasPrefix(lines[2], "champion") {
		t.Errorf("rows should be sorted by game type:\n%s", out)
	}
	for _, want := range []string{"50%", "4.0", "10/19/2026"} {
		if !strings.Contains(lines[2], want) {
			t.Errorf("champion row %q missing %q", lines[2], want)
		}
	}
}

func TestShowSingleGameType(t *testing.T) {
	d := testDeps(stats.NewMemoryStore())

	out, err := run(t, d, "show", "quote")
	if err != nil {
		t.Fatalf("show error: %v", err)
	}
	if !strings.Contains(out, "quote: no data") {
		t.Errorf("show output = %q", out)
	}

	_, _ = run(t, d, "record", "quote", "--attempts", "2")
	out, _ = run(t, d, "show", "quote")
	if !strings.Contains(out, "quote") || !strings.Contains(out, "0%") {
		t.Errorf("show output = %q", out)
	}
}

func TestShowEmpty(t *testing.T) {
	out, err := run(t, testDeps(stats.NewMemoryStore()), "show")
	if err != nil {
		t.Fatalf("show error: %v", err)
	}
	if !strings.Contains(out, "no games recorded") {
		t.Errorf("show output = %q", out)
	}
}

func TestRecordRequiresGameType(t *testing.T) {
	if _, err := run(t, testDeps(stats.NewMemoryStore()), "record"); err == nil {
		t.Error("record without a game type should fail")
	}
}

func TestConfettiRunsToCompletion(t *testing.T) {
	_, err := run(t, testDeps(stats.NewMemoryStore()), "confetti", "--fps", "1000", "--seed", "3")
	if err != nil {
		t.Fatalf("confetti error: %v", err)
	}
}

func TestConfettiRejectsBadFPS(t *testing.T) {
	if _, err := run(t, testDeps(stats.NewMemoryStore()), "confetti", "--fps", "0"); err == nil {
		t.Error("expected error for zero fps")
	}
}

func TestConfettiWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kit.yaml")
	if err := os.WriteFile(path, []byte("confetti:\n  particleCount: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	d := testDeps(stats.NewMemoryStore())
	if _, err := run(t, d, "confetti", "--config", path, "--fps", "1000"); err != nil {
		t.Fatalf("confetti error: %v", err)
	}

	if _, err := run(t, d, "confetti", "--config", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
