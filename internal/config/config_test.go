package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arjunmenon/graphlayout/graph"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "graphlayout.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadOverridesOnlyPresentKeys(t *testing.T) {
	path := writeTempConfig(t, `
ranksep = 75
rankdir = "LR"
`)

	label, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := graph.DefaultLabel()
	if label.RankSep != 75 {
		t.Errorf("got ranksep=%v, want 75", label.RankSep)
	}
	if label.RankDir != graph.RankDirLR {
		t.Errorf("got rankdir=%v, want LR", label.RankDir)
	}
	if label.NodeSep != def.NodeSep {
		t.Errorf("got nodesep=%v, want default %v (unset key)", label.NodeSep, def.NodeSep)
	}
	if label.Ranker != def.Ranker {
		t.Errorf("got ranker=%v, want default %v (unset key)", label.Ranker, def.Ranker)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error loading a nonexistent config file")
	}
}
