// Package config loads graph-label defaults from a TOML file so a
// deployment can pin ranksep/nodesep/ranker/etc. without recompiling.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/arjunmenon/graphlayout/graph"
)

// Defaults mirrors graph.Label's whitelisted fields in TOML's lowercase
// key convention, so a file like
//
//	ranksep = 75
//	nodesep = 40
//	ranker = "tight-tree"
//	rankdir = "LR"
//
// overrides exactly the fields it sets, leaving graph.DefaultLabel's
// values for the rest.
type Defaults struct {
	RankDir   string  `toml:"rankdir"`
	RankSep   float64 `toml:"ranksep"`
	NodeSep   float64 `toml:"nodesep"`
	EdgeSep   float64 `toml:"edgesep"`
	MarginX   float64 `toml:"marginx"`
	MarginY   float64 `toml:"marginy"`
	Ranker    string  `toml:"ranker"`
	Acyclicer string  `toml:"acyclicer"`
	Align     string  `toml:"align"`
}

// Load reads a TOML defaults file at path and returns a graph.Label seeded
// from graph.DefaultLabel with every key present in the file overlaid on top.
func Load(path string) (graph.Label, error) {
	label := graph.DefaultLabel()

	data, err := os.ReadFile(path)
	if err != nil {
		return label, fmt.Errorf("read config %s: %w", path, err)
	}

	var d Defaults
	meta, err := toml.Decode(string(data), &d)
	if err != nil {
		return label, fmt.Errorf("decode config %s: %w", path, err)
	}

	if meta.IsDefined("rankdir") {
		label.RankDir = graph.RankDir(d.RankDir)
	}
	if meta.IsDefined("ranksep") {
		label.RankSep = d.RankSep
	}
	if meta.IsDefined("nodesep") {
		label.NodeSep = d.NodeSep
	}
	if meta.IsDefined("edgesep") {
		label.EdgeSep = d.EdgeSep
	}
	if meta.IsDefined("marginx") {
		label.MarginX = d.MarginX
	}
	if meta.IsDefined("marginy") {
		label.MarginY = d.MarginY
	}
	if meta.IsDefined("ranker") {
		label.Ranker = graph.RankerKind(d.Ranker)
	}
	if meta.IsDefined("acyclicer") {
		label.Acyclicer = graph.AcyclicerKind(d.Acyclicer)
	}
	if meta.IsDefined("align") {
		label.Align = graph.Align(d.Align)
	}

	return label, nil
}
