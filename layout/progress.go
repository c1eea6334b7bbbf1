package layout

import (
	"time"

	"github.com/charmbracelet/log"
)

// progressTracker times each pipeline stage and logs its completion at
// debug level. Grounded on matzehuels-stacktower/internal/cli/log.go's
// progress helper; logging is advisory only and never influences layout
// output.
type progressTracker struct {
	logger  *log.Logger
	enabled bool
	name    string
	start   time.Time
}

func newProgress(opts Options) *progressTracker {
	return &progressTracker{logger: opts.logger(), enabled: opts.DebugTiming}
}

func (p *progressTracker) startStage(name string) {
	p.name = name
	p.start = time.Now()
	if p.enabled {
		p.logger.Debugf("%s: start", name)
	}
}

func (p *progressTracker) done() {
	if p.enabled {
		p.logger.Debugf("%s (%s)", p.name, time.Since(p.start).Round(time.Microsecond))
	}
}
