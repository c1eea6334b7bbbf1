package layout

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options configures a single Layout call. DebugTiming turns on per-stage
// progress logging; Logger is the sink it writes to. Timing is advisory and
// never affects layout output. StraightEdges trades routed polylines for a
// direct line between each edge's two endpoints.
type Options struct {
	DebugTiming   bool
	Logger        *log.Logger
	StraightEdges bool
}

func (o *Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}
