package main

import (
	"io"
	stdslog "log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/trickstertwo/unilog/adapter/unified"
	"github.com/trickstertwo/unilog/facility/journal"
	slogfacility "github.com/trickstertwo/unilog/facility/slog"
	zapfacility "github.com/trickstertwo/unilog/facility/zap"
	zerologfacility "github.com/trickstertwo/unilog/facility/zerolog"
	"github.com/trickstertwo/unilog/internal/config"
)

// openFacility builds the named facility writing to w. A nil facility
// leaves every adapter unbound so output goes to the fallback.
func openFacility(name string, w io.Writer) (unified.Facility, func()) {
	tty := isTerminal(w)
	switch name {
	case config.FacilityZap:
		f, zl := zapfacility.NewFromConfig(zapfacility.Config{Writer: w, Console: tty})
		return f, func() { _ = zl.Sync() }
	case config.FacilityZerolog:
		f := zerologfacility.NewFromConfig(zerologfacility.Config{
			Writer:    w,
			Console:   tty,
			NoColor:   !tty,
			Timestamp: true,
		})
		return f, func() {}
	case config.FacilitySlog:
		opts := &stdslog.HandlerOptions{
			Level:       stdslog.LevelDebug,
			ReplaceAttr: slogfacility.ReplaceLevelNames,
		}
		var h stdslog.Handler
		if tty {
			h = stdslog.NewTextHandler(w, opts)
		} else {
			h = stdslog.NewJSONHandler(w, opts)
		}
		return slogfacility.New(stdslog.New(h)), func() {}
	case config.FacilityFallback:
		return nil, func() {}
	default:
		return journal.Facility{}, func() {}
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
