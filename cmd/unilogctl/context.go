package main

import (
	"errors"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/trickstertwo/unilog"
	"github.com/trickstertwo/unilog/adapter/unified"
	"github.com/trickstertwo/unilog/internal/config"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.config, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}

// bootstrap points the unilog registry at unified adapters built from the
// loaded configuration. Facility output goes to the command's stderr; the
// fallback writes to stdout or stderr as configured. The returned func
// flushes the facility backend.
func (c *commandContext) bootstrap(cmd *cobra.Command) (func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	appID := cfg.AppID
	if appID == "" {
		appID = unified.DefaultAppID()
	}
	if appID == "" {
		return nil, errors.New("application identifier could not be resolved; set app_id or " + unified.AppIDEnv)
	}

	fallbackOut := cmd.ErrOrStderr()
	if cfg.FallbackOutput == config.OutputStdout {
		fallbackOut = cmd.OutOrStdout()
	}
	fallback := unified.NewWriterFallback(fallbackOut, appID)
	facility, flush := openFacility(cfg.Facility, cmd.ErrOrStderr())

	unilog.Bootstrap(func(label string) unilog.Handler {
		return unified.New(label,
			unified.WithAppID(appID),
			unified.WithFacility(facility),
			unified.WithFallback(fallback),
			unified.WithMinLevel(cfg.LevelFor(label)),
			unified.WithMetadata(cfg.MetadataFor(label)),
		)
	})
	return flush, nil
}

// adapterFor returns the unified adapter behind label's registry logger.
func adapterFor(label string) (*unified.Adapter, error) {
	a, ok := unilog.Get(label).Handler().(*unified.Adapter)
	if !ok {
		return nil, errors.New("registry is not backed by the unified adapter")
	}
	return a, nil
}
