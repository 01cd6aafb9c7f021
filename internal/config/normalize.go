package config

import "strings"

func (c *Config) normalize() {
	c.AppID = strings.TrimSpace(c.AppID)
	c.Facility = lowerOr(c.Facility, defaultFacility)
	c.MinLevel = lowerOr(c.MinLevel, defaultMinLevel)
	c.FallbackOutput = lowerOr(c.FallbackOutput, defaultFallbackOutput)

	for name, lc := range c.Labels {
		lc.MinLevel = strings.ToLower(strings.TrimSpace(lc.MinLevel))
		c.Labels[name] = lc
	}
}

func lowerOr(v, def string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return def
	}
	return v
}
