package config

const (
	FacilityJournal  = "journal"
	FacilityZap      = "zap"
	FacilityZerolog  = "zerolog"
	FacilitySlog     = "slog"
	FacilityFallback = "fallback"

	OutputStderr = "stderr"
	OutputStdout = "stdout"
)

const (
	defaultFacility       = FacilityJournal
	defaultMinLevel       = "info"
	defaultFallbackOutput = OutputStderr
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Facility:       defaultFacility,
		MinLevel:       defaultMinLevel,
		FallbackOutput: defaultFallbackOutput,
	}
}
