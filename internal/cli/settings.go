package cli

import (
	"github.com/shortlink-org/lazy/config"
)

// Settings are the configurable defaults of the commands.
type Settings struct {
	FibN  int
	Memo  bool
	Trace bool
}

// LoadSettings reads LAZY_* keys, registering their defaults first.
func LoadSettings(cfg *config.Config) Settings {
	cfg.SetDefault("LAZY_FIB_N", 10) //nolint:mnd // default index
	cfg.SetDefault("LAZY_FIB_MEMO", false)
	cfg.SetDefault("LAZY_TRACE", false)

	return Settings{
		FibN:  cfg.GetInt("LAZY_FIB_N"),
		Memo:  cfg.GetBool("LAZY_FIB_MEMO"),
		Trace: cfg.GetBool("LAZY_TRACE"),
	}
}
