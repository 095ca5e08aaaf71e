package envedit

import (
	"EnvEdit/internal/config"
	"io"
	"os"
)

// Options controls how files are read and written.
type Options struct {
	Backup        bool
	SkipMalformed bool
	DryRun        bool

	// Out receives dry-run diffs and exports. Defaults to os.Stdout.
	Out io.Writer
}

// OptionsFromConfig returns the Options configured in conf.
func OptionsFromConfig(conf config.AppConfig) Options {
	return Options{
		Backup:        conf.Edit.Backup,
		SkipMalformed: conf.Edit.SkipMalformed,
	}
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}
