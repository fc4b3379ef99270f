package cli

import (
	"github.com/spf13/pflag"

	"svg2svelte/internal/config"
)

// Flag names.
const (
	flagIncludeClass = "include-class"
	flagRecursive    = "recursive"
	flagJobs         = "jobs"
	flagExtension    = "extension"
	flagExclude      = "exclude"
	flagConfig       = "config"
	flagLogLevel     = "log-level"
	flagLogJSON      = "log-json"
	flagPrintConfig  = "print-config"
)

type flags struct {
	includeClass bool
	recursive    bool
	jobs         int
	extension    string
	exclude      []string
	configPath   string
	logLevel     string
	logJSON      bool
	printConfig  bool
}

func bindFlags(fs *pflag.FlagSet, f *flags) {
	fs.BoolVar(&f.includeClass, flagIncludeClass, false, "keep the root class attribute as a className prop")
	fs.BoolVarP(&f.recursive, flagRecursive, "r", false, "convert sub-directories too, mirroring them in the output")
	fs.IntVarP(&f.jobs, flagJobs, "j", 0, "number of files converted in parallel (default: number of CPUs)")
	fs.StringVar(&f.extension, flagExtension, "", "component file extension (default \".svelte\")")
	fs.StringSliceVar(&f.exclude, flagExclude, nil, "glob patterns of files to skip, relative to the input directory")
	fs.StringVarP(&f.configPath, flagConfig, "c", "", "config file (default: "+config.DefaultFileName+" in the input directory)")
	fs.StringVar(&f.logLevel, flagLogLevel, "", "log level: debug, info, warn, error, disabled")
	fs.BoolVar(&f.logJSON, flagLogJSON, false, "write logs as JSON")
	fs.BoolVar(&f.printConfig, flagPrintConfig, false, "print the effective configuration and exit")
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(fs *pflag.FlagSet, f *flags, cfg *config.Config) {
	if fs.Changed(flagIncludeClass) {
		cfg.IncludeClass = f.includeClass
	}

	if fs.Changed(flagRecursive) {
		cfg.Recursive = f.recursive
	}

	if fs.Changed(flagJobs) {
		cfg.Jobs = f.jobs
	}

	if fs.Changed(flagExtension) {
		cfg.Extension = f.extension
	}

	if fs.Changed(flagExclude) {
		cfg.Exclude = append(cfg.Exclude, f.exclude...)
	}

	if fs.Changed(flagLogLevel) {
		cfg.LogLevel = f.logLevel
	}

	if fs.Changed(flagLogJSON) {
		cfg.LogJSON = f.logJSON
	}
}
