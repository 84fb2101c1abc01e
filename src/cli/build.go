// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/bundle"
	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/filter"
	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/source"
	x509certs "github.com/H0llyW00dzZ/tls-root-bundle/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/tls-root-bundle/src/logger"
)

// ErrNoSources indicates that the source list resolved to nothing.
var ErrNoSources = errors.New("cli: at least one source is required")

// Default builder settings.
const (
	DefaultSourceURL     = "https://curl.se/ca/cacert.pem"
	DefaultSupplement    = "supplement.pem"
	DefaultOutput        = "roots.pem"
	DefaultIncludeFile   = "include.txt"
	DefaultExcludeFile   = "exclude.txt"
	stdoutPath           = "-"
	builderFallbackName  = "tls-root-bundle"
	verifierFallbackName = "tls-root-bundle-verify"
)

// buildOptions holds the resolved builder settings.
type buildOptions struct {
	sources    []string
	out        string
	include    string
	exclude    string
	comment    bool
	table      bool
	verbose    bool
	timeout    time.Duration
	logFormat  string
	configFile string
}

// NewBuildCommand returns the root bundle builder command.
func NewBuildCommand(version string, log logger.Logger, env *Env) *cobra.Command {
	opts := &buildOptions{}
	exe := posix.ExecutableName(builderFallbackName)

	cmd := &cobra.Command{
		Use:   exe + " [flags]",
		Short: "Build a filtered root certificate bundle",
		Long: `Downloads or reads PEM certificate sources, concatenates them in order and
writes the certificates whose issuer Organization-Name or Common-Name matches
an include pattern and no exclude pattern.

Pattern files hold one case-insensitive regular expression per line; blank
lines and lines starting with '#' are ignored.`,
		Example: fmt.Sprintf(`  %[1]s
  %[1]s -s https://curl.se/ca/cacert.pem -s corp-roots.pem -o roots.pem --comment
  %[1]s --config bundle.yaml --table`, exe),
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.applyConfig(cmd, env); err != nil {
				return err
			}
			return runBuild(cmd.Context(), version, opts, log, env)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.sources, "sources", "s", []string{DefaultSourceURL, DefaultSupplement}, "PEM source URL or path; repeat to concatenate several in order")
	flags.StringVarP(&opts.out, "out", "o", DefaultOutput, `output bundle path ("-" for stdout)`)
	flags.StringVarP(&opts.include, "include", "i", DefaultIncludeFile, "file of issuer patterns to include")
	flags.StringVarP(&opts.exclude, "exclude", "e", DefaultExcludeFile, "file of issuer patterns to exclude")
	flags.BoolVarP(&opts.comment, "comment", "c", false, `precede each certificate with a "# O=..., CN=..." line`)
	flags.BoolVar(&opts.table, "table", false, "print a markdown table of every certificate and its decision")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "trace pattern matches on stderr")
	flags.DurationVar(&opts.timeout, "timeout", source.DefaultTimeout, "timeout for each source download")
	flags.StringVar(&opts.logFormat, "log-format", logFormatText, `progress log format, "text" or "json"`)
	flags.StringVar(&opts.configFile, "config", "", "JSON or YAML file providing defaults for the flags above")

	return cmd
}

// applyConfig fills every flag not set on the command line from the config file.
func (o *buildOptions) applyConfig(cmd *cobra.Command, env *Env) error {
	if o.configFile == "" {
		return nil
	}

	cfg, err := loadConfig(env.Fs, o.configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("sources") && cfg.Sources != nil {
		o.sources = cfg.Sources
	}
	if !flags.Changed("out") && cfg.Out != "" {
		o.out = cfg.Out
	}
	if !flags.Changed("include") && cfg.Include != "" {
		o.include = cfg.Include
	}
	if !flags.Changed("exclude") && cfg.Exclude != "" {
		o.exclude = cfg.Exclude
	}
	if !flags.Changed("comment") && cfg.Comment != nil {
		o.comment = *cfg.Comment
	}
	if !flags.Changed("timeout") && cfg.TimeoutSeconds > 0 {
		o.timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return nil
}

// runBuild loads the policy, retrieves and parses every source, then writes
// the selected certificates. Patterns are validated before any download, and
// all sources are parsed before the output is touched.
func runBuild(ctx context.Context, version string, opts *buildOptions, log logger.Logger, env *Env) error {
	log, trace, err := env.loggers(log, opts.logFormat, opts.verbose, opts.out == stdoutPath)
	if err != nil {
		return err
	}

	if len(opts.sources) == 0 {
		return ErrNoSources
	}

	include, err := filter.LoadFile(env.Fs, opts.include)
	if err != nil {
		return err
	}
	exclude, err := filter.LoadFile(env.Fs, opts.exclude)
	if err != nil {
		return err
	}
	log.Printf("loaded %d include and %d exclude patterns", len(include), len(exclude))

	fetcher := source.New(env.Fs, version)
	fetcher.HTTPConfig.Timeout = opts.timeout
	fetcher.Log = trace

	data, err := fetcher.Concat(ctx, opts.sources)
	if err != nil {
		return err
	}

	certs, err := x509certs.New().DecodeBundle(data)
	if err != nil {
		return fmt.Errorf("parse sources: %w", err)
	}

	assembler := bundle.New(&filter.Policy{Include: include, Exclude: exclude, Trace: trace}, opts.comment)
	assembler.Log = trace

	var res *bundle.Result
	assemble := func(w io.Writer) error {
		var err error
		res, err = assembler.Assemble(ctx, certs, w)
		return err
	}

	report := env.Stdout
	if opts.out == stdoutPath {
		report = env.Stderr
		err = assemble(env.Stdout)
	} else {
		err = bundle.WriteFile(env.Fs, opts.out, assemble)
	}
	if err != nil {
		return err
	}

	log.Printf("selected %d of %d certificates from %d sources into %s", res.Selected, res.Total, len(opts.sources), opts.out)

	if opts.table {
		fmt.Fprintln(report, res.RenderTable())
	}

	return nil
}

// Execute runs the builder command with the process arguments.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	cmd := NewBuildCommand(version, log, DefaultEnv())
	return cmd.ExecuteContext(ctx)
}
