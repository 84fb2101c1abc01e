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

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/source"
	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/verify"
	"github.com/H0llyW00dzZ/tls-root-bundle/src/logger"
)

// ErrVerifyFailed is returned in strict mode when at least one URL failed.
var ErrVerifyFailed = errors.New("cli: one or more URLs failed verification")

// Default verifier settings.
const (
	DefaultCertsFile = "roots.pem"
	DefaultURLsFile  = "urls.txt"
)

type verifyOptions struct {
	certs   string
	urls    string
	timeout time.Duration
	table   bool
	noColor bool
	strict  bool
}

// statusPainter colors status words. Each command owns its own instances so
// --no-color never leaks into the global color state.
type statusPainter struct {
	pass *color.Color
	fail *color.Color
	skip *color.Color
}

func newStatusPainter(noColor bool) *statusPainter {
	p := &statusPainter{
		pass: color.New(color.FgGreen, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
		skip: color.New(color.FgYellow),
	}
	if noColor {
		p.pass.DisableColor()
		p.fail.DisableColor()
		p.skip.DisableColor()
	}
	return p
}

func (p *statusPainter) print(w io.Writer, r verify.Result) {
	var c *color.Color
	switch r.Status {
	case verify.StatusPass:
		c = p.pass
	case verify.StatusFail:
		c = p.fail
	default:
		c = p.skip
	}

	status := c.Sprint(string(r.Status))
	if r.Status == verify.StatusPass || r.Err == nil {
		fmt.Fprintf(w, "%s %s\n", status, r.URL)
		return
	}
	fmt.Fprintf(w, "%s %s %v\n", status, r.URL, r.Err)
}

// NewVerifyCommand returns the bundle verifier command.
func NewVerifyCommand(version string, log logger.Logger, env *Env) *cobra.Command {
	opts := &verifyOptions{}
	exe := posix.ExecutableName(verifierFallbackName)

	cmd := &cobra.Command{
		Use:   exe + " [flags]",
		Short: "Check that a root bundle can reach a list of HTTPS URLs",
		Long: `Requests every URL of the URL list trusting only the certificates of the
bundle. A URL whose certificate cannot be verified against the bundle is
reported as FAIL; any other problem (DNS, refused connection, timeout) is
reported as SKIP.`,
		Example: fmt.Sprintf(`  %[1]s
  %[1]s --certs roots.pem --urls urls.txt --table --strict`, exe),
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd.Context(), version, opts, log, env)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.certs, "certs", DefaultCertsFile, "PEM bundle to trust")
	flags.StringVar(&opts.urls, "urls", DefaultURLsFile, "file with one URL per line")
	flags.DurationVar(&opts.timeout, "timeout", verify.DefaultTimeout, "timeout for each request")
	flags.BoolVar(&opts.table, "table", false, "print a markdown table of all results")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored status output")
	flags.BoolVar(&opts.strict, "strict", false, "exit with an error when any URL fails")

	return cmd
}

func runVerify(ctx context.Context, version string, opts *verifyOptions, log logger.Logger, env *Env) error {
	pool, n, err := verify.LoadPool(env.Fs, opts.certs)
	if err != nil {
		return err
	}

	urls, err := verify.ReadURLsFile(env.Fs, opts.urls)
	if err != nil {
		return err
	}
	log.Printf("checking %d URLs against %d certificates from %s", len(urls), n, opts.certs)

	checker := verify.NewChecker(pool, source.NewHTTPConfig(version).GetUserAgent())
	checker.Timeout = opts.timeout

	painter := newStatusPainter(opts.noColor)
	summary, err := checker.Run(ctx, urls, func(r verify.Result) {
		painter.print(env.Stdout, r)
	})
	if err != nil {
		return err
	}

	log.Printf("%d passed, %d failed, %d skipped", summary.Pass, summary.Fail, summary.Skip)

	if opts.table {
		fmt.Fprintln(env.Stdout, summary.RenderTable())
	}

	if opts.strict && summary.Fail > 0 {
		return fmt.Errorf("%w: %d of %d", ErrVerifyFailed, summary.Fail, len(urls))
	}

	return nil
}

// ExecuteVerify runs the verifier command with the process arguments.
func ExecuteVerify(ctx context.Context, version string, log logger.Logger) error {
	cmd := NewVerifyCommand(version, log, DefaultEnv())
	return cmd.ExecuteContext(ctx)
}
