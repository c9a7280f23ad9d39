package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/suzuki-shunsuke/logrus-error/logerr"

	"github.com/revu-dev/revu/internal/adapters/outbound/gitinfo"
	"github.com/revu-dev/revu/internal/adapters/outbound/remote"
	"github.com/revu-dev/revu/internal/adapters/outbound/scanner"
	"github.com/revu-dev/revu/internal/adapters/outbound/tui"
	"github.com/revu-dev/revu/internal/application"
	"github.com/revu-dev/revu/internal/domain"
)

const stdinName = "<stdin>"

// ErrReviewFailed is returned when a result trips the --fail-on threshold.
var ErrReviewFailed = errors.New("review failed")

type reviewOptions struct {
	jsonOutput bool
	envelope   bool
	delay      time.Duration
	changed    bool
	failOn     string
	force      bool
	remoteURL  string
}

type reviewInput struct {
	name   string
	source string
}

// fileReport is emitted per input when more than one input is reviewed in
// JSON mode.
type fileReport struct {
	File     string                 `json:"file"`
	Result   *domain.AnalysisResult `json:"result,omitempty"`
	Envelope *domain.ChatEnvelope   `json:"envelope,omitempty"`
}

func newReviewCmd(root *rootOptions) *cobra.Command {
	opts := &reviewOptions{}

	cmd := &cobra.Command{
		Use:   "review [file|dir...]",
		Short: "Review source code from files or stdin",
		Long: "Review JavaScript/TypeScript source. Without arguments the source is read from stdin; " +
			"directories are walked for files with a configured extension.",
		Example: `  echo 'var x = 1;' | revu review
  revu review src/ --fail-on error
  revu review --changed --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(cmd, root, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the analysis result as JSON")
	cmd.Flags().BoolVar(&opts.envelope, "envelope", false, "Output the chat-completion envelope as JSON")
	cmd.Flags().DurationVar(&opts.delay, "delay", domain.DefaultDelay, "Artificial review latency (overrides delay_ms)")
	cmd.Flags().BoolVar(&opts.changed, "changed", false, "Review files changed in the git worktree")
	cmd.Flags().StringVar(&opts.failOn, "fail-on", "", "Exit non-zero on issues: error, warning or none (overrides fail_on)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Review input even if it does not look like source code")
	cmd.Flags().StringVar(&opts.remoteURL, "remote", "", "Send code to a revu server, e.g. http://localhost:3000/v1")
	cmd.MarkFlagsMutuallyExclusive("json", "envelope")

	return cmd
}

func runReview(cmd *cobra.Command, root *rootOptions, opts *reviewOptions, args []string) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("delay") {
		cfg.DelayMs = int(opts.delay / time.Millisecond)
	}
	if opts.failOn != "" {
		cfg.FailOn = opts.failOn
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	logE, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	inputs, err := collectInputs(cmd, scanner.New(), gitinfo.New(), cfg, opts, args, logE)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No files to review.")
		return nil
	}

	reviewer := newReviewer(cfg, opts)

	var (
		reports []fileReport
		failed  []string
	)
	for _, in := range inputs {
		if !opts.force && strings.TrimSpace(in.source) != "" && !root.detect(in.source) {
			if in.name == stdinName {
				return fmt.Errorf("%s: %w (use --force to review anyway)", in.name, domain.ErrNotCode)
			}
			logE.WithField("file", in.name).Warn("skipping input that does not look like source code")
			continue
		}

		logE.WithField("file", in.name).Debug("reviewing")
		result, err := reviewer.Review(cmd.Context(), in.source)
		if err != nil {
			return fmt.Errorf("reviewing %s: %w", in.name, err)
		}
		if result.Fails(cfg.FailOn) {
			failed = append(failed, in.name)
		}

		report := fileReport{File: in.name, Result: result}
		if opts.envelope {
			env, err := domain.NewChatEnvelope(result)
			if err != nil {
				return fmt.Errorf("building envelope for %s: %w", in.name, err)
			}
			report = fileReport{File: in.name, Envelope: env}
		}
		reports = append(reports, report)
	}

	if len(reports) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No files to review.")
		return nil
	}

	if err := writeReports(cmd.OutOrStdout(), reports, opts); err != nil {
		return err
	}

	if len(failed) > 0 {
		return fmt.Errorf("%w (--fail-on %s): %s", ErrReviewFailed, cfg.FailOn, strings.Join(failed, ", "))
	}
	return nil
}

func newReviewer(cfg domain.Config, opts *reviewOptions) domain.Reviewer {
	if opts.remoteURL != "" {
		return remote.New(opts.remoteURL)
	}
	return application.LocalReviewer{Service: application.NewReviewService(cfg)}
}

func collectInputs(cmd *cobra.Command, sources domain.SourceScanner, changes domain.ChangeLister, cfg domain.Config, opts *reviewOptions, args []string, logE *logrus.Entry) ([]reviewInput, error) {
	paths := args
	if opts.changed {
		if len(args) > 0 {
			return nil, errors.New("--changed does not take file arguments")
		}
		if !changes.IsGitRepo(".") {
			return nil, errors.New("--changed needs a git repository (none found from the current directory)")
		}
		changed, err := changes.ChangedFiles(".")
		if err != nil {
			return nil, fmt.Errorf("listing changed files: %w", err)
		}
		paths = nil
		for _, f := range changed {
			if cfg.HasExtension(f) {
				paths = append(paths, f)
			}
		}
		if len(paths) == 0 {
			return nil, nil
		}
	}

	if len(paths) == 0 {
		data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), scanner.MaxSourceSize))
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []reviewInput{{name: stdinName, source: string(data)}}, nil
	}

	files, err := sources.Collect(paths, cfg.Extensions)
	if err != nil {
		return nil, fmt.Errorf("collecting files: %w", err)
	}

	inputs := make([]reviewInput, 0, len(files))
	for _, f := range files {
		src, err := sources.ReadSource(f)
		if err != nil {
			logerr.WithError(logE.WithField("file", f), err).Warn("skipping unreadable file")
			continue
		}
		inputs = append(inputs, reviewInput{name: f, source: src})
	}
	return inputs, nil
}

func writeReports(w io.Writer, reports []fileReport, opts *reviewOptions) error {
	if !opts.jsonOutput && !opts.envelope {
		for _, r := range reports {
			fmt.Fprint(w, tui.RenderReview(r.File, r.Result))
		}
		return nil
	}

	var v any = reports
	if len(reports) == 1 {
		v = reports[0].Result
		if opts.envelope {
			v = reports[0].Envelope
		}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
