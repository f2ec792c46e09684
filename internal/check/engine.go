// Package check compares the version declared in a metadata file on the
// default branch with the one in the working copy of a pull request.
package check

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/masmgr/versioncheck/internal/actions"
	"github.com/masmgr/versioncheck/internal/event"
	"github.com/masmgr/versioncheck/internal/git"
	"github.com/masmgr/versioncheck/internal/version"
	"github.com/masmgr/versioncheck/internal/workspace"
)

// Step output names.
const (
	OutputDefaultBranch        = "default_branch"
	OutputDefaultBranchVersion = "default_branch_version"
	OutputCurrentVersion       = "current_version"
)

const (
	DefaultTargetFile     = "metadata.rb"
	DefaultSupportedEvent = "pull_request"
)

// Options configures an Engine.
type Options struct {
	TargetFile     string
	SupportedEvent string
}

// Input describes the triggering workflow event.
type Input struct {
	EventName string
	EventPath string
}

// Result holds the values resolved by a run.
// On failure it is partially populated up to the failing step.
type Result struct {
	TargetFile           string
	DefaultBranch        string
	DefaultBranchVersion string
	CurrentVersion       string
	Matched              bool
}

// Engine runs the version check.
type Engine struct {
	retriever git.ContentRetriever
	files     workspace.Files
	reporter  actions.Reporter
	logger    *zap.Logger
	opts      Options
}

// NewEngine creates an engine. A nil logger disables logging.
func NewEngine(retriever git.ContentRetriever, files workspace.Files, reporter actions.Reporter, logger *zap.Logger, opts Options) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.TargetFile == "" {
		opts.TargetFile = DefaultTargetFile
	}
	if opts.SupportedEvent == "" {
		opts.SupportedEvent = DefaultSupportedEvent
	}
	return &Engine{
		retriever: retriever,
		files:     files,
		reporter:  reporter,
		logger:    logger,
		opts:      opts,
	}
}

// Run executes the check and stops at the first failure.
// The target file is resolved only after the trigger and payload are accepted.
// A failed check returns a *Failure that has already been passed to the reporter.
// Any other error means an output could not be written.
func (e *Engine) Run(ctx context.Context, in Input) (*Result, error) {
	target := e.opts.TargetFile
	res := &Result{TargetFile: target}

	if in.EventName != e.opts.SupportedEvent {
		return res, e.fail(FailureUnsupportedTrigger, nil,
			"This action only supports %s. Triggered by: %s", e.opts.SupportedEvent, in.EventName)
	}

	pr, err := event.LoadFile(in.EventPath)
	if err != nil {
		return res, e.fail(FailureInvalidPayload, err, "%s", err.Error())
	}
	e.logger.Debug("Event payload validated", zap.String("path", in.EventPath))

	branch := pr.Base.Repo.DefaultBranch
	if branch == "" {
		return res, e.fail(FailureMissingDefaultBranch, nil, "Default branch not found")
	}
	res.DefaultBranch = branch
	if err := e.setOutput(OutputDefaultBranch, branch); err != nil {
		return res, err
	}

	resolved, err := e.files.Resolve(target)
	if err != nil {
		return res, e.fail(FailureTargetFile, err, "Failed to resolve target file: %v", err)
	}
	if resolved != target {
		e.logger.Debug("Resolved target file", zap.String("pattern", target), zap.String("file", resolved))
	}
	target = resolved
	res.TargetFile = target

	contents, err := e.retriever.FileContents(ctx, target, branch)
	if err != nil {
		code := -1
		var retrievalErr *git.RetrievalError
		if errors.As(err, &retrievalErr) {
			code = retrievalErr.Code
		}
		return res, e.fail(FailureRetrieval, err, "%s, exit code: %d", strings.TrimSpace(err.Error()), code)
	}

	defaultVersion, err := e.extract(contents, target, branch)
	if err != nil {
		return res, err
	}
	res.DefaultBranchVersion = defaultVersion
	if err := e.setOutput(OutputDefaultBranchVersion, defaultVersion); err != nil {
		return res, err
	}

	current, err := e.files.ReadFile(target)
	if err != nil {
		return res, e.fail(FailureWorkingCopy, err, "%s", err.Error())
	}
	currentVersion, err := e.extract(current, target, "working copy")
	if err != nil {
		return res, err
	}
	res.CurrentVersion = currentVersion
	if err := e.setOutput(OutputCurrentVersion, currentVersion); err != nil {
		return res, err
	}

	if currentVersion != defaultVersion {
		return res, e.fail(FailureVersionMismatch, nil,
			"Version number in %s: %s does not match default branch version number: %s",
			target, currentVersion, defaultVersion)
	}

	res.Matched = true
	e.logger.Info("Version matches default branch",
		zap.String("file", target),
		zap.String("default_branch", branch),
		zap.String("version", currentVersion))
	return res, nil
}

func (e *Engine) extract(contents, target, source string) (string, error) {
	v, err := version.Extract(contents)
	if err != nil {
		return "", e.fail(FailureVersionNotFound, err, "Failed to get version number: %v", err)
	}
	if n := version.CountMatches(contents); n > 1 {
		e.logger.Warn("Multiple version declarations found, using the first",
			zap.String("file", target),
			zap.String("source", source),
			zap.Int("count", n),
			zap.String("version", v))
	}
	e.logger.Debug("Version extracted", zap.String("source", source), zap.String("version", v))
	return v, nil
}

func (e *Engine) setOutput(name, value string) error {
	if err := e.reporter.SetOutput(name, value); err != nil {
		return fmt.Errorf("failed to set output %s: %w", name, err)
	}
	return nil
}

func (e *Engine) fail(kind FailureKind, cause error, format string, args ...any) *Failure {
	f := &Failure{Kind: kind, Message: fmt.Sprintf(format, args...), Err: cause}
	e.logger.Debug("Check failed", zap.Stringer("kind", kind), zap.Error(cause))
	e.reporter.SetFailed(f.Message)
	return f
}
