package cmd

import (
	"fmt"

	"github.com/masmgr/versioncheck/config"
	"github.com/masmgr/versioncheck/internal/actions"
	"github.com/masmgr/versioncheck/internal/git"
	"github.com/masmgr/versioncheck/internal/logging"
	"github.com/masmgr/versioncheck/internal/process"
	"github.com/masmgr/versioncheck/internal/workspace"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// CommandContext holds common state for command execution.
type CommandContext struct {
	Config    *config.Config
	Env       actions.Environment
	RepoPath  string
	Workspace *workspace.Workspace
	Logger    *zap.Logger
}

// NewCommandContext creates a context from CLI flags and the Actions environment.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	env := actions.LoadEnvironmentFromOS()

	repoPath := firstNonEmpty(c.String("repo"), env.Workspace, ".")

	cfg, err := loadConfig(c, repoPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Logging.Debug || env.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &CommandContext{
		Config:    cfg,
		Env:       env,
		RepoPath:  repoPath,
		Workspace: workspace.New(repoPath),
		Logger:    logger,
	}, nil
}

// Retriever returns the content retriever for the configured backend.
func (ctx *CommandContext) Retriever() git.ContentRetriever {
	if ctx.Config.Backend == config.BackendGoGit {
		return git.NewRepoRetriever(ctx.RepoPath)
	}
	return git.NewCLIRetriever(process.NewExecRunner(ctx.RepoPath))
}

// TargetFile resolves the configured target file against the working copy.
func (ctx *CommandContext) TargetFile() (string, error) {
	target, err := ctx.Workspace.Resolve(ctx.Config.TargetFile)
	if err != nil {
		return "", fmt.Errorf("failed to resolve target file: %w", err)
	}
	if target != ctx.Config.TargetFile {
		ctx.Logger.Debug("Resolved target file", zap.String("pattern", ctx.Config.TargetFile), zap.String("file", target))
	}
	return target, nil
}

// Close flushes the logger.
func (ctx *CommandContext) Close() {
	_ = ctx.Logger.Sync()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
