package cmd

import (
	"errors"
	"time"

	"github.com/masmgr/versioncheck/internal/actions"
	"github.com/masmgr/versioncheck/internal/check"
	"github.com/masmgr/versioncheck/internal/output"
	"github.com/urfave/cli/v2"
)

// CheckCmd returns the check command.
func CheckCmd() *cli.Command {
	return &cli.Command{
		Name:   "check",
		Usage:  "Compare the metadata version with the pull request's default branch",
		Flags:  append(globalFlags(), checkFlags()...),
		Action: checkAction,
	}
}

func checkFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "event-name",
			Usage: "Triggering event (default: $GITHUB_EVENT_NAME)",
		},
		&cli.StringFlag{
			Name:  "event-path",
			Usage: "Path to the event payload (default: $GITHUB_EVENT_PATH)",
		},
		&cli.StringFlag{
			Name:  "supported-event",
			Usage: "Event name the check accepts (default: pull_request)",
		},
		&cli.StringFlag{
			Name:  "github-output",
			Usage: "File receiving step outputs (default: $GITHUB_OUTPUT)",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "Report format (console, json, markdown, ci)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Report file path (default: stdout)",
		},
		&cli.BoolFlag{
			Name:  "summary",
			Usage: "Append a markdown report to $GITHUB_STEP_SUMMARY",
		},
	}
}

func checkAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	defer ctx.Close()

	reporter := actions.NewActionsReporter(firstNonEmpty(c.String("github-output"), ctx.Env.OutputPath), c.App.Writer)
	engine := check.NewEngine(ctx.Retriever(), ctx.Workspace, reporter, ctx.Logger, check.Options{
		TargetFile:     ctx.Config.TargetFile,
		SupportedEvent: ctx.Config.SupportedEvent,
	})

	input := check.Input{
		EventName: firstNonEmpty(c.String("event-name"), ctx.Env.EventName),
		EventPath: firstNonEmpty(c.String("event-path"), ctx.Env.EventPath),
	}
	result, runErr := engine.Run(c.Context, input)

	var failure *check.Failure
	if runErr != nil && !errors.As(runErr, &failure) {
		return runErr
	}

	report := &output.CheckReport{
		RepoPath:    ctx.RepoPath,
		EventName:   input.EventName,
		Backend:     string(ctx.Config.Backend),
		GeneratedAt: time.Now(),
		Result:      *result,
		Failure:     failure,
	}
	if err := writeCheckReport(c, ctx, report); err != nil {
		return err
	}

	if failure != nil || reporter.Failed() {
		return ErrCheckFailed
	}
	return nil
}
