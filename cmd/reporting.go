package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/versioncheck/internal/output"
)

func writeCheckReport(c *cli.Context, ctx *CommandContext, report *output.CheckReport) error {
	opts := output.OutputOptions{
		Format:     output.ParseFormat(ctx.Config.Output.Format),
		OutputPath: c.String("output"),
	}
	if err := output.NewCheckReportWriter(opts.Format).Write(report, opts); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if !ctx.Config.Output.Summary || ctx.Env.SummaryPath == "" {
		return nil
	}
	summary := output.OutputOptions{
		Format:     output.FormatMarkdown,
		OutputPath: ctx.Env.SummaryPath,
		Append:     true,
	}
	if err := output.NewCheckReportWriter(summary.Format).Write(report, summary); err != nil {
		return fmt.Errorf("failed to write step summary: %w", err)
	}
	return nil
}
