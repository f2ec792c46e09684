package cmd

import (
	"fmt"

	"github.com/masmgr/versioncheck/internal/version"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// ExtractCmd returns the extract command.
func ExtractCmd() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Print the version declared in the metadata file",
		ArgsUsage: "[file]",
		Flags: append(globalFlags(),
			&cli.StringFlag{
				Name:  "revision",
				Usage: "Read the file at this revision instead of the working copy",
			},
		),
		Action: extractAction,
	}
}

func extractAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	defer ctx.Close()

	if c.NArg() > 0 {
		ctx.Config.TargetFile = c.Args().First()
	}
	target, err := ctx.TargetFile()
	if err != nil {
		return err
	}

	var contents string
	if rev := c.String("revision"); rev != "" {
		contents, err = ctx.Retriever().FileContents(c.Context, target, rev)
	} else {
		contents, err = ctx.Workspace.ReadFile(target)
	}
	if err != nil {
		return err
	}

	v, err := version.Extract(contents)
	if err != nil {
		return fmt.Errorf("%s: %w", target, err)
	}
	if n := version.CountMatches(contents); n > 1 {
		ctx.Logger.Warn("Multiple version declarations found, using the first",
			zap.String("file", target), zap.Int("count", n))
	}

	fmt.Fprintln(c.App.Writer, v)
	return nil
}
