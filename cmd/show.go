package cmd

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
)

// ShowCmd returns the show command.
func ShowCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the metadata file as it exists at a revision",
		ArgsUsage: "<revision> [file]",
		Flags:     globalFlags(),
		Action:    showAction,
	}
}

func showAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("revision is required")
	}

	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	defer ctx.Close()

	if c.NArg() > 1 {
		ctx.Config.TargetFile = c.Args().Get(1)
	}
	target, err := ctx.TargetFile()
	if err != nil {
		return err
	}

	contents, err := ctx.Retriever().FileContents(c.Context, target, c.Args().First())
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.App.Writer, contents)
	return err
}
