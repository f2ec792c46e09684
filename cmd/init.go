package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/masmgr/versioncheck/config"
	"github.com/masmgr/versioncheck/internal/actions"
	"github.com/urfave/cli/v2"
)

const defaultConfigName = ".versioncheck.json"

// InitCmd returns the init command.
func InitCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Write a configuration file with the effective settings",
		ArgsUsage: "[path]",
		Flags: append(globalFlags(),
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing configuration file",
			},
		),
		Action: initAction,
	}
}

func initAction(c *cli.Context) error {
	env := actions.LoadEnvironmentFromOS()
	repoPath := firstNonEmpty(c.String("repo"), env.Workspace, ".")

	cfg, err := loadConfig(c, repoPath)
	if err != nil {
		return err
	}

	path := filepath.Join(repoPath, defaultConfigName)
	if c.NArg() > 0 {
		path = c.Args().First()
	}
	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveConfig(cfg, path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "Wrote %s\n", path)
	return nil
}
