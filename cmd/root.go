package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/masmgr/versioncheck/config"
	"github.com/urfave/cli/v2"
)

// ErrCheckFailed is returned when the check ran and reported a failure.
// The failure message has already been emitted through the reporter.
var ErrCheckFailed = errors.New("version check failed")

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "versioncheck",
		Usage:   "Fail a pull request whose metadata version differs from the default branch",
		Version: "1.0.0",
		Commands: []*cli.Command{
			CheckCmd(),
			ExtractCmd(),
			ShowCmd(),
			InitCmd(),
		},
		Flags:  append(globalFlags(), checkFlags()...),
		Action: checkAction,
	}
}

// Flags shared by every command
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file (default: .versioncheck.{json,yaml,yml} in the repository)",
		},
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository (default: $GITHUB_WORKSPACE or .)",
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "Metadata file or glob matching exactly one file (default: metadata.rb)",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "How to read the default branch (cli, go-git)",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging (also enabled by RUNNER_DEBUG=1)",
		},
	}
}

// loadConfig loads configuration from file or defaults and applies CLI overrides.
func loadConfig(c *cli.Context, repoPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(repoPath, c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if v := c.String("file"); v != "" {
		cfg.TargetFile = v
	}
	if v := c.String("backend"); v != "" {
		cfg.Backend = config.Backend(v)
	}
	if v := c.String("format"); v != "" {
		cfg.Output.Format = v
	}
	if v := c.String("supported-event"); v != "" {
		cfg.SupportedEvent = v
	}
	if c.Bool("summary") {
		cfg.Output.Summary = true
	}
	if c.Bool("debug") {
		cfg.Logging.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		if !errors.Is(err, ErrCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
