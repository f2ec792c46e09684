package actions

import (
	"os"
	"strings"
)

// Environment holds the GitHub Actions variables the check consumes.
type Environment struct {
	EventName   string // GITHUB_EVENT_NAME
	EventPath   string // GITHUB_EVENT_PATH
	Workspace   string // GITHUB_WORKSPACE
	OutputPath  string // GITHUB_OUTPUT
	SummaryPath string // GITHUB_STEP_SUMMARY
	Debug       bool   // RUNNER_DEBUG=1
}

// LoadEnvironment reads the environment with the given lookup function.
func LoadEnvironment(getenv func(string) string) Environment {
	return Environment{
		EventName:   getenv("GITHUB_EVENT_NAME"),
		EventPath:   getenv("GITHUB_EVENT_PATH"),
		Workspace:   getenv("GITHUB_WORKSPACE"),
		OutputPath:  getenv("GITHUB_OUTPUT"),
		SummaryPath: getenv("GITHUB_STEP_SUMMARY"),
		Debug:       strings.TrimSpace(getenv("RUNNER_DEBUG")) == "1",
	}
}

// LoadEnvironmentFromOS reads the environment of the current process.
func LoadEnvironmentFromOS() Environment {
	return LoadEnvironment(os.Getenv)
}
