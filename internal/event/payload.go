// Package event validates the pull request payload delivered with a workflow event.
package event

import (
	"fmt"
	"strings"
)

// MsgEmptyDefaultBranch is reported when base.repo.default_branch is an empty string.
const MsgEmptyDefaultBranch = "Default branch must be a non-empty string"

// PullRequest is the validated subset of a pull_request payload.
type PullRequest struct {
	Base Base `json:"base"`
}

// Base is the pull request's base (target) side.
type Base struct {
	Repo Repo `json:"repo"`
}

// Repo holds repository metadata of the base side.
type Repo struct {
	DefaultBranch string `json:"default_branch"`
}

// ValidationError describes why a payload was rejected.
// Path is the dotted location of the offending field.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks raw against the pull request shape and returns the typed payload.
// raw is expected to be the result of decoding JSON into an interface value.
func Validate(raw any) (*PullRequest, error) {
	root, err := object(raw, "")
	if err != nil {
		return nil, err
	}
	base, err := object(root["base"], "base")
	if err != nil {
		return nil, err
	}
	repo, err := object(base["repo"], "base.repo")
	if err != nil {
		return nil, err
	}

	const branchPath = "base.repo.default_branch"
	branch, ok := repo["default_branch"].(string)
	if !ok {
		return nil, typeMismatch(branchPath, "string", repo["default_branch"])
	}
	if branch == "" {
		return nil, &ValidationError{Path: branchPath, Message: MsgEmptyDefaultBranch}
	}

	return &PullRequest{Base: Base{Repo: Repo{DefaultBranch: branch}}}, nil
}

func object(v any, path string) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return nil, typeMismatch(path, "object", v)
	}
	return m, nil
}

func typeMismatch(path, expected string, got any) *ValidationError {
	location := path
	if location == "" {
		location = "pull_request"
	}
	return &ValidationError{
		Path:    path,
		Message: fmt.Sprintf("%s: expected %s, received %s", location, expected, typeName(got)),
	}
}

func typeName(v any) string {
	switch v := v.(type) {
	case nil:
		return "undefined"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		if v == nil {
			return "null"
		}
		return "object"
	default:
		return strings.TrimPrefix(fmt.Sprintf("%T", v), "*")
	}
}
