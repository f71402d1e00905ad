// Package gitinfo shells out to git for repository facts used by the
// pre-push review hook. Every invocation carries a bounded timeout, and a
// timeout is treated as a non-fatal failure: callers get zero values, not
// errors.
package gitinfo

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds each git invocation.
const DefaultTimeout = 30 * time.Second

// Client runs git commands inside one repository.
type Client struct {
	dir     string
	timeout time.Duration
}

// NewClient creates a Client for the given working directory.
// timeout <= 0 falls back to DefaultTimeout.
func NewClient(dir string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{dir: dir, timeout: timeout}
}

// run executes git with the client's timeout. Any failure, timeouts
// included, yields ok=false.
func (c *Client) run(args ...string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.dir
	out, err := cmd.Output()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(out)), true
}

// CurrentBranch returns the checked-out branch name, or "unknown" when
// git is unavailable or the directory is not a repository.
func (c *Client) CurrentBranch() string {
	if out, ok := c.run("branch", "--show-current"); ok && out != "" {
		return out
	}
	return "unknown"
}

// UnpushedCommits counts commits not yet on the upstream branch. Without
// an upstream it falls back to counting up to the last 20 commits on the
// current branch. Returns 0 when git fails.
func (c *Client) UnpushedCommits() int {
	out, ok := c.run("log", "@{u}..HEAD", "--oneline")
	if !ok {
		out, ok = c.run("log", "HEAD", "--oneline", "-n", "20")
	}
	if !ok || out == "" {
		return 0
	}
	return len(strings.Split(out, "\n"))
}
