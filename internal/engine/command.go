package engine

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const (
	defaultSqliteBin = "sqlite3"
	defaultDigestBin = "sha256sum"
)

// Command implements Engine by invoking the sqlite3 shell and a digest
// command from the host's search path. Both tools signal failure through
// their exit status; Check additionally reports through its stdout token.
type Command struct {
	SqliteBin string
	DigestBin string
}

func NewCommand() *Command {
	return &Command{
		SqliteBin: defaultSqliteBin,
		DigestBin: defaultDigestBin,
	}
}

func (c *Command) Backup(ctx context.Context, src, dst string) error {
	arg, err := dotQuote(dst)
	if err != nil {
		return fmt.Errorf("engine backup: %w", err)
	}
	if _, err := c.run(ctx, c.SqliteBin, src, ".backup "+arg); err != nil {
		return fmt.Errorf("engine backup: %w", err)
	}
	return nil
}

func (c *Command) Compact(ctx context.Context, src, dst string) error {
	_, err := c.run(ctx, c.SqliteBin, src, fmt.Sprintf("VACUUM INTO '%s'", sqlQuote(dst)))
	if err != nil {
		return fmt.Errorf("engine compact: %w", err)
	}
	return nil
}

func (c *Command) Check(ctx context.Context, path string) (string, error) {
	out, err := c.run(ctx, c.SqliteBin, path, "PRAGMA integrity_check;")
	if err != nil {
		return "", fmt.Errorf("engine check: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func (c *Command) Digest(ctx context.Context, path string) (string, error) {
	out, err := c.run(ctx, c.DigestBin, path)
	if err != nil {
		return "", fmt.Errorf("engine digest: %w", err)
	}
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return "", fmt.Errorf("engine digest: empty output for %s", path)
	}
	return strings.ToLower(fields[0]), nil
}

func (c *Command) run(ctx context.Context, bin string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, bin, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%s: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(out), nil
}

// sqlQuote escapes single quotes for use inside a SQL string literal.
func sqlQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// dotQuote wraps a path for the sqlite3 dot-command tokenizer. Inside a
// double-quoted argument the shell understands only backslash escapes for
// quotes and backslashes; a line break cannot be represented at all.
func dotQuote(path string) (string, error) {
	if strings.ContainsAny(path, "\n\r") {
		return "", fmt.Errorf("path %q contains a line break", path)
	}
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(path)
	return `"` + escaped + `"`, nil
}
