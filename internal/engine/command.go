package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"svw.info/cube/internal/domain"
	"svw.info/cube/internal/ports"
)

// Command runs an engine executable once per solve, passing the facelet
// string as the last argument and reading the solution from stdout. The
// default executable is the kociemba command line tool.
type Command struct {
	Path    string
	Args    []string
	Env     map[string]string
	Timeout time.Duration
	Logger  *zap.Logger
}

func NewCommand(path string, args []string, env map[string]string, timeout time.Duration, logger *zap.Logger) *Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Command{Path: path, Args: args, Env: env, Timeout: timeout, Logger: logger}
}

func (c *Command) Solve(ctx context.Context, facelets string) (domain.Solution, ports.Stats, error) {
	start := time.Now()
	if err := checkFacelets(facelets); err != nil {
		return domain.Solution{}, ports.Stats{}, err
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	args := append(append([]string{}, c.Args...), facelets)
	cmd := exec.CommandContext(ctx, c.Path, args...)
	cmd.Env = c.environ()
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.Logger.Debug("engine call", zap.String("path", c.Path), zap.String("facelets", facelets))
	err := cmd.Run()
	st := ports.Stats{Duration: time.Since(start)}

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return domain.Solution{}, st, &domain.RejectedError{
				Diagnostic: fmt.Sprintf("engine timed out after %s", c.Timeout),
				Err:        ctxErr,
			}
		}
		return domain.Solution{}, st, ctxErr
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return domain.Solution{}, st, fmt.Errorf("run engine %s: %w", c.Path, err)
		}
		diag := lastLine(stderr.String())
		if diag == "" {
			diag = lastLine(stdout.String())
		}
		if diag == "" {
			diag = fmt.Sprintf("engine exited with status %d", exitErr.ExitCode())
		}
		return domain.Solution{}, st, &domain.RejectedError{Diagnostic: diag}
	}

	sol, err := ParseSolution(stdout.String())
	st.Moves = len(sol.Moves)
	c.Logger.Debug("engine done", zap.Int("moves", st.Moves), zap.Duration("dur", st.Duration))
	return sol, st, err
}

func (c *Command) environ() []string {
	env := os.Environ()
	keys := make([]string, 0, len(c.Env))
	for k := range c.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+c.Env[k])
	}
	return env
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
