// Package hook turns user-configured command templates into shell
// invocations and runs them at lifecycle points (run, cloud init/commit/push).
package hook

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"

	"goodgame/internal/registry"
)

// HookError reports a configured hook that failed to launch or exited
// non-zero.
type HookError struct {
	Desc     string
	ExitCode int
	Err      error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("%s hook failed with exit code %d: %v", e.Desc, e.ExitCode, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}

// Command is one ready-to-run shell invocation. A nil *Command means the
// hook is not configured.
type Command struct {
	Shell  string
	Script string
	// Extra KEY=VALUE pairs appended to the child environment.
	Env []string
}

// Build joins the templates with a logical AND and substitutes the
// recognized variables from the game, if one is supplied:
//
//	$EXE  the quoted executable path plus its quoted arguments
//	$GAME the game name
//
// Substitution is plain exact-token replacement: no escaping, no recursive
// expansion. An empty template list means "not configured" and yields nil.
func Build(shell string, templates []string, game *registry.Game) *Command {
	if len(templates) == 0 {
		return nil
	}
	script := strings.Join(templates, "&&")
	c := &Command{Shell: shell, Script: script}
	if game == nil {
		return c
	}
	c.Script = replaceVars(script, game)
	for _, kv := range game.EnvironmentVars {
		c.Env = append(c.Env, kv[0]+"="+kv[1])
	}
	return c
}

func replaceVars(script string, g *registry.Game) string {
	if g.Executable != "" {
		exe := quote(g.Executable)
		for _, arg := range g.ExecutableArgs {
			exe += " " + quote(arg)
		}
		script = strings.ReplaceAll(script, "$EXE", exe)
	}
	return strings.ReplaceAll(script, "$GAME", g.Name)
}

func quote(s string) string {
	return "'" + s + "'"
}

// Execute runs the command to completion with dir as its working directory.
// The child inherits stdio. A nil receiver or an empty shell means the hook
// is not configured, which is a soft no-op, not an error.
func (c *Command) Execute(desc, dir string) error {
	if c == nil || c.Shell == "" {
		log.Info().Str("hook", desc).Msg("not configured, skipping")
		return nil
	}

	log.Debug().Str("hook", desc).Str("dir", dir).Str("script", c.Script).Msg("running hook")
	cmd := exec.Command(c.Shell, "-c", c.Script)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	if err := cmd.Run(); err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			return &HookError{Desc: desc, ExitCode: exit.ExitCode(), Err: err}
		}
		return &HookError{Desc: desc, ExitCode: -1, Err: err}
	}
	return nil
}
