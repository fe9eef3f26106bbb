package config

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/valyala/fasttemplate"
	"github.com/wmw9/twitchvod"
)

// Streams is what an executor may touch: the driver's stdio and its logger.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Log    log.FieldLogger
}

// Executor is either Print or *Command.
type Executor interface {
	Execute(values map[string]string, s Streams) error
	executor()
}

// Print writes the manifest url to stdout.
type Print struct{}

func (Print) executor() {}

func (Print) Execute(values map[string]string, s Streams) error {
	u, ok := values["url"]
	if !ok {
		return fmt.Errorf("%w: missing placeholder %q", twitchvod.ErrTemplateRender, "url")
	}
	_, err := fmt.Fprintln(s.Stdout, u)
	return err
}

// Command runs a user program. The first template is the program, the rest are
// its arguments.
type Command struct {
	Name      string
	templates []*fasttemplate.Template
}

func (*Command) executor() {}

func NewCommand(name string, templates []string) (*Command, error) {
	if err := validate.Var(templates, "min=1"); err != nil {
		return nil, fmt.Errorf("%w: executor %q has no program", twitchvod.ErrInvalidCommand, name)
	}

	c := &Command{Name: name, templates: make([]*fasttemplate.Template, 0, len(templates))}
	for _, s := range templates {
		t, err := fasttemplate.NewTemplate(s, "${", "}")
		if err != nil {
			return nil, fmt.Errorf("%w: executor %q: %v", twitchvod.ErrInvalidCommand, name, err)
		}
		c.templates = append(c.templates, t)
	}
	return c, nil
}

// Render substitutes every ${key} in the templates and returns the argv.
func (c *Command) Render(values map[string]string) ([]string, error) {
	argv := make([]string, 0, len(c.templates))
	for _, t := range c.templates {
		var missing string
		s, err := t.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
			v, ok := values[strings.TrimSpace(tag)]
			if !ok {
				missing = tag
				return 0, errors.New("missing placeholder")
			}
			return w.Write([]byte(v))
		})
		if err != nil {
			if missing != "" {
				return nil, fmt.Errorf("%w: executor %q: unknown placeholder %q", twitchvod.ErrTemplateRender, c.Name, missing)
			}
			return nil, fmt.Errorf("%w: executor %q: %v", twitchvod.ErrTemplateRender, c.Name, err)
		}
		argv = append(argv, s)
	}
	return argv, nil
}

// Execute renders the templates, runs the program and waits for it. A non-zero
// exit status is logged but not returned.
func (c *Command) Execute(values map[string]string, s Streams) error {
	argv, err := c.Render(values)
	if err != nil {
		return err
	}

	logger := s.Log
	if logger == nil {
		logger = log.StandardLogger()
	}
	logger.Debugf("executor %s: %q", c.Name, argv)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.Exited() {
			// A non-zero exit is reported but not treated as failure.
			logger.Warnf("executor %s: %s exited with status %d", c.Name, argv[0], exitErr.ExitCode())
			return nil
		}
		return &ExecError{Name: c.Name, Args: argv, ExitCode: cmd.ProcessState.ExitCode(), Cause: err}
	}
	return nil
}

// ExecError is returned when the program could not be started or was killed.
type ExecError struct {
	Name     string
	Args     []string
	ExitCode int
	Cause    error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%v: executor %s: %s: %v", twitchvod.ErrExecutionFailed, e.Name, strings.Join(e.Args, " "), e.Cause)
}

func (e *ExecError) Unwrap() []error { return []error{twitchvod.ErrExecutionFailed, e.Cause} }
