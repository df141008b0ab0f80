package harness

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/ESloman/cslo/internal/errors"
)

// DefaultInterpreterPath is where the build drops the interpreter binary.
const DefaultInterpreterPath = "./build/cslo"

// Interpreter invokes the cslo binary on a single script, capturing stdout
// and discarding stderr.
type Interpreter struct {
	Path   string
	logger Logger
}

// NewInterpreter creates an interpreter runner for the binary at path.
func NewInterpreter(path string, logger Logger) *Interpreter {
	if path == "" {
		path = DefaultInterpreterPath
	}
	if logger == nil {
		logger = NopLogger{}
	}
	return &Interpreter{Path: path, logger: logger}
}

// CheckPreconditions verifies the interpreter binary exists and is
// executable, returning a coded error naming which precondition failed.
func (i *Interpreter) CheckPreconditions() error {
	info, err := os.Stat(i.Path)
	if err != nil || info.IsDir() {
		return errors.New(errors.CodeInterpreterNotFound,
			fmt.Sprintf("interpreter binary not found at %s", i.Path))
	}
	if info.Mode().Perm()&0111 == 0 {
		return errors.New(errors.CodeInterpreterNotExecutable,
			fmt.Sprintf("interpreter binary at %s is not executable", i.Path))
	}
	return nil
}

// Run executes the interpreter with the script path as its only argument
// and returns the captured stdout. A non-zero exit comes back as a coded
// EXIT_FAILURE error carrying the process exit information. If ctx is
// cancelled while the process runs, ctx's error is returned so callers can
// distinguish an interrupt from a test failure.
func (i *Interpreter) Run(ctx context.Context, scriptPath string) ([]byte, error) {
	i.logger.Debug("interpreter path", "path", i.Path)
	if err := i.CheckPreconditions(); err != nil {
		i.logger.Error("interpreter precondition failed", "error", err)
		return nil, err
	}

	cmd := exec.CommandContext(ctx, i.Path, scriptPath)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard

	err := cmd.Run()
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return stdout.Bytes(), errors.Wrap(err, errors.CodeExitFailure,
				fmt.Sprintf("interpreter exited with status %d for %s", exitErr.ExitCode(), scriptPath))
		}
		return nil, fmt.Errorf("failed to launch interpreter: %w", err)
	}
	return stdout.Bytes(), nil
}
