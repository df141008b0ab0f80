package harness

import (
	"context"
)

// CaseRunner executes one test case and reports pass/fail. A non-nil error
// means the run was interrupted and the caller should stop iterating; every
// other failure is folded into the boolean result.
type CaseRunner interface {
	Execute(ctx context.Context, scriptPath string, checkOutput bool) (bool, error)
}

// CaseExecutor orchestrates a single case: classify the expectation, run
// the interpreter, optionally verify output, and reconcile what happened
// against what was expected.
type CaseExecutor struct {
	classifier  *Classifier
	interpreter *Interpreter
	golden      *GoldenChecker
	logger      Logger
}

var _ CaseRunner = (*CaseExecutor)(nil)

// NewCaseExecutor wires a case executor from its collaborators. A nil
// logger degrades to a no-op.
func NewCaseExecutor(classifier *Classifier, interpreter *Interpreter, golden *GoldenChecker, logger Logger) *CaseExecutor {
	if logger == nil {
		logger = NopLogger{}
	}
	return &CaseExecutor{
		classifier:  classifier,
		interpreter: interpreter,
		golden:      golden,
		logger:      logger,
	}
}

// Execute runs one script and reconciles the outcome:
//
//	expected to fail, exited non-zero  -> pass
//	expected to fail, exited zero      -> fail (regression: error case went silent)
//	not expected, exited non-zero      -> fail
//	not expected, exited zero          -> pass, unless output checking is on
//	                                      and the golden file disagrees
//
// An interrupt while the interpreter runs is propagated, not recorded as a
// case failure.
func (e *CaseExecutor) Execute(ctx context.Context, scriptPath string, checkOutput bool) (bool, error) {
	e.logger.Verbose("found script", "path", scriptPath)

	expectedFail, err := e.classifier.IsExpectedError(scriptPath)
	if err != nil {
		e.logger.Error("could not classify script", "path", scriptPath, "error", err)
		return false, nil
	}
	e.logger.Verbose("expected error status", "path", scriptPath, "expected", expectedFail)

	output, err := e.interpreter.Run(ctx, scriptPath)
	if ctx.Err() != nil {
		e.logger.Warn("execution interrupted by user")
		e.logger.Debug("last script was", "path", scriptPath)
		return false, ctx.Err()
	}
	if err != nil {
		if expectedFail {
			e.logger.Warn("expected error", "path", scriptPath, "error", err)
			return true, nil
		}
		e.logger.Error("unexpected error", "path", scriptPath, "error", err)
		return false, nil
	}

	if expectedFail {
		// The script ran clean when it was supposed to fail.
		e.logger.Error("script did not error when expected to", "path", scriptPath)
		return false, nil
	}

	if checkOutput {
		match, err := e.golden.Matches(scriptPath, output)
		if err != nil {
			e.logger.Error("could not verify output", "path", scriptPath, "error", err)
			return false, nil
		}
		if !match {
			e.logger.Error("output did not match expected output", "path", scriptPath)
			return false, nil
		}
	}

	e.logger.Verbose("executed", "path", scriptPath)
	return true, nil
}
