// Command fcheck checks that FC programs are lexically and syntactically
// well-formed.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

// exitCode reports err to stderr and maps it to a process exit status:
// 0 success, 1 rejected program, 2 usage or I/O failure.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(os.Stderr, "fcheck: %v\n", ee.err)
		}
		return ee.code
	}
	fmt.Fprintf(os.Stderr, "fcheck: %v\n", err)
	return 2
}

// exitError carries a specific exit status out of a command.
type exitError struct {
	code int
	err  error // reported on stderr if non-nil
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit status %d", e.code)
}

func (e *exitError) Unwrap() error { return e.err }
