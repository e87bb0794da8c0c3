package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes follow the SAT-competition convention
const (
	exitSatisfiable        = 10
	exitUnsatisfiable      = 20
	exitVerificationFailed = 15
)

// exitError ends the execution with the given exit code; the message (if any) is printed to the standard error
type exitError struct {
	code    int
	message string
}

func (err *exitError) Error() string {
	return fmt.Sprintf("exit code %d: %s", err.code, err.message)
}

func main() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var exit *exitError
	if errors.As(err, &exit) {
		if exit.message != "" {
			fmt.Fprintln(os.Stderr, exit.message)
		}
		os.Exit(exit.code)
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
