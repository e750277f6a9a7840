package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirm prompts for an explicit "yes" before a destructive operation.
// The ledger core has no pending state; this gate is the whole
// confirmation mechanism.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s Type 'yes' to continue: ", prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	return strings.TrimSpace(line) == "yes"
}
