package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/rescontext"
)

// Run executes the process command.
func (c *ProcessCmd) Run(deps *Dependencies) error {
	raw, err := io.ReadAll(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rescontext.ErrorMessage(err))
		return err
	}

	pipeline := deps.Pipeline
	if pipeline == nil {
		pipeline = &rescontext.Pipeline{}
	}
	pipeline.MaxChars = c.MaxChars

	formatted := pipeline.Process(string(raw), c.Query, c.Source)
	if formatted == "" {
		return rescontext.Errorf(rescontext.EINVALID, "no content could be extracted from input")
	}

	fmt.Fprintln(deps.Stdout, formatted)
	return nil
}
