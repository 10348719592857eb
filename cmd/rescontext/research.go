package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/rescontext"
)

// Run executes the research command.
func (c *ResearchCmd) Run(deps *Dependencies) error {
	gathered, err := deps.Aggregator.Gather(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rescontext.ErrorMessage(err))
		return err
	}

	if gathered.SourcesFailed > 0 {
		fmt.Fprintf(deps.Stderr, "warning: %d source(s) failed\n", gathered.SourcesFailed)
	}

	if gathered.Context == "" {
		fmt.Fprintf(deps.Stdout, "No results found for %q.\n", c.Query)
		return nil
	}

	fmt.Fprintln(deps.Stdout, gathered.Context)

	var answer string
	if c.Answer {
		if deps.Synthesizer == nil {
			return rescontext.Errorf(rescontext.EINVALID, "answer synthesis not configured")
		}
		answer, err = deps.Synthesizer.Synthesize(deps.Ctx, c.Query, gathered.Context)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rescontext.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "\n## Answer\n\n%s\n", answer)
	}

	if c.Save {
		report := &rescontext.Report{
			Query:     c.Query,
			Context:   gathered.Context,
			Answer:    answer,
			Results:   gathered.Results,
			CreatedAt: time.Now(),
		}
		path, err := deps.Writer.WriteReport(deps.Ctx, report)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rescontext.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "\nSaved report to %s\n", path)
	}

	return nil
}
