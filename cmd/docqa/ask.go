package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/docqa"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: could not read %q\n", c.File)
		return docqa.Errorf(docqa.EINVALID, "could not read file %q: %v", c.File, err)
	}

	if _, err := deps.Inspector.Inspect(data); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docqa.ErrorMessage(err))
		return err
	}

	segments, err := deps.Answerer.Answer(deps.Ctx, data, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docqa.ErrorMessage(err))
		return err
	}

	markdown := docqa.Render(docqa.Group(segments))

	fmt.Fprintln(deps.Stdout, markdown)
	return nil
}
