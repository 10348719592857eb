package main

import (
	"fmt"

	"github.com/fwojciec/rescontext"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rescontext.ErrorMessage(err))
		return err
	}

	article, err := deps.Articles.ExtractArticle(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rescontext.ErrorMessage(err))
		return err
	}

	markdown, err := deps.Converter.Convert(article.ContentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rescontext.ErrorMessage(err))
		return err
	}

	if article.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", article.Title)
	}
	fmt.Fprintln(deps.Stdout, markdown)
	return nil
}
