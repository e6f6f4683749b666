package main

import "fmt"

// RandomCmd prints random page summaries.
type RandomCmd struct {
	Language string
	Count    int
}

// Run fetches and prints Count pages, separated by blank lines.
// It stops at the first error.
func (c *RandomCmd) Run(deps *Dependencies) error {
	count := max(c.Count, 1)

	for i := 0; i < count; i++ {
		page, err := deps.Fetcher.FetchRandom(deps.Ctx, c.Language)
		if err != nil {
			return err
		}

		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		if err := deps.Writer.WritePage(deps.Stdout, page); err != nil {
			return fmt.Errorf("write page: %w", err)
		}
	}

	return nil
}
