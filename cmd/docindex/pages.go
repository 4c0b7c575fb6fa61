package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	idx, err := findIndexByName(deps.Ctx, deps.Indexes, c.Name)
	if err != nil {
		return err
	}

	records, err := deps.Indexes.FindRecords(deps.Ctx, idx.ID)
	if err != nil {
		return err
	}

	pages := docindex.Pages(records)
	fmt.Fprintf(deps.Stdout, "Pages in %s (%d total):\n\n", idx.Name, len(pages))
	for i, p := range pages {
		fmt.Fprintf(deps.Stdout, "  %d. %s\n", i+1, p)
	}

	return nil
}
