package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	indexes, err := deps.Indexes.FindIndexes(deps.Ctx, docindex.IndexFilter{})
	if err != nil {
		return err
	}

	if len(indexes) == 0 {
		fmt.Fprintln(deps.Stdout, "No indexes found. Use 'docindex import' to create one.")
		return nil
	}

	for _, idx := range indexes {
		fmt.Fprintf(deps.Stdout, "%s  %d records  %s  %s\n", idx.Name, idx.RecordCount, idx.ContentHash, idx.Source)
	}

	return nil
}
