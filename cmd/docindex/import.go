package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	artifact, err := deps.Source.Load(deps.Ctx, c.Location)
	if err != nil {
		return err
	}

	idx := &docindex.Index{
		Name:        c.Name,
		Source:      artifact.Source,
		ContentHash: artifact.ContentHash,
	}
	if err := deps.Indexes.ReplaceIndex(deps.Ctx, idx, artifact.Records); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d records into %q from %s\n", idx.RecordCount, idx.Name, idx.Source)
	return nil
}
