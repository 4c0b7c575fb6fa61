package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		return docindex.Errorf(docindex.EINVALID, "use --force to confirm deletion")
	}

	idx, err := findIndexByName(deps.Ctx, deps.Indexes, c.Name)
	if err != nil {
		if docindex.ErrorCode(err) == docindex.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "Hint: Use 'docindex list' to see available indexes.")
		}
		return err
	}

	if err := deps.Indexes.DeleteIndex(deps.Ctx, idx.ID); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted index %q\n", idx.Name)
	return nil
}
