package main

import (
	"fmt"
)

// Run executes the fetch command. The artifact is decoded before it is
// written, so a malformed download never replaces an existing file.
func (c *FetchCmd) Run(deps *Dependencies) error {
	data, source, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	records, err := deps.Decoder.Decode(data)
	if err != nil {
		return err
	}

	if err := deps.Store.Save(deps.Ctx, data); err != nil {
		_ = deps.Store.Abort()
		return err
	}

	if err := deps.Store.Commit(); err != nil {
		_ = deps.Store.Abort()
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d records from %s to %s\n", len(records), source, c.Path)
	return nil
}
