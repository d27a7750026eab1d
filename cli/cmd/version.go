package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/clasp/pkg"
)

// Version prints version information.
type Version struct{}

// Run executes the version command.
func (Version) Run(ctx context.Context) error {
	_, err := fmt.Fprintf(stdout(ctx), "%s %s\n", pkg.Name, pkg.Version)
	if err != nil {
		return ErrRender.Wrap(err)
	}

	return nil
}
