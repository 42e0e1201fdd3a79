package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const glossary = `Shallow copy
  Duplicates a container's top-level structure only. Nested pointers, maps,
  slices and interface values holding them remain shared with the source.

Deep copy
  Recursively duplicates everything reachable from the root, producing an
  independent object graph with no shared mutable state.

Aliasing
  Two or more handles referring to the same underlying mutable storage, so
  that mutation through one is visible through the other.
`

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Print the glossary for shallow copy, deep copy and aliasing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), glossary)
			return err
		},
	}
}
