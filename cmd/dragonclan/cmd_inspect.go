package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInspectCommand(a *app) *cobra.Command {
	var (
		dragons  int
		roster   string
		strict   bool
		interact int
		rest     bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print character sheets and relationships for a clan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.newClan(dragons, roster, strict)
			if err != nil {
				return err
			}
			if interact > 0 {
				if _, err := c.SimulateInteractions(interact); err != nil {
					return err
				}
			}

			if rest {
				for i := 0; i < c.Count(); i++ {
					if _, err := c.Rest(i); err != nil {
						return err
					}
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "=== %s ===\n", c.Name())
			members := c.Dragons()
			n := len(members)
			for i := 0; i < n; i++ {
				sheet, err := c.CharacterSheet(i)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\n%s\n", sheet)
				if n < 2 {
					continue
				}
				fmt.Fprintln(out, "\n  Relationships:")
				for j := 0; j < n; j++ {
					if i == j {
						continue
					}
					line, err := c.RelationshipInfo(i, j)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "  → %s: %s\n", members[j].Name, line)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&dragons, "dragons", "d", -1, "Founding population (default from DRAGONCLAN_DRAGONS)")
	cmd.Flags().StringVarP(&roster, "roster", "r", "", "YAML roster file to found the clan from")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject out-of-range roster scores instead of clamping")
	cmd.Flags().IntVarP(&interact, "interactions", "n", 0, "Random interactions to run before printing")
	cmd.Flags().BoolVar(&rest, "rest", false, "Let every dragon rest before printing")

	return cmd
}
