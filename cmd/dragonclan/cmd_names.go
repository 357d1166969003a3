package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dragon-clan/dragon"
	"dragon-clan/element"
	"dragon-clan/names"
)

func newNamesCommand(a *app) *cobra.Command {
	var (
		count    int
		elem     string
		withClan bool
	)

	cmd := &cobra.Command{
		Use:   "names",
		Short: "Generate unique dragon names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := names.NewGenerator(dragon.NewRand(a.cfg.Seed))
			out := cmd.OutOrStdout()
			if withClan {
				fmt.Fprintln(out, g.ClanName())
			}

			var e element.Element
			if elem != "" {
				parsed, err := element.Parse(elem)
				if err != nil {
					return err
				}
				e = parsed
			}
			list, err := g.Unique(count, e)
			if err != nil {
				return err
			}
			for _, name := range list {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 5, "How many names to generate")
	cmd.Flags().StringVarP(&elem, "element", "e", "", "Theme names for an element (fire, water, earth, wind)")
	cmd.Flags().BoolVar(&withClan, "clan", false, "Also print a clan name")

	return cmd
}
