package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"dragon-clan/clan"
)

type simulateReport struct {
	Stats        clan.Stats              `json:"stats"`
	Dragons      []clan.DragonInfo       `json:"dragons"`
	Interactions []clan.InteractionEvent `json:"interactions"`
	Matrix       [][]float64             `json:"matrix,omitempty"`
}

func newSimulateCommand(a *app) *cobra.Command {
	var (
		dragons     int
		count       int
		roster      string
		strict      bool
		asJSON      bool
		showMatrix  bool
		showMetrics bool
	)

	cmd := &cobra.Command{
		Use:     "simulate",
		Aliases: []string{"sim"},
		Short:   "Run random interactions and print what happened",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 {
				return fmt.Errorf("--count must be >= 0, got %d", count)
			}
			reg := prometheus.NewRegistry()
			c, err := a.newClan(dragons, roster, strict, clan.WithMetrics(clan.NewMetrics(reg)))
			if err != nil {
				return err
			}
			events, err := c.SimulateInteractions(count)
			if err != nil {
				return err
			}
			a.logger.Info("simulation finished",
				slog.String("clan", c.Name()),
				slog.Int("interactions", len(events)),
			)

			out := cmd.OutOrStdout()
			report := simulateReport{Stats: c.Stats(), Dragons: c.Dragons(), Interactions: events}
			if showMatrix {
				report.Matrix = c.Matrix()
			}
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				printReport(out, report)
			}
			if showMetrics {
				return writeMetrics(out, reg)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&dragons, "dragons", "d", -1, "Founding population (default from DRAGONCLAN_DRAGONS)")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of random interactions")
	cmd.Flags().StringVarP(&roster, "roster", "r", "", "YAML roster file to found the clan from")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject out-of-range roster scores instead of clamping")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&showMatrix, "matrix", false, "Include the opinion matrix")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print collected metrics in Prometheus text format")

	return cmd
}

func printReport(w io.Writer, r simulateReport) {
	fmt.Fprintf(w, "%s (%d dragons)\n\n", r.Stats.Name, r.Stats.DragonCount)
	for _, d := range r.Dragons {
		fmt.Fprintf(w, "  [%d] %s the %s dragon, age %d (%s)\n", d.Index, d.Name, d.Element, d.Age, d.Style)
	}
	if len(r.Interactions) > 0 {
		fmt.Fprintln(w)
	}
	for _, ev := range r.Interactions {
		fmt.Fprintf(w, "#%d %s (%+d / %+.1f)\n", ev.Seq, ev.Description, ev.OpinionChange, ev.ReciprocalChange)
	}
	if r.Matrix != nil {
		fmt.Fprintln(w)
		printMatrix(w, r.Dragons, r.Matrix)
	}
}

func printMatrix(w io.Writer, dragons []clan.DragonInfo, matrix [][]float64) {
	fmt.Fprintf(w, "%-16s", "")
	for j := range matrix {
		fmt.Fprintf(w, "%8d", j)
	}
	fmt.Fprintln(w)
	for i, row := range matrix {
		fmt.Fprintf(w, "%-16s", fmt.Sprintf("[%d] %s", i, dragons[i].Name))
		for _, v := range row {
			fmt.Fprintf(w, "%8.1f", v)
		}
		fmt.Fprintln(w)
	}
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
