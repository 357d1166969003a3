package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"dragon-clan/clan"
	"dragon-clan/replay"
)

func newReplayCommand(a *app) *cobra.Command {
	var (
		specPath string
		wire     bool
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Generate a deterministic replay tape from a spec file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := replay.LoadSpecFile(specPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				spec.Seed = a.seed
			}
			tape, err := replay.GenerateTape(spec, clan.WithLogger(a.base))
			if err != nil {
				var re *replay.ReplayError
				if errors.As(err, &re) {
					a.logger.Warn("replay rejected", "reason", re.Reason, "step", re.StepIndex)
				}
				return err
			}

			var payload any = tape
			if wire {
				payload = replay.ToWireTape(tape)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		},
	}

	cmd.Flags().StringVarP(&specPath, "spec", "s", "", "Replay spec file (YAML or JSON)")
	cmd.Flags().BoolVar(&wire, "wire", false, "Emit the compact wire tape")
	_ = cmd.MarkFlagRequired("spec")

	return cmd
}
