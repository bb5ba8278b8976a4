package cli

import (
	"fmt"

	"github.com/phrazzld/rsvp-tracker/internal/roster"
	"github.com/spf13/cobra"
)

func newApplyCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <roster.yaml>",
		Short: "Apply the responses in a roster file and print the report",
		Long: `Read a YAML roster of players and responses, submit the responses in
order, and print confirmed attendees, counts and all RSVPs.

Example roster:

  event: Game night
  players:
    - id: "1"
      name: John Doe
  responses:
    - player: "1"
      status: "Yes"

Processing stops at the first invalid response.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := roster.Load(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			event := a.cfg.Event.Name
			if r.Event != "" {
				event = r.Event
			}

			applied, err := r.Apply(ctx, a.service)
			if err != nil {
				return fmt.Errorf("applying roster %s: %w", args[0], err)
			}
			a.log.Debug("roster applied", "path", args[0], "responses", applied)

			fmt.Fprintln(out, renderTitle("RSVPs for "+event))
			fmt.Fprintf(out, "Applied %d responses from %d players.\n\n", applied, len(r.Players))
			writeReport(ctx, out, a.service, "")

			if flags.showMetrics {
				fmt.Fprintln(out)
				return a.printMetrics(out)
			}
			return nil
		},
	}
}
