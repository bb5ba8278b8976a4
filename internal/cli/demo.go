package cli

import (
	"fmt"

	"github.com/phrazzld/rsvp-tracker/internal/domain"
	"github.com/spf13/cobra"
)

// demoPlayers is the sample guest list replayed by the demo command.
var demoPlayers = []domain.Player{
	{ID: "1", Name: "John Doe"},
	{ID: "2", Name: "Jane Smith"},
	{ID: "3", Name: "Bob Johnson"},
	{ID: "4", Name: "Alice Brown"},
}

func newDemoCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay a sample guest list and print the resulting reports",
		Long: `Record responses for four sample players, print the confirmed
attendees, counts and all RSVPs, then change Jane Smith's answer from No to
Yes and print the updated reports.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, renderTitle("RSVPs for "+a.cfg.Event.Name))
			fmt.Fprintln(out, "Adding RSVPs for players...")
			initial := []domain.RsvpStatus{
				domain.RsvpStatusYes,
				domain.RsvpStatusNo,
				domain.RsvpStatusYes,
				domain.RsvpStatusMaybe,
			}
			for i := range demoPlayers {
				if _, err := a.service.AddOrUpdateRsvp(ctx, &demoPlayers[i], initial[i]); err != nil {
					return fmt.Errorf("recording RSVP for %s: %w", demoPlayers[i].Name, err)
				}
			}

			fmt.Fprintln(out)
			writeReport(ctx, out, a.service, "")

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Updating an RSVP...")
			if _, err := a.service.AddOrUpdateRsvp(ctx, &demoPlayers[1], domain.RsvpStatusYes); err != nil {
				return fmt.Errorf("updating RSVP for %s: %w", demoPlayers[1].Name, err)
			}

			fmt.Fprintln(out)
			writeReport(ctx, out, a.service, "Updated ")

			if flags.showMetrics {
				fmt.Fprintln(out)
				return a.printMetrics(out)
			}
			return nil
		},
	}
}
