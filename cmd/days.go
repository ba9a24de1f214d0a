package cmd

import (
	"fmt"
	"strconv"

	"github.com/fugue/rfc3339/calendar"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

// NewDaysCommand returns a command that shows the civil date of Rata Die
// day numbers
func NewDaysCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "days RATA_DIE...",
		Short: "Show the date of Rata Die day numbers (day 1 is 0001-01-01)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs *multierror.Error
			for _, arg := range args {
				days, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					errs = multierror.Append(errs, fmt.Errorf("invalid day number %q", arg))
					continue
				}
				if days > calendar.MaxDays {
					errs = multierror.Append(errs, fmt.Errorf("invalid day number %q: past %d", arg, uint64(calendar.MaxDays)))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", days, calendar.FromDays(days))
			}
			return errs.ErrorOrNil()
		},
	}
	return cmd
}

func init() {
	rootCmd.AddCommand(NewDaysCommand())
}
