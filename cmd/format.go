// Copyright 2020 Fugue, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/fugue/rfc3339/definitions"
	"github.com/fugue/rfc3339/format"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type timestampViewItem struct {
	Seconds   uint64
	Micros    uint32
	Days      uint64
	Timestamp string
	Label     string
}

func newTimestampViewItem(seconds uint64, micros uint32, label string) timestampViewItem {
	days, _, _, _ := format.Split(seconds)
	return timestampViewItem{
		Seconds:   seconds,
		Micros:    micros,
		Days:      days,
		Timestamp: format.Unix(seconds, micros).String(),
		Label:     label,
	}
}

// collectTimestamps gathers the timestamps named by the arguments, the batch
// files and the --now flag. Invalid inputs are skipped and reported together
// in the returned error.
func collectTimestamps(opts rfcOptions, args []string, now func() time.Time) ([]timestampViewItem, error) {

	var errs *multierror.Error
	var items []timestampViewItem

	for _, arg := range args {
		seconds, micros, err := parseTimestamp(arg, opts.Micros)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("invalid timestamp %q: %s", arg, err))
			continue
		}
		items = append(items, newTimestampViewItem(seconds, micros, ""))
	}

	if len(opts.Files) > 0 {
		paths, err := definitions.Discover(opts.Directory, opts.Files)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		batches, err := definitions.LoadBatches(paths)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		for _, batch := range batches {
			logger.WithFields(logrus.Fields{
				"path":  batch.Path,
				"count": len(batch.Timestamps),
			}).Debug("Loaded batch")
			for _, entry := range batch.Timestamps {
				items = append(items, newTimestampViewItem(entry.Seconds, entry.Micros, entry.Label))
			}
		}
	}

	if opts.Now {
		seconds, micros, err := fromTime(now())
		if err != nil {
			errs = multierror.Append(errs, err)
		} else {
			items = append(items, newTimestampViewItem(seconds, micros, "now"))
		}
	}

	return items, errs.ErrorOrNil()
}

func writeTimestamps(w io.Writer, items []timestampViewItem, showTable bool) error {

	var colors []*color.Color
	outOfRange := color.New(color.FgRed)

	for _, item := range items {
		fields := logrus.Fields{
			"seconds": item.Seconds,
			"micros":  item.Micros,
			"days":    item.Days,
		}
		var rowColor *color.Color
		if item.Micros >= 1000000 {
			logger.WithFields(fields).Warn("Micros not below one million; fraction is wider than six digits")
			rowColor = outOfRange
		} else {
			logger.WithFields(fields).Debug("Formatted")
		}
		colors = append(colors, rowColor)
	}

	if !showTable {
		for _, item := range items {
			if item.Label != "" {
				fmt.Fprintf(w, "%s %s\n", item.Timestamp, item.Label)
			} else {
				fmt.Fprintln(w, item.Timestamp)
			}
		}
		return nil
	}

	rows := make([]interface{}, len(items))
	for i, item := range items {
		rows[i] = item
	}
	table, err := format.Table(format.TableOpts{
		Rows:       rows,
		Colors:     colors,
		Columns:    []string{"Seconds", "Micros", "Days", "Timestamp", "Label"},
		ShowHeader: true,
	})
	if err != nil {
		return err
	}
	for _, tableRow := range table {
		fmt.Fprintln(w, tableRow)
	}
	return nil
}

// NewFormatCommand returns a command that formats unix timestamps
func NewFormatCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:     "format [SECONDS[.FRACTION]]...",
		Short:   "Format unix timestamps as RFC3339",
		Aliases: []string{"f"},
		Example: `  rfc3339 format 1445470140.123456
  rfc3339 format --micros 5 0 86400
  rfc3339 format --now --table
  rfc3339 format -f 'batches/**/*.yaml'`,
		RunE: func(cmd *cobra.Command, args []string) error {

			opts := getOptions()
			if cmd.Flags().Changed("file") {
				opts.Files, _ = cmd.Flags().GetStringArray("file")
			}
			items, err := collectTimestamps(opts, args, time.Now)
			if len(items) == 0 && err == nil {
				return errors.New("No timestamps given")
			}
			if len(items) > 0 {
				if werr := writeTimestamps(cmd.OutOrStdout(), items, opts.Table); werr != nil {
					return werr
				}
			}
			return err
		},
	}

	cmd.Flags().Uint32("micros", 0, "Microseconds for timestamps given without a fraction")
	cmd.Flags().Bool("now", false, "Format the current time")
	cmd.Flags().Bool("table", false, "Show results as a table")
	cmd.Flags().StringArrayP("file", "f", nil, "Batch YAML file to format, may be repeated (glob pattern)")

	viper.BindPFlag("micros", cmd.Flags().Lookup("micros"))
	viper.BindPFlag("now", cmd.Flags().Lookup("now"))
	viper.BindPFlag("table", cmd.Flags().Lookup("table"))

	return cmd
}

func init() {
	rootCmd.AddCommand(NewFormatCommand())
}
