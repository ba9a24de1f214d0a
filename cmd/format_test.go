package cmd

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func runCommand(c *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(ioutil.Discard)
	c.SilenceErrors = true
	c.SilenceUsage = true
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func fixedNow() time.Time {
	return time.Unix(1609459200, 250000000)
}

func TestCollectTimestamps(t *testing.T) {
	opts := rfcOptions{Micros: 7, Now: true}

	items, err := collectTimestamps(opts, []string{"0", "1445470140.123456"}, fixedNow)
	require.Nil(t, err)
	require.Equal(t, []timestampViewItem{
		{Seconds: 0, Micros: 7, Days: 719163, Timestamp: "1970-01-01T00:00:00.000007Z"},
		{Seconds: 1445470140, Micros: 123456, Days: 735892, Timestamp: "2015-10-21T23:29:00.123456Z"},
		{Seconds: 1609459200, Micros: 250000, Days: 737791, Timestamp: "2021-01-01T00:00:00.250000Z", Label: "now"},
	}, items)
}

func TestCollectTimestampsErrors(t *testing.T) {
	items, err := collectTimestamps(rfcOptions{}, []string{"x", "86400", "1.1234567"}, fixedNow)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "2 errors occurred")
	require.Contains(t, err.Error(), `invalid timestamp "x"`)
	require.Contains(t, err.Error(), `invalid timestamp "1.1234567": more than 6 fractional digits`)

	// Valid arguments are still collected
	require.Len(t, items, 1)
	require.Equal(t, "1970-01-02T00:00:00.000000Z", items[0].Timestamp)
}

func TestFormatCommand(t *testing.T) {
	out, err := runCommand(NewFormatCommand(), "1609459200", "1445470140.123456")
	require.Nil(t, err)
	require.Equal(t, "2021-01-01T00:00:00.000000Z\n2015-10-21T23:29:00.123456Z\n", out)
}

func TestFormatCommandMicros(t *testing.T) {
	out, err := runCommand(NewFormatCommand(), "--micros", "999999", "0")
	require.Nil(t, err)
	require.Equal(t, "1970-01-01T00:00:00.999999Z\n", out)

	// Out of range micros are rendered as given
	out, err = runCommand(NewFormatCommand(), "--micros", "1000000", "0")
	require.Nil(t, err)
	require.Equal(t, "1970-01-01T00:00:00.1000000Z\n", out)
}

func TestFormatCommandTable(t *testing.T) {
	out, err := runCommand(NewFormatCommand(), "--table", "0")
	require.Nil(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "SECONDS | MICROS | DAYS   | TIMESTAMP                   | LABEL", lines[1])
	require.Equal(t, "0       | 0      | 719163 | 1970-01-01T00:00:00.000000Z |      ", lines[3])
}

func TestFormatCommandFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "rfc3339-")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	batch := "timestamps:\n  - label: launch\n    seconds: 1445470140\n    micros: 123456\n"
	require.Nil(t, ioutil.WriteFile(filepath.Join(dir, "launch.yaml"), []byte(batch), 0644))

	out, err := runCommand(NewFormatCommand(), "-f", filepath.Join(dir, "*.yaml"))
	require.Nil(t, err)
	require.Equal(t, "2015-10-21T23:29:00.123456Z launch\n", out)

	out, err = runCommand(NewFormatCommand(), "-f", filepath.Join(dir, "*.json"), "0")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "no files match")
	require.Equal(t, "1970-01-01T00:00:00.000000Z\n", out)
}

func TestFormatCommandFileAlternatives(t *testing.T) {
	dir, err := ioutil.TempDir("", "rfc3339-")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	for name, seconds := range map[string]string{"a": "0", "b": "86400", "c": "172800"} {
		batch := "timestamps:\n  - label: " + name + "\n    seconds: " + seconds + "\n"
		require.Nil(t, ioutil.WriteFile(filepath.Join(dir, name+".yaml"), []byte(batch), 0644))
	}

	// The comma belongs to the pattern, not a list of flag values
	out, err := runCommand(NewFormatCommand(), "-f", filepath.Join(dir, "{a,b}.yaml"))
	require.Nil(t, err)
	require.Equal(t, "1970-01-01T00:00:00.000000Z a\n1970-01-02T00:00:00.000000Z b\n", out)

	out, err = runCommand(NewFormatCommand(), "-f", filepath.Join(dir, "a.yaml"), "-f", filepath.Join(dir, "c.yaml"))
	require.Nil(t, err)
	require.Equal(t, "1970-01-01T00:00:00.000000Z a\n1970-01-03T00:00:00.000000Z c\n", out)
}

func TestFormatCommandNoInput(t *testing.T) {
	_, err := runCommand(NewFormatCommand())
	require.EqualError(t, err, "No timestamps given")
}

func TestDaysCommand(t *testing.T) {
	out, err := runCommand(NewDaysCommand(), "1", "719163", "730179")
	require.Nil(t, err)
	require.Equal(t, "1 0001-01-01\n719163 1970-01-01\n730179 2000-02-29\n", out)

	out, err = runCommand(NewDaysCommand(), "x", "766704")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), `invalid day number "x"`)
	require.Equal(t, "766704 2100-03-01\n", out)
}

func TestDaysCommandOutOfRange(t *testing.T) {
	out, err := runCommand(NewDaysCommand(), "5577006791947779410", "1568704592244", "1568704592245", "18446744073709551615")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "3 errors occurred")
	require.Contains(t, err.Error(), `invalid day number "5577006791947779410": past 1568704592244`)
	require.Contains(t, err.Error(), `invalid day number "1568704592245": past 1568704592244`)
	require.Contains(t, err.Error(), `invalid day number "18446744073709551615": past 1568704592244`)
	require.Equal(t, "1568704592244 4294967295-12-31\n", out)
}
