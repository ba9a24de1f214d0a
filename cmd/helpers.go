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
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// maxFractionDigits is the precision of the formatter
const maxFractionDigits = 6

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

type rfcOptions struct {
	Directory string
	Debug     bool
	Micros    uint32
	Now       bool
	Table     bool
	Files     []string
}

func getOptions() rfcOptions {
	return rfcOptions{
		Directory: viper.GetString("dir"),
		Debug:     viper.GetBool("debug"),
		Micros:    viper.GetUint32("micros"),
		Now:       viper.GetBool("now"),
		Table:     viper.GetBool("table"),
		Files:     viper.GetStringSlice("file"),
	}
}

// parseTimestamp parses SECONDS or SECONDS.FRACTION, where FRACTION has one
// to six digits and is read as a decimal fraction of a second: "10.5" is 10
// seconds and 500000 micros. Arguments without a fraction get defaultMicros.
func parseTimestamp(arg string, defaultMicros uint32) (uint64, uint32, error) {
	whole, fraction := arg, ""
	hasFraction := false
	if i := strings.IndexByte(arg, '.'); i >= 0 {
		whole, fraction = arg[:i], arg[i+1:]
		hasFraction = true
	}
	if !isDigits(whole) {
		return 0, 0, fmt.Errorf("invalid seconds %q", whole)
	}
	seconds, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid seconds %q: %s", whole, err.(*strconv.NumError).Err)
	}
	if !hasFraction {
		return seconds, defaultMicros, nil
	}
	if !isDigits(fraction) {
		return 0, 0, fmt.Errorf("invalid fraction %q", fraction)
	}
	if len(fraction) > maxFractionDigits {
		return 0, 0, errors.New("more than 6 fractional digits")
	}
	fraction += strings.Repeat("0", maxFractionDigits-len(fraction))
	micros, err := strconv.ParseUint(fraction, 10, 32)
	if err != nil {
		return 0, 0, err
	}
	return seconds, uint32(micros), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// fromTime returns the unix seconds and micros of t. Times before the epoch
// are not representable and yield an error.
func fromTime(t time.Time) (uint64, uint32, error) {
	if t.Unix() < 0 {
		return 0, 0, fmt.Errorf("time %s is before the unix epoch", t.UTC().Format(time.RFC3339))
	}
	return uint64(t.Unix()), uint32(t.Nanosecond() / 1000), nil
}
