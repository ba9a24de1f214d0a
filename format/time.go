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
package format

import (
	"strconv"

	"github.com/fugue/rfc3339/calendar"
)

const (
	// SecondsPerDay is the length of a UTC day without leap seconds
	SecondsPerDay = 86400

	// UnixEpochOffset is the number of seconds from the start of Rata Die
	// day 0 (0000-12-31T00:00:00Z) to 1970-01-01T00:00:00Z
	UnixEpochOffset = 62135683200

	// MaxLen is the length of YYYY-MM-DDTHH:MM:SS.ffffffZ
	MaxLen = 27
)

// Split converts seconds since the Unix epoch into a Rata Die day number
// and the time of day in UTC
func Split(seconds uint64) (days, hour, minute, second uint64) {
	abs := seconds + UnixEpochOffset
	days = abs / SecondsPerDay
	rem := abs % SecondsPerDay
	hour = rem / 3600
	minute = (rem % 3600) / 60
	second = rem % 60
	return
}

// Write renders seconds and micros as YYYY-MM-DDTHH:MM:SS.ffffffZ into the
// sink. The year has at least four digits and is never truncated. Micros are
// written with at least six digits; values of one million or more are
// written in full rather than reduced. Write stops at the first error
// returned by the sink and returns it.
func Write(w Sink, seconds uint64, micros uint32) error {
	days, hour, minute, second := Split(seconds)
	date := calendar.FromDays(days)

	fields := [...]struct {
		value uint64
		width int
		sep   byte
	}{
		{uint64(date.Year), 4, '-'},
		{uint64(date.Month), 2, '-'},
		{uint64(date.Day), 2, 'T'},
		{hour, 2, ':'},
		{minute, 2, ':'},
		{second, 2, '.'},
		{uint64(micros), 6, 'Z'},
	}
	for _, f := range fields {
		if err := writePadded(w, f.value, f.width); err != nil {
			return err
		}
		if err := w.WriteByte(f.sep); err != nil {
			return err
		}
	}
	return nil
}

// Unix formats a unix timestamp with microseconds as an RFC3339 string in
// UTC, e.g. 2015-10-21T23:29:00.123456Z.
//
// Unix never fails. When the build uses a fixed-capacity Timestamp, output
// that does not fit is silently dropped. Seconds within 62135683200 of the
// uint64 maximum wrap around and produce an early date instead of an error.
func Unix(seconds uint64, micros uint32) Timestamp {
	return render(seconds, micros)
}

func writePadded(w Sink, value uint64, width int) error {
	var scratch [20]byte
	digits := strconv.AppendUint(scratch[:0], value, 10)
	for i := len(digits); i < width; i++ {
		if err := w.WriteByte('0'); err != nil {
			return err
		}
	}
	_, err := w.Write(digits)
	return err
}
