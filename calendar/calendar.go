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

// Package calendar converts Rata Die day numbers to proleptic Gregorian
// dates using integer arithmetic only.
package calendar

import (
	"strconv"
)

// Day 1 is 0001-01-01. Shifting by marchShift moves the working epoch to
// March 1st of year 0 so that February is the last month of each internal
// year and the leap day never sits in the middle of one.
const marchShift = 306

// dayOffsets[m] is the number of days from March 1st to the first day of
// month m within the March-based year. Index 0 is unused.
var dayOffsets = [13]uint64{0, 306, 337, 0, 31, 61, 92, 122, 153, 184, 214, 245, 275}

// MaxDays is the last day number whose date fits in Date, 4294967295-12-31.
// FromDays is exact up to here.
const MaxDays = 1568704592244

// Date is a civil date in the proleptic Gregorian calendar
type Date struct {
	Year  uint32
	Month uint32
	Day   uint32
}

// FromDays returns the civil date for a Rata Die day number (day 1 is
// 0001-01-01, day 719163 is 1970-01-01).
//
// This is Peter Baum's formulation. The constants 3652425 and 36525 are the
// 400-year and 100-year cycle lengths scaled by 100, 1461 is the length of a
// 4-year cycle. Leap years are handled by the cycle arithmetic, not by a
// branch. The function is total: past MaxDays the year no longer fits in 32
// bits, and near the top of the uint64 range the arithmetic wraps modulo
// 2^64. The result is then meaningless, but it never panics.
func FromDays(days uint64) Date {
	z := days + marchShift
	h := 100*z - 25
	a := h / 3652425
	b := a - (a >> 2)
	y := (100*b + h) / 36525
	d := b + z - (1461 * y >> 2)
	m := (535*d + 48950) >> 14

	// Months 13 and 14 are January and February of the following civil year
	if m > 12 {
		y++
		m -= 12
	}

	// Only reachable once 100*z or 535*d has wrapped
	if m < 1 || m > 12 {
		m = (m-1)%12 + 1
	}

	return Date{
		Year:  uint32(y),
		Month: uint32(m),
		Day:   uint32(d - dayOffsets[m]),
	}
}

// String returns the date as YYYY-MM-DD. Years past 9999 keep all digits.
func (d Date) String() string {
	buf := make([]byte, 0, 10)
	buf = appendPadded(buf, uint64(d.Year), 4)
	buf = append(buf, '-')
	buf = appendPadded(buf, uint64(d.Month), 2)
	buf = append(buf, '-')
	buf = appendPadded(buf, uint64(d.Day), 2)
	return string(buf)
}

func appendPadded(buf []byte, v uint64, width int) []byte {
	var scratch [20]byte
	digits := strconv.AppendUint(scratch[:0], v, 10)
	for i := len(digits); i < width; i++ {
		buf = append(buf, '0')
	}
	return append(buf, digits...)
}
