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
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/fatih/structs"
)

// TableOpts are options used when rendering a table
type TableOpts struct {
	Rows       []interface{}
	Colors     []*color.Color
	Columns    []string
	Separator  string
	ShowHeader bool
}

// Table builds a text table from struct rows and the chosen field names.
// It returns one string per line, padded so columns line up. A nil entry in
// Colors leaves that row uncolored.
func Table(opts TableOpts) ([]string, error) {

	if len(opts.Rows) == 0 {
		return nil, errors.New("No rows to display")
	}
	if len(opts.Columns) == 0 {
		return nil, errors.New("No columns to display")
	}
	if len(opts.Colors) > 0 && len(opts.Colors) != len(opts.Rows) {
		return nil, fmt.Errorf("Expected %d row colors, got %d", len(opts.Rows), len(opts.Colors))
	}

	separator := opts.Separator
	if separator == "" {
		separator = " | "
	}

	labels := make([]string, len(opts.Columns))
	widths := make([]int, len(opts.Columns))
	for i, name := range opts.Columns {
		labels[i] = strings.ToUpper(toSnakeCase(name))
		if opts.ShowHeader {
			widths[i] = len(labels[i])
		}
	}

	cells := make([][]string, len(opts.Rows))
	for r, row := range opts.Rows {
		fields := structs.Map(row)
		cells[r] = make([]string, len(opts.Columns))
		for c, name := range opts.Columns {
			value, ok := fields[name]
			if !ok {
				return nil, fmt.Errorf("Row has no attribute: %s", name)
			}
			cells[r][c] = fmt.Sprintf("%v", value)
			if len(cells[r][c]) > widths[c] {
				widths[c] = len(cells[r][c])
			}
		}
	}

	pad := func(values []string) []string {
		padded := make([]string, len(values))
		for i, v := range values {
			padded[i] = fmt.Sprintf("%-*s", widths[i], v)
		}
		return padded
	}

	var lines []string
	if opts.ShowHeader {
		total := len(separator) * (len(widths) - 1)
		for _, w := range widths {
			total += w
		}
		rule := strings.Repeat("=", total)
		lines = append(lines, rule, strings.Join(pad(labels), separator), rule)
	}
	for r, values := range cells {
		line := strings.Join(pad(values), separator)
		if len(opts.Colors) > 0 && opts.Colors[r] != nil {
			line = opts.Colors[r].Sprint(line)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// toSnakeCase converts a Go field name to snake case, e.g. FavoriteNumber
// becomes favorite_number
func toSnakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
