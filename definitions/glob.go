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
package definitions

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	glob "github.com/bmatcuk/doublestar"
	"github.com/hashicorp/go-multierror"
)

// MatchFiles returns files within the directory that match the pattern.
// Absolute patterns ignore the directory.
func MatchFiles(dir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(dir, pattern)
	}
	matches, err := glob.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid batch glob %s", pattern)
	}
	// Filter out directories
	results := make([]string, 0, len(matches))
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			results = append(results, match)
		}
	}
	sort.Strings(results)
	return results, nil
}

// Discover returns the sorted, de-duplicated set of files matching any of
// the patterns. A pattern that matches nothing is an error.
func Discover(dir string, patterns []string) ([]string, error) {
	var errors *multierror.Error
	seen := map[string]bool{}
	var results []string
	for _, pattern := range patterns {
		matches, err := MatchFiles(dir, pattern)
		if err != nil {
			errors = multierror.Append(errors, err)
			continue
		}
		if len(matches) == 0 {
			errors = multierror.Append(errors, fmt.Errorf("no files match %s", pattern))
			continue
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				results = append(results, match)
			}
		}
	}
	sort.Strings(results)
	return results, errors.ErrorOrNil()
}
