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
	"io/ioutil"

	"github.com/go-yaml/yaml"
	"github.com/hashicorp/go-multierror"
)

// Entry is one timestamp to format
type Entry struct {
	Label   string `yaml:"label"`
	Seconds uint64 `yaml:"seconds"`
	Micros  uint32 `yaml:"micros"`
}

// Batch defines a list of timestamps in YAML
type Batch struct {
	Path       string  `yaml:"-"`
	Timestamps []Entry `yaml:"timestamps"`
}

// LoadBatch loads a batch definition from the given text
func LoadBatch(text []byte) (*Batch, error) {
	def := &Batch{}
	if err := yaml.Unmarshal(text, def); err != nil {
		return nil, err
	}
	return def, nil
}

// LoadBatchFromPath loads a batch definition from the specified file
func LoadBatchFromPath(path string) (*Batch, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := LoadBatch(data)
	if err != nil {
		return nil, fmt.Errorf("Failed to load %s: %s", path, err)
	}
	def.Path = path
	return def, nil
}

// LoadBatches loads every file in paths. Files that fail to load are
// skipped and their errors are combined into the returned error, so the
// caller may still use the batches that did load.
func LoadBatches(paths []string) ([]*Batch, error) {
	var errors *multierror.Error
	batches := make([]*Batch, 0, len(paths))
	for _, path := range paths {
		def, err := LoadBatchFromPath(path)
		if err != nil {
			errors = multierror.Append(errors, err)
			continue
		}
		batches = append(batches, def)
	}
	return batches, errors.ErrorOrNil()
}
