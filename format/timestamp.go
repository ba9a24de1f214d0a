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

//go:build !fixedbuf
// +build !fixedbuf

package format

import "strings"

// Bounded reports whether Timestamp has a fixed capacity of MaxLen bytes.
// Build with -tags fixedbuf to select the fixed-capacity variant.
const Bounded = false

// Timestamp is an RFC3339 string produced by Unix
type Timestamp string

func (t Timestamp) String() string { return string(t) }

func render(seconds uint64, micros uint32) Timestamp {
	var b strings.Builder
	b.Grow(MaxLen)
	// strings.Builder never fails
	_ = Write(&b, seconds, micros)
	return Timestamp(b.String())
}
