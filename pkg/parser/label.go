// Copyright the k-reasoner contributors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"strings"

	"github.com/modal-tableau/k-reasoner/pkg/label"
)

// ParseLabel splits line on ',', parses each comma-separated segment
// independently as a formula, and unions the results into a single Label.
// An empty line (no segments, or only blank segments) yields the empty
// label, which is trivially satisfiable. ArityUnderflow from an individual
// segment is fatal to the whole label and is returned to the caller;
// everything else (bracket mismatches, trailing formulae) is logged and
// does not abort.
func ParseLabel(line string) (*label.Label, error) {
	l := label.New()

	if strings.TrimSpace(line) == "" {
		return l, nil
	}

	for _, segment := range strings.Split(line, ",") {
		if strings.TrimSpace(segment) == "" {
			continue
		}

		f, err := Parse(segment)
		if err != nil {
			return nil, err
		}

		l.Insert(f)
	}

	return l, nil
}

// ParseLabelFile parses each line of lines as an independent label, in the
// manner of ParseLabel, returning one Label per line in order.
func ParseLabelFile(lines []string) ([]*label.Label, error) {
	labels := make([]*label.Label, 0, len(lines))

	for _, line := range lines {
		l, err := ParseLabel(line)
		if err != nil {
			return nil, err
		}

		labels = append(labels, l)
	}

	return labels, nil
}
