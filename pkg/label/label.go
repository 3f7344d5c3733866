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

// Package label implements the set-of-formulae abstraction a tableau branch
// must simultaneously satisfy, atop the generic hashset this codebase's
// lineage already provides.
package label

import (
	"sort"
	"strings"

	"github.com/modal-tableau/k-reasoner/pkg/formula"
	"github.com/modal-tableau/k-reasoner/pkg/util/collection/hash"
)

// Label is an unordered set of formulae, with set-theoretic identity: two
// labels are equal iff they contain the same formulae.  Duplicates collapse
// on insertion.
type Label struct {
	items *hash.Set[formula.Formula]
}

// New constructs an empty label.
func New() *Label {
	return &Label{hash.NewSet[formula.Formula](0)}
}

// FromSlice constructs a label containing exactly the given formulae
// (duplicates collapsing per the usual set semantics).
func FromSlice(fs []formula.Formula) *Label {
	l := New()
	for _, f := range fs {
		l.Insert(f)
	}

	return l
}

// Insert adds f to this label, returning true if it was already present.
func (l *Label) Insert(f formula.Formula) bool {
	return l.items.Insert(f)
}

// Remove deletes f from this label, returning true if it was present.
func (l *Label) Remove(f formula.Formula) bool {
	return l.items.Remove(f)
}

// Contains reports whether f is a member of this label.
func (l *Label) Contains(f formula.Formula) bool {
	return l.items.Contains(f)
}

// Size returns the number of distinct formulae in this label.
func (l *Label) Size() uint {
	return l.items.Size()
}

// Iter returns a fresh slice of every formula currently in this label.  The
// order is unspecified.
func (l *Label) Iter() []formula.Formula {
	return l.items.Items()
}

// Copy returns a shallow copy of this label: a fresh set container sharing
// the same (immutable) formula values.  Mutating the copy via Insert/Remove
// never affects the original, or vice-versa — this is what lets a branch
// point diverge without disturbing its sibling.
func (l *Label) Copy() *Label {
	return &Label{l.items.Clone()}
}

// Union returns a fresh label containing every formula in either l or
// other.
func (l *Label) Union(other *Label) *Label {
	r := l.Copy()
	for _, f := range other.Iter() {
		r.Insert(f)
	}

	return r
}

// Equals reports whether l and other contain exactly the same formulae.
func (l *Label) Equals(other *Label) bool {
	if l.Size() != other.Size() {
		return false
	}

	for _, f := range l.Iter() {
		if !other.Contains(f) {
			return false
		}
	}

	return true
}

// String renders this label as "{ f1, f2, ... }", sorting by canonical
// string so output is deterministic across runs.
func (l *Label) String() string {
	items := l.Iter()
	strs := make([]string, len(items))

	for i, f := range items {
		strs[i] = f.String()
	}

	sort.Strings(strs)

	var b strings.Builder

	b.WriteString("{ ")
	b.WriteString(strings.Join(strs, ", "))
	b.WriteString(" }")

	return b.String()
}
