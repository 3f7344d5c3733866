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

// Package formula implements the algebra of modal-logic formulae: a closed
// recursive sum type, normalization to the connective set {Atom, Not, And,
// Box}, and the structural equality / hashing contract required by
// pkg/util/collection/hash.Set.
package formula

import (
	"fmt"
	"hash/fnv"
	"sync/atomic"
)

// Tag classifies a formula's outermost pattern for O(1) rule dispatch inside
// the reasoner.  It is computed once, at construction, and never changes.
type Tag uint8

const (
	// TagNone is carried by any formula to which no tableau rule directly
	// applies (atoms, Box, and any Not whose child isn't Not/And/Box).
	TagNone Tag = iota
	// TagNotNot marks Not(Not x) — the non-branching double-negation rule.
	TagNotNot
	// TagNotAnd marks Not(And a b) — the (¬∧) branching rule.
	TagNotAnd
	// TagNotBox marks Not(Box x) — the modal successor rule.
	TagNotBox
	// TagAnd marks And a b — the non-branching conjunction rule.
	TagAnd
)

// String returns a short human-readable name, used in log messages.
func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagNotNot:
		return "¬¬"
	case TagNotAnd:
		return "¬∧"
	case TagNotBox:
		return "¬□"
	case TagAnd:
		return "∧"
	default:
		return "unknown"
	}
}

// TopName and BottomName are the reserved atom names for ⊤ and ⊥.  Only the
// Unicode glyphs are recognised (see pkg/parser); there are no ASCII
// aliases, so that ordinary atom names are never accidentally shadowed.
const (
	TopName    = "⊤"
	BottomName = "⊥"
)

// nextID is the only other package-level mutable state in this module besides
// the injected logger (see pkg/tableau); it hands out dense, monotonically
// increasing identifiers used purely as bitset.BitSet keys for "seen" sets
// during saturation.  It plays no part in equality, hashing, or printing.
var nextID uint64

// Formula is a node in the modal-formula algebra.  It is a closed sum:
// Atom, Not, And, Box are the canonical (post-normalization) variants, and
// Or, Imp, Iff, Diamond are parser sugar eliminated by Normalize.  All
// methods are satisfied via the embedded base and are therefore identical in
// behaviour across variants; recursive structure is inspected by the caller
// via a type switch on the concrete pointer type, in the manner of this
// codebase's IR term types.
type Formula interface {
	// Tag returns this formula's cached rule tag.
	Tag() Tag
	// Size returns the number of symbols (atoms and connectives) in this
	// formula.
	Size() uint
	// String returns the memoized canonical print string.
	String() string
	// Hash returns an FNV-64a hash of the canonical string.
	Hash() uint64
	// ID returns this formula's construction-order identifier.
	ID() uint64
	// Equals reports whether two formulae are structurally identical.
	Equals(Formula) bool
}

// base holds the fields computed eagerly at construction and shared by every
// variant through struct embedding.
type base struct {
	tag  Tag
	size uint
	str  string
	hash uint64
	cid  uint64
}

func (b *base) Tag() Tag    { return b.tag }
func (b *base) Size() uint  { return b.size }
func (b *base) String() string { return b.str }
func (b *base) Hash() uint64   { return b.hash }
func (b *base) ID() uint64     { return b.cid }

// Equals compares formulae by their canonical string, which is an
// unambiguous encoding of structure (explicit parenthesization around every
// binary operator, a fixed unary prefix form) — so string equality and
// structural equality coincide, and this also gives invariant 3
// (equal formulae hash equal) for free.
func (b *base) Equals(other Formula) bool {
	return other != nil && b.str == other.String()
}

func newBase(tag Tag, size uint, str string) base {
	h := fnv.New64a()
	_, _ = h.Write([]byte(str))

	return base{
		tag:  tag,
		size: size,
		str:  str,
		hash: h.Sum64(),
		cid:  atomic.AddUint64(&nextID, 1),
	}
}

// Atom represents an indivisible propositional variable.
type Atom struct {
	base
	Name string
}

// NewAtom constructs a propositional variable with the given name.
func NewAtom(name string) Formula {
	a := &Atom{Name: name}
	a.base = newBase(TagNone, 1, name)

	return a
}

// Not represents negation.
type Not struct {
	base
	Arg Formula
}

// NewNot constructs the negation of f.
func NewNot(f Formula) Formula {
	tag := TagNone

	switch f.(type) {
	case *Not:
		tag = TagNotNot
	case *And:
		tag = TagNotAnd
	case *Box:
		tag = TagNotBox
	}

	n := &Not{Arg: f}
	n.base = newBase(tag, 1+f.Size(), fmt.Sprintf("¬ %s", f.String()))

	return n
}

// And represents conjunction.
type And struct {
	base
	Lhs, Rhs Formula
}

// NewAnd constructs the conjunction of l and r.
func NewAnd(l, r Formula) Formula {
	a := &And{Lhs: l, Rhs: r}
	a.base = newBase(TagAnd, 1+l.Size()+r.Size(), fmt.Sprintf("(%s ∧ %s)", l.String(), r.String()))

	return a
}

// Box represents "in every accessible world, f".
type Box struct {
	base
	Arg Formula
}

// NewBox constructs the box of f.
func NewBox(f Formula) Formula {
	b := &Box{Arg: f}
	b.base = newBase(TagNone, 1+f.Size(), fmt.Sprintf("□ %s", f.String()))

	return b
}

// Or represents disjunction. It is parser sugar, eliminated by Normalize.
type Or struct {
	base
	Lhs, Rhs Formula
}

// NewOr constructs the disjunction of l and r.
func NewOr(l, r Formula) Formula {
	o := &Or{Lhs: l, Rhs: r}
	o.base = newBase(TagNone, 1+l.Size()+r.Size(), fmt.Sprintf("(%s ∨ %s)", l.String(), r.String()))

	return o
}

// Imp represents implication. It is parser sugar, eliminated by Normalize.
type Imp struct {
	base
	Lhs, Rhs Formula
}

// NewImp constructs the implication l → r.
func NewImp(l, r Formula) Formula {
	i := &Imp{Lhs: l, Rhs: r}
	i.base = newBase(TagNone, 1+l.Size()+r.Size(), fmt.Sprintf("(%s → %s)", l.String(), r.String()))

	return i
}

// Iff represents biimplication. It is parser sugar, eliminated by Normalize.
type Iff struct {
	base
	Lhs, Rhs Formula
}

// NewIff constructs the biimplication l ↔ r.
func NewIff(l, r Formula) Formula {
	i := &Iff{Lhs: l, Rhs: r}
	i.base = newBase(TagNone, 1+l.Size()+r.Size(), fmt.Sprintf("(%s ↔ %s)", l.String(), r.String()))

	return i
}

// Diamond represents "in some accessible world, f". It is parser sugar,
// eliminated by Normalize.
type Diamond struct {
	base
	Arg Formula
}

// NewDiamond constructs the diamond of f.
func NewDiamond(f Formula) Formula {
	d := &Diamond{Arg: f}
	d.base = newBase(TagNone, 1+f.Size(), fmt.Sprintf("◇ %s", f.String()))

	return d
}

// Normalize reduces f to the canonical connective set {Atom, Not, And, Box},
// eliminating Or/Imp/Iff/Diamond by rewriting and stripping double negation.
// It is total, deterministic, and idempotent: Normalize(Normalize(f)) always
// equals Normalize(f).
func Normalize(f Formula) Formula {
	switch t := f.(type) {
	case *Atom:
		return f
	case *Not:
		// Strip a double negation outright, rather than normalizing the
		// inner Not and re-wrapping, so the result never carries a
		// top-level Not(Not x).
		if inner, ok := t.Arg.(*Not); ok {
			return Normalize(inner.Arg)
		}

		arg := Normalize(t.Arg)
		// A sugar child (e.g. ¬ ◇ x) can normalize to a negation itself;
		// strip the resulting double negation as well, so that a second
		// Normalize finds nothing left to rewrite.
		if inner, ok := arg.(*Not); ok {
			return inner.Arg
		}

		return NewNot(arg)
	case *And:
		return NewAnd(Normalize(t.Lhs), Normalize(t.Rhs))
	case *Box:
		return NewBox(Normalize(t.Arg))
	case *Or:
		return Normalize(NewNot(NewAnd(NewNot(t.Lhs), NewNot(t.Rhs))))
	case *Imp:
		return Normalize(NewNot(NewAnd(t.Lhs, NewNot(t.Rhs))))
	case *Iff:
		return Normalize(NewAnd(
			NewNot(NewAnd(t.Lhs, NewNot(t.Rhs))),
			NewNot(NewAnd(t.Rhs, NewNot(t.Lhs))),
		))
	case *Diamond:
		return Normalize(NewNot(NewBox(NewNot(t.Arg))))
	default:
		panic(fmt.Sprintf("unknown formula kind %T", f))
	}
}
