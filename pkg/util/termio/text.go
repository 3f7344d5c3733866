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
package termio

// FormattedText represents, as the name suggests, a chunk of formatted text.
type FormattedText struct {
	// Format to apply to this text (optional)
	format *AnsiEscape
	// text represents the contents
	text []rune
}

// NewText constructs a new (unformatted) chunk of text.
func NewText(text string) FormattedText {
	return FormattedText{nil, []rune(text)}
}

// NewColouredText constructs a new (coloured) chunk of text.
func NewColouredText(text string, colour uint) FormattedText {
	escape := NewAnsiEscape().FgColour(colour)
	return FormattedText{&escape, []rune(text)}
}

// Len returns the number of characters [runes] in this chunk of formatted
// text. Observe that this does not include characters arising from the
// formatting escapes.
func (p FormattedText) Len() uint {
	return uint(len(p.text))
}

// Clip removes text beyond [start,end), returning the clipped chunk.
func (p FormattedText) Clip(start uint, end uint) FormattedText {
	n := p.Len()
	//
	switch {
	case start >= n:
		p.text = []rune{}
	case end >= n:
		p.text = p.text[start:]
	default:
		p.text = p.text[start:end]
	}
	//
	return p
}

// Pad right-pads this chunk with spaces until it reaches the given width,
// returning the padded chunk. Chunks already at or beyond the width are
// returned unchanged.
func (p FormattedText) Pad(width uint) FormattedText {
	for uint(len(p.text)) < width {
		p.text = append(p.text, ' ')
	}
	//
	return p
}

// Bytes returns an ANSI-formatted byte representation of this chunk.
func (p FormattedText) Bytes() []byte {
	if p.format != nil {
		bytes := []byte(p.format.Build())
		bytes = append(bytes, []byte(string(p.text))...)
		escape := ResetAnsiEscape().Build()
		//
		return append(bytes, []byte(escape)...)
	}
	//
	return []byte(string(p.text))
}
