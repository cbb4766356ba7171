// seehuhn.de/go/textflow - flowing text into PDF pages
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package textflow

// glue is stretchable space between two words of a justified line.
type glue struct {
	Length float64
	Shrink float64
}

// interWordGlue returns the glue used between words, given the width of
// a space character.  Spaces may shrink to 80% of their natural width.
func interWordGlue(spaceWidth float64) glue {
	return glue{
		Length: spaceWidth,
		Shrink: 0.2 * spaceWidth,
	}
}

func (g glue) minLength() float64 {
	return g.Length - g.Shrink
}
