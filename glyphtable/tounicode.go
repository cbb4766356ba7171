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

package glyphtable

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"slices"
	"text/template"
	"unicode/utf16"

	"seehuhn.de/go/textflow/metrics"
)

// maxBlockSize is the maximal number of entries in one bfchar block.
const maxBlockSize = 100

// ToUnicode maps glyph IDs back to text, for text extraction.
// All glyph IDs within a block share the same high byte.
type ToUnicode struct {
	Blocks [][]metrics.Mapping
}

// EncodeToUnicode sorts the mappings by glyph ID and splits them into
// blocks.
func EncodeToUnicode(mm []metrics.Mapping) *ToUnicode {
	mm = slices.Clone(mm)
	slices.SortFunc(mm, func(a, b metrics.Mapping) int {
		return int(a.GID) - int(b.GID)
	})

	res := &ToUnicode{}
	var cur []metrics.Mapping
	for _, m := range mm {
		if len(cur) > 0 && (len(cur) >= maxBlockSize || cur[0].GID>>8 != m.GID>>8) {
			res.Blocks = append(res.Blocks, cur)
			cur = nil
		}
		cur = append(cur, m)
	}
	if len(cur) > 0 {
		res.Blocks = append(res.Blocks, cur)
	}
	return res
}

// Bytes returns the CMap in text form.
func (tu *ToUnicode) Bytes() []byte {
	buf := &bytes.Buffer{}
	err := toUnicodeTmpl.Execute(buf, tu)
	if err != nil {
		// The template only fails if writing to the buffer fails.
		panic(err)
	}
	return buf.Bytes()
}

// Compressed returns the zlib-compressed CMap, ready to be used as the
// data of a stream with /Filter /FlateDecode.
func (tu *ToUnicode) Compressed() ([]byte, error) {
	buf := &bytes.Buffer{}
	w := zlib.NewWriter(buf)
	_, err := w.Write(tu.Bytes())
	if err != nil {
		return nil, err
	}
	err = w.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatText(r rune) string {
	var text []byte
	for _, x := range utf16.Encode([]rune{r}) {
		text = append(text, byte(x>>8), byte(x))
	}
	return fmt.Sprintf("<%02X>", text)
}

var toUnicodeTmpl = template.Must(template.New("tounicode").Funcs(template.FuncMap{
	"Text": formatText,
}).Parse(`/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo
<< /Registry (Adobe)
/Ordering (UCS)
/Supplement 0
>> def
/CMapName /Adobe-Identity-UCS def
/CMapType 2 def
1 begincodespacerange
<0000> <FFFF>
endcodespacerange
{{range .Blocks -}}
{{len .}} beginbfchar
{{range . -}}
<{{printf "%04x" .GID}}> {{Text .Rune}}
{{end -}}
endbfchar
{{end -}}
endcmap
CMapName currentdict /CMap defineresource pop
end
end
`))
