package csvwriter

import (
	"golang.org/x/text/encoding/charmap"
)

// Unmappable is written for every character Windows-1252 cannot represent.
const Unmappable = '?'

// EncodeWindows1252 converts s to single-byte Windows-1252.
//
// Code points 0x00-0x7F and 0xA0-0xFF are written as their own value, the
// code page's specials (euro sign, smart quotes, dashes, trade mark, ...)
// as their assigned byte in 0x80-0x9F, and anything else as '?'. The C1
// control range U+0080-U+009F is never passed through.
func EncodeWindows1252(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r >= 0x80 && r <= 0x9F {
			out = append(out, Unmappable)
			continue
		}
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = Unmappable
		}
		out = append(out, b)
	}
	return out
}
