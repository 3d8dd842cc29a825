// Package textenc decodes uploaded bytes by trying a fixed ladder of
// character encodings.
package textenc

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/korean"
)

type attempt struct {
	name string
	enc  encoding.Encoding
}

// Strict attempts after utf-8, in priority order. cp949 and euc-kr
// both resolve to x/text's EUC-KR table, which implements the cp949
// superset.
var attempts = []attempt{
	{"cp949", korean.EUCKR},
	{"euc-kr", korean.EUCKR},
}

// Decode converts raw bytes to text: utf-8 first, then the strict
// attempts, then latin-1 with replacement. The latin-1 tail maps every
// byte, so Decode never fails; the worst case is lossy text. The name
// of the winning encoding is returned for reporting.
func Decode(raw []byte) (text, encName string) {
	if utf8.Valid(raw) {
		return string(raw), "utf-8"
	}
	for _, a := range attempts {
		out, err := a.enc.NewDecoder().Bytes(raw)
		if err != nil {
			continue
		}
		// x/text decoders substitute U+FFFD instead of erroring;
		// any substitution means this strict attempt failed.
		s := string(out)
		if strings.ContainsRune(s, utf8.RuneError) {
			continue
		}
		return s, a.name
	}
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	return string(out), "latin-1"
}
