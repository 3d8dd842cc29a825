package textenc

import "testing"

func TestDecodeUTF8(t *testing.T) {
	text, enc := Decode([]byte("hello, 세계"))
	if enc != "utf-8" {
		t.Fatalf("encoding = %q, want utf-8", enc)
	}
	if text != "hello, 세계" {
		t.Fatalf("text = %q", text)
	}
}

func TestDecodeEUCKR(t *testing.T) {
	// "한" encoded as EUC-KR.
	text, enc := Decode([]byte{0xC7, 0xD1})
	if enc != "cp949" {
		t.Fatalf("encoding = %q, want cp949", enc)
	}
	if text != "한" {
		t.Fatalf("text = %q, want 한", text)
	}
}

func TestDecodeLatin1Fallback(t *testing.T) {
	// 0xFF is not a valid EUC-KR lead byte; only latin-1 accepts it.
	text, enc := Decode([]byte{0x61, 0xFF})
	if enc != "latin-1" {
		t.Fatalf("encoding = %q, want latin-1", enc)
	}
	if text != "aÿ" {
		t.Fatalf("text = %q, want aÿ", text)
	}
}

// Pure-ASCII bytes are identical in every supported encoding, so they
// must always round-trip exactly.
func TestDecodeASCIIRoundTrip(t *testing.T) {
	const in = "The quick brown fox; 123!"
	text, enc := Decode([]byte(in))
	if text != in {
		t.Fatalf("text = %q, want %q", text, in)
	}
	if enc != "utf-8" {
		t.Fatalf("encoding = %q, want utf-8", enc)
	}
}

func TestDecodeNeverFails(t *testing.T) {
	inputs := [][]byte{nil, {}, {0x00}, {0xFF, 0xFE, 0xFD}, {0x80, 0x81}}
	for _, in := range inputs {
		if text, enc := Decode(in); enc == "" && text == "" && len(in) > 0 {
			t.Errorf("Decode(% X) returned nothing", in)
		}
	}
}
