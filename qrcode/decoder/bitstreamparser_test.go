package decoder

import (
	"testing"

	"github.com/joshgraham/symdecode/bitutil"
)

// bitWriter is a small test-only helper for hand-assembling mode-segmented
// payloads, mirroring the style of maxicode_test.go's hand-built codeword
// arrays but at the bit level instead of the codeword level.
type bitWriter struct {
	ba *bitutil.BitArray
}

func newBitWriter() *bitWriter {
	return &bitWriter{ba: bitutil.NewBitArray(0)}
}

func (w *bitWriter) write(value, numBits int) {
	w.ba.AppendBits(uint32(value), numBits)
}

func (w *bitWriter) bytes() []byte {
	numBytes := (w.ba.Size() + 7) / 8
	out := make([]byte, numBytes)
	w.ba.ToBytes(0, out, 0, numBytes)
	return out
}

func TestDecodeBitStreamAlphanumeric(t *testing.T) {
	version, err := GetVersionForNumber(1)
	if err != nil {
		t.Fatalf("GetVersionForNumber: %v", err)
	}

	w := newBitWriter()
	w.write(ModeAlphanumeric.Bits(), 4)
	w.write(5, 9) // "HELLO" has 5 characters, v1 count field is 9 bits
	// HELLO -> pairs (H,E) (L,L) then trailing O
	// alphanumericChars index: H=17, E=14, L=21, O=24
	writeAlphaPair(w, 17, 14)
	writeAlphaPair(w, 21, 21)
	w.write(24, 6)
	w.write(ModeTerminator.Bits(), 4)

	dr, err := DecodeBitStream(w.bytes(), version, ECLevelL, "")
	if err != nil {
		t.Fatalf("DecodeBitStream error: %v", err)
	}
	if dr.Text != "HELLO" {
		t.Errorf("got %q, want %q", dr.Text, "HELLO")
	}
}

func writeAlphaPair(w *bitWriter, c1, c2 int) {
	w.write(c1*45+c2, 11)
}

func TestDecodeBitStreamNumeric(t *testing.T) {
	version, err := GetVersionForNumber(1)
	if err != nil {
		t.Fatalf("GetVersionForNumber: %v", err)
	}

	w := newBitWriter()
	w.write(ModeNumeric.Bits(), 4)
	w.write(5, 10) // "12345" has 5 digits, v1 count field is 10 bits
	w.write(123, 10)
	w.write(45, 7)
	w.write(ModeTerminator.Bits(), 4)

	dr, err := DecodeBitStream(w.bytes(), version, ECLevelM, "")
	if err != nil {
		t.Fatalf("DecodeBitStream error: %v", err)
	}
	if dr.Text != "12345" {
		t.Errorf("got %q, want %q", dr.Text, "12345")
	}
	if dr.ECLevel != "M" {
		t.Errorf("ECLevel = %q, want M", dr.ECLevel)
	}
}

func TestDecodeBitStreamByteLatin1(t *testing.T) {
	version, err := GetVersionForNumber(1)
	if err != nil {
		t.Fatalf("GetVersionForNumber: %v", err)
	}

	payload := []byte("Hi!")
	w := newBitWriter()
	w.write(ModeByte.Bits(), 4)
	w.write(len(payload), 8) // v1 byte-mode count field is 8 bits
	for _, b := range payload {
		w.write(int(b), 8)
	}
	w.write(ModeTerminator.Bits(), 4)

	dr, err := DecodeBitStream(w.bytes(), version, ECLevelQ, "ISO-8859-1")
	if err != nil {
		t.Fatalf("DecodeBitStream error: %v", err)
	}
	if dr.Text != "Hi!" {
		t.Errorf("got %q, want %q", dr.Text, "Hi!")
	}
	if len(dr.ByteSegments) != 1 || string(dr.ByteSegments[0]) != "Hi!" {
		t.Errorf("byteSegments = %v, want [Hi!]", dr.ByteSegments)
	}
}

func TestDecodeBitStreamTruncatedIsFormatError(t *testing.T) {
	version, err := GetVersionForNumber(1)
	if err != nil {
		t.Fatalf("GetVersionForNumber: %v", err)
	}

	w := newBitWriter()
	w.write(ModeNumeric.Bits(), 4)
	w.write(5, 10) // claims 5 digits but no digit bits follow

	if _, err := DecodeBitStream(w.bytes(), version, ECLevelL, ""); err == nil {
		t.Error("expected a format error for a truncated numeric segment")
	}
}
