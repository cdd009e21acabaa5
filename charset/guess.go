package charset

import (
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// DecodeBytes converts data from the named encoding to UTF-8. Only the
// encodings byte-mode QR/Data Matrix payloads actually use beyond Latin-1
// are handled specially; anything else (including UTF-8/ASCII/ISO-8859-1)
// passes through unchanged, and a transform failure falls back to the raw
// bytes rather than losing data.
func DecodeBytes(data []byte, encoding string) string {
	switch encoding {
	case "Shift_JIS", "SJIS":
		if decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), data); err == nil {
			return string(decoded)
		}
	case "GB18030", "GB2312", "GBK", "EUC_CN":
		if decoded, _, err := transform.Bytes(simplifiedchinese.GB18030.NewDecoder(), data); err == nil {
			return string(decoded)
		}
	}
	return string(data)
}

// utf8Probe tracks whether a byte stream remains valid UTF-8 as bytes are
// fed to it one at a time, and counts multi-byte sequences by length.
type utf8Probe struct {
	ok         bool
	bytesLeft  int
	twoByte    int
	threeByte  int
	fourByte   int
}

func newUTF8Probe() *utf8Probe { return &utf8Probe{ok: true} }

func (p *utf8Probe) feed(value int) {
	if !p.ok {
		return
	}
	if p.bytesLeft > 0 {
		if value&0x80 == 0 {
			p.ok = false
		} else {
			p.bytesLeft--
		}
		return
	}
	if value&0x80 == 0 {
		return // plain ASCII byte
	}
	if value&0x40 == 0 {
		p.ok = false // continuation byte with no lead byte
		return
	}
	p.bytesLeft++
	if value&0x20 == 0 {
		p.twoByte++
		return
	}
	p.bytesLeft++
	if value&0x10 == 0 {
		p.threeByte++
		return
	}
	p.bytesLeft++
	if value&0x08 == 0 {
		p.fourByte++
		return
	}
	p.ok = false // 5+ byte sequence, not valid UTF-8
}

func (p *utf8Probe) finish() {
	if p.ok && p.bytesLeft > 0 {
		p.ok = false // stream ended mid-sequence
	}
}

// latin1Probe tracks whether a byte stream is plausible ISO-8859-1, and
// counts bytes in the upper range that aren't common Latin-1 punctuation
// (used to break ties against Shift_JIS).
type latin1Probe struct {
	ok        bool
	highOther int
}

func newLatin1Probe() *latin1Probe { return &latin1Probe{ok: true} }

func (p *latin1Probe) feed(value int) {
	if !p.ok {
		return
	}
	if value > 0x7F && value < 0xA0 {
		p.ok = false
		return
	}
	if value > 0x9F && (value < 0xC0 || value == 0xD7 || value == 0xF7) {
		p.highOther++
	}
}

// sjisProbe tracks whether a byte stream is plausible Shift_JIS, and
// tracks the longest run of katakana and of double-byte characters, which
// distinguish genuine Shift_JIS text from coincidentally-valid byte runs.
type sjisProbe struct {
	ok                 bool
	bytesLeft          int
	katakanaChars      int
	curKatakanaRun     int
	curDoubleByteRun   int
	maxKatakanaRun     int
	maxDoubleByteRun   int
}

func newSJISProbe() *sjisProbe { return &sjisProbe{ok: true} }

func (p *sjisProbe) feed(value int) {
	if !p.ok {
		return
	}
	if p.bytesLeft > 0 {
		if value < 0x40 || value == 0x7F || value > 0xFC {
			p.ok = false
		} else {
			p.bytesLeft--
		}
		return
	}
	switch {
	case value == 0x80 || value == 0xA0 || value > 0xEF:
		p.ok = false
	case value > 0xA0 && value < 0xE0:
		p.katakanaChars++
		p.curDoubleByteRun = 0
		p.curKatakanaRun++
		if p.curKatakanaRun > p.maxKatakanaRun {
			p.maxKatakanaRun = p.curKatakanaRun
		}
	case value > 0x7F:
		p.bytesLeft++
		p.curKatakanaRun = 0
		p.curDoubleByteRun++
		if p.curDoubleByteRun > p.maxDoubleByteRun {
			p.maxDoubleByteRun = p.curDoubleByteRun
		}
	default:
		p.curKatakanaRun = 0
		p.curDoubleByteRun = 0
	}
}

func (p *sjisProbe) finish() {
	if p.ok && p.bytesLeft > 0 {
		p.ok = false
	}
}

func hasUTF16BOM(data []byte) bool {
	return len(data) > 2 &&
		((data[0] == 0xFE && data[1] == 0xFF) || (data[0] == 0xFF && data[1] == 0xFE))
}

func hasUTF8BOM(data []byte) bool {
	return len(data) > 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF
}

// GuessEncoding infers the encoding of data when characterSet is empty,
// checking for a byte-order mark first and otherwise running parallel
// UTF-8, ISO-8859-1, and Shift_JIS validity probes over the whole input,
// matching ZXing's StringUtils heuristic. Returns an encoding name
// understood by DecodeBytes.
func GuessEncoding(data []byte, characterSet string) string {
	if characterSet != "" {
		return characterSet
	}
	if hasUTF16BOM(data) {
		return "UTF-16"
	}

	utf8p := newUTF8Probe()
	latin1p := newLatin1Probe()
	sjisp := newSJISProbe()
	bom := hasUTF8BOM(data)

	for i := 0; i < len(data) && (latin1p.ok || sjisp.ok || utf8p.ok); i++ {
		value := int(data[i]) & 0xFF
		utf8p.feed(value)
		latin1p.feed(value)
		sjisp.feed(value)
	}
	utf8p.finish()
	sjisp.finish()

	length := len(data)
	switch {
	case utf8p.ok && (bom || utf8p.twoByte+utf8p.threeByte+utf8p.fourByte > 0):
		return "UTF-8"
	case sjisp.ok && (sjisp.maxKatakanaRun >= 3 || sjisp.maxDoubleByteRun >= 3):
		return "Shift_JIS"
	case latin1p.ok && sjisp.ok:
		if (sjisp.maxKatakanaRun == 2 && sjisp.katakanaChars == 2) || latin1p.highOther*10 >= length {
			return "Shift_JIS"
		}
		return "ISO-8859-1"
	case latin1p.ok:
		return "ISO-8859-1"
	case sjisp.ok:
		return "Shift_JIS"
	default:
		return "UTF-8"
	}
}
