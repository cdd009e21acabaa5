// Package charset maps ECI (Extended Channel Interpretation) values to
// encoding names and guesses an encoding when a symbol carries none.
package charset

import "errors"

// ErrFormatECI indicates an ECI value outside the valid [0, 900) range.
var ErrFormatECI = errors.New("charset: invalid ECI value")

// ECI associates an ECI numeric value with the encoding it designates.
type ECI struct {
	Value   int
	Name    string
	GoName  string // name understood by golang.org/x/text/encoding
	Aliases []string
}

// eciDef is a table row before the legacy-value aliasing pass; legacyValues
// holds additional ECI values (beyond Value) that also resolve to this
// entry, e.g. ECI 2 and 3 being obsolete synonyms for Cp437 and ISO8859_1.
type eciDef struct {
	ECI
	legacyValues []int
}

var eciTable = []eciDef{
	{ECI{0, "Cp437", "IBM437", nil}, []int{2}},
	{ECI{1, "ISO8859_1", "ISO8859_1", []string{"ISO-8859-1"}}, []int{3}},
	{ECI{4, "ISO8859_2", "ISO8859_2", []string{"ISO-8859-2"}}, nil},
	{ECI{5, "ISO8859_3", "ISO8859_3", []string{"ISO-8859-3"}}, nil},
	{ECI{6, "ISO8859_4", "ISO8859_4", []string{"ISO-8859-4"}}, nil},
	{ECI{7, "ISO8859_5", "ISO8859_5", []string{"ISO-8859-5"}}, nil},
	{ECI{8, "ISO8859_6", "ISO8859_6", []string{"ISO-8859-6"}}, nil},
	{ECI{9, "ISO8859_7", "ISO8859_7", []string{"ISO-8859-7"}}, nil},
	{ECI{10, "ISO8859_8", "ISO8859_8", []string{"ISO-8859-8"}}, nil},
	{ECI{11, "ISO8859_9", "ISO8859_9", []string{"ISO-8859-9"}}, nil},
	{ECI{12, "ISO8859_10", "ISO8859_10", []string{"ISO-8859-10"}}, nil},
	{ECI{13, "ISO8859_11", "ISO8859_11", []string{"ISO-8859-11"}}, nil},
	{ECI{15, "ISO8859_13", "ISO8859_13", []string{"ISO-8859-13"}}, nil},
	{ECI{16, "ISO8859_14", "ISO8859_14", []string{"ISO-8859-14"}}, nil},
	{ECI{17, "ISO8859_15", "ISO8859_15", []string{"ISO-8859-15"}}, nil},
	{ECI{18, "ISO8859_16", "ISO8859_16", []string{"ISO-8859-16"}}, nil},
	{ECI{20, "SJIS", "Shift_JIS", []string{"Shift_JIS"}}, nil},
	{ECI{21, "Cp1250", "Windows1250", []string{"windows-1250"}}, nil},
	{ECI{22, "Cp1251", "Windows1251", []string{"windows-1251"}}, nil},
	{ECI{23, "Cp1252", "Windows1252", []string{"windows-1252"}}, nil},
	{ECI{24, "Cp1256", "Windows1256", []string{"windows-1256"}}, nil},
	{ECI{25, "UnicodeBigUnmarked", "UTF-16BE", []string{"UTF-16BE", "UnicodeBig"}}, nil},
	{ECI{26, "UTF8", "UTF-8", []string{"UTF-8"}}, nil},
	{ECI{27, "ASCII", "US-ASCII", []string{"US-ASCII"}}, []int{170}},
	{ECI{28, "Big5", "Big5", nil}, nil},
	{ECI{29, "GB18030", "GB18030", []string{"GB2312", "EUC_CN", "GBK"}}, nil},
	{ECI{30, "EUC_KR", "EUC-KR", []string{"EUC-KR"}}, nil},
}

// Named handles into eciTable, for callers that want a specific ECI
// without going through a lookup.
var (
	ECICp437      = eciByName("Cp437")
	ECIISO8859_1  = eciByName("ISO8859_1")
	ECIISO8859_2  = eciByName("ISO8859_2")
	ECIISO8859_3  = eciByName("ISO8859_3")
	ECIISO8859_4  = eciByName("ISO8859_4")
	ECIISO8859_5  = eciByName("ISO8859_5")
	ECIISO8859_6  = eciByName("ISO8859_6")
	ECIISO8859_7  = eciByName("ISO8859_7")
	ECIISO8859_8  = eciByName("ISO8859_8")
	ECIISO8859_9  = eciByName("ISO8859_9")
	ECIISO8859_10 = eciByName("ISO8859_10")
	ECIISO8859_11 = eciByName("ISO8859_11")
	ECIISO8859_13 = eciByName("ISO8859_13")
	ECIISO8859_14 = eciByName("ISO8859_14")
	ECIISO8859_15 = eciByName("ISO8859_15")
	ECIISO8859_16 = eciByName("ISO8859_16")
	ECISJIS       = eciByName("SJIS")
	ECICp1250     = eciByName("Cp1250")
	ECICp1251     = eciByName("Cp1251")
	ECICp1252     = eciByName("Cp1252")
	ECICp1256     = eciByName("Cp1256")
	ECIUTF16BE    = eciByName("UnicodeBigUnmarked")
	ECIUTF8       = eciByName("UTF8")
	ECIASCII      = eciByName("ASCII")
	ECIBig5       = eciByName("Big5")
	ECIGB18030    = eciByName("GB18030")
	ECIEUC_KR     = eciByName("EUC_KR")
)

var (
	valueToECI map[int]*ECI
	nameToECI  map[string]*ECI
)

func init() {
	valueToECI = make(map[int]*ECI, len(eciTable)*2)
	nameToECI = make(map[string]*ECI, len(eciTable)*3)

	for i := range eciTable {
		def := &eciTable[i]
		eci := &def.ECI

		valueToECI[eci.Value] = eci
		for _, v := range def.legacyValues {
			valueToECI[v] = eci
		}

		nameToECI[eci.Name] = eci
		nameToECI[eci.GoName] = eci
		for _, alias := range eci.Aliases {
			nameToECI[alias] = eci
		}
	}
}

// eciByName looks up a table row during package init, before the lookup
// maps exist; it scans the table directly since init() hasn't run yet.
func eciByName(name string) *ECI {
	for i := range eciTable {
		if eciTable[i].Name == name {
			return &eciTable[i].ECI
		}
	}
	panic("charset: unknown ECI name " + name)
}

// GetECIByValue returns the ECI registered for value, or ErrFormatECI if
// value is outside the legal ECI range. A nil, nil result means the value
// is in range but has no known mapping.
func GetECIByValue(value int) (*ECI, error) {
	if value < 0 || value >= 900 {
		return nil, ErrFormatECI
	}
	return valueToECI[value], nil
}

// GetECIByName returns the ECI registered under name, or nil if unknown.
func GetECIByName(name string) *ECI {
	return nameToECI[name]
}
