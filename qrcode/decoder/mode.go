package decoder

// Mode is a QR code data segment's encoding mode indicator.
type Mode int

const (
	ModeTerminator         Mode = 0x00
	ModeNumeric            Mode = 0x01
	ModeAlphanumeric       Mode = 0x02
	ModeStructuredAppend   Mode = 0x03
	ModeByte               Mode = 0x04
	ModeFNC1FirstPosition  Mode = 0x05
	ModeECI                Mode = 0x07
	ModeKanji              Mode = 0x08
	ModeFNC1SecondPosition Mode = 0x09
	ModeHanzi              Mode = 0x0D
)

// modeBits maps each mode's 4-bit wire encoding back to the Mode, built
// from the same constants above rather than duplicated as a second
// switch, so the two can't drift out of sync.
var modeBits = map[int]Mode{
	int(ModeTerminator):         ModeTerminator,
	int(ModeNumeric):            ModeNumeric,
	int(ModeAlphanumeric):       ModeAlphanumeric,
	int(ModeStructuredAppend):   ModeStructuredAppend,
	int(ModeByte):               ModeByte,
	int(ModeFNC1FirstPosition):  ModeFNC1FirstPosition,
	int(ModeECI):                ModeECI,
	int(ModeKanji):              ModeKanji,
	int(ModeFNC1SecondPosition): ModeFNC1SecondPosition,
	int(ModeHanzi):              ModeHanzi,
}

// characterCountBits holds, per mode, the character-count field width for
// version ranges [1-9], [10-26], [27-40].
var characterCountBits = map[Mode][3]int{
	ModeTerminator:         {0, 0, 0},
	ModeNumeric:            {10, 12, 14},
	ModeAlphanumeric:       {9, 11, 13},
	ModeStructuredAppend:   {0, 0, 0},
	ModeByte:               {8, 16, 16},
	ModeECI:                {0, 0, 0},
	ModeKanji:              {8, 10, 12},
	ModeFNC1FirstPosition:  {0, 0, 0},
	ModeFNC1SecondPosition: {0, 0, 0},
	ModeHanzi:              {8, 10, 12},
}

// ModeForBits decodes a 4-bit mode indicator.
func ModeForBits(bits int) (Mode, error) {
	m, ok := modeBits[bits]
	if !ok {
		return 0, errInvalidMode
	}
	return m, nil
}

// versionRangeOffset returns which column of characterCountBits applies to
// the given QR version number.
func versionRangeOffset(versionNumber int) int {
	switch {
	case versionNumber <= 9:
		return 0
	case versionNumber <= 26:
		return 1
	default:
		return 2
	}
}

// CharacterCountBits returns how many bits encode this mode's character
// count field in the given symbol version.
func (m Mode) CharacterCountBits(version *Version) int {
	return characterCountBits[m][versionRangeOffset(version.Number)]
}

// Bits returns the mode's 4-bit wire encoding.
func (m Mode) Bits() int {
	return int(m)
}
