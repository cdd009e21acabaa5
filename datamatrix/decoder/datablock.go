package decoder

import "fmt"

// DataBlock is one de-interleaved block of data + EC codewords.
type DataBlock struct {
	NumDataCodewords int
	Codewords        []byte
}

// allocateBlocks builds the empty DataBlock slice for ecBlocks, one entry
// per block across all groups, sized for its data codewords plus the
// shared per-block EC codeword count.
func allocateBlocks(ecBlocks ECBlocks, totalBlocks int) []DataBlock {
	ecPerBlock := ecBlocks.ECCodewords
	blocks := make([]DataBlock, totalBlocks)
	i := 0
	for _, group := range ecBlocks.Blocks {
		for n := 0; n < group.Count; n++ {
			blocks[i] = DataBlock{
				NumDataCodewords: group.DataCodewords,
				Codewords:        make([]byte, group.DataCodewords+ecPerBlock),
			}
			i++
		}
	}
	return blocks
}

// longerBlocksStart returns the index of the first block with more data
// codewords than block 0, or len(blocks) if every block is the same size.
// Data Matrix blocks differ by at most one data codeword.
func longerBlocksStart(blocks []DataBlock) int {
	shortLen := blocks[0].NumDataCodewords
	for i, blk := range blocks {
		if blk.NumDataCodewords > shortLen {
			return i
		}
	}
	return len(blocks)
}

// GetDataBlocks reverses Data Matrix's interleaving, in which every block's
// data codewords are interleaved first (shorter blocks first, then the
// extra codeword of any longer blocks), followed by every block's EC
// codewords interleaved the same way.
func GetDataBlocks(rawCodewords []byte, version *Version) ([]DataBlock, error) {
	ecBlocks := version.GetECBlocks()

	totalBlocks := 0
	for _, group := range ecBlocks.Blocks {
		totalBlocks += group.Count
	}
	if totalBlocks == 0 {
		return nil, fmt.Errorf("datamatrix/decoder: no EC blocks defined")
	}

	blocks := allocateBlocks(ecBlocks, totalBlocks)
	ecPerBlock := ecBlocks.ECCodewords
	shortDataLen := blocks[0].NumDataCodewords
	longStart := longerBlocksStart(blocks)

	src := 0
	take := func() (byte, error) {
		if src >= len(rawCodewords) {
			return 0, fmt.Errorf("datamatrix/decoder: not enough raw codewords")
		}
		v := rawCodewords[src]
		src++
		return v, nil
	}

	for col := 0; col < shortDataLen; col++ {
		for b := range blocks {
			v, err := take()
			if err != nil {
				return nil, err
			}
			blocks[b].Codewords[col] = v
		}
	}
	for b := longStart; b < totalBlocks; b++ {
		v, err := take()
		if err != nil {
			return nil, err
		}
		blocks[b].Codewords[shortDataLen] = v
	}
	for col := 0; col < ecPerBlock; col++ {
		for b := range blocks {
			v, err := take()
			if err != nil {
				return nil, err
			}
			blocks[b].Codewords[blocks[b].NumDataCodewords+col] = v
		}
	}

	if src != len(rawCodewords) {
		return nil, fmt.Errorf("datamatrix/decoder: raw codewords count mismatch: used %d of %d", src, len(rawCodewords))
	}
	return blocks, nil
}
