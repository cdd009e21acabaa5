package decoder

// DataBlock is one de-interleaved block of data + EC codewords.
type DataBlock struct {
	NumDataCodewords int
	Codewords        []byte
}

// allocateBlocks builds the empty DataBlock slice for ecBlocks: one entry
// per block across all of its groups, each sized for its data codewords
// plus the per-block EC codewords.
func allocateBlocks(ecBlocks *ECBlocks) []DataBlock {
	total := 0
	for _, group := range ecBlocks.Blocks {
		total += group.Count
	}
	blocks := make([]DataBlock, total)
	i := 0
	for _, group := range ecBlocks.Blocks {
		for n := 0; n < group.Count; n++ {
			blockSize := ecBlocks.ECCodewordsPerBlock + group.DataCodewords
			blocks[i] = DataBlock{
				NumDataCodewords: group.DataCodewords,
				Codewords:        make([]byte, blockSize),
			}
			i++
		}
	}
	return blocks
}

// longerBlocksStart finds the index of the first block with more total
// codewords than the (shorter) first block, returning len(blocks) if all
// blocks are the same size.
func longerBlocksStart(blocks []DataBlock) int {
	shortLen := len(blocks[0].Codewords)
	i := len(blocks) - 1
	for i >= 0 && len(blocks[i].Codewords) != shortLen {
		i--
	}
	return i + 1
}

// GetDataBlocks splits a QR symbol's raw, RS-encoded codeword stream back
// into its per-block data+EC codewords, reversing the interleaving the
// encoder applied across blocks of possibly two different lengths (ISO/IEC
// 18004 block interleaving).
func GetDataBlocks(rawCodewords []byte, version *Version, ecLevel ErrorCorrectionLevel) []DataBlock {
	ecBlocks := version.ECBlocksForLevel(ecLevel)
	blocks := allocateBlocks(ecBlocks)

	shortDataLen := len(blocks[0].Codewords) - ecBlocks.ECCodewordsPerBlock
	longStart := longerBlocksStart(blocks)

	src := 0
	for col := 0; col < shortDataLen; col++ {
		for b := range blocks {
			blocks[b].Codewords[col] = rawCodewords[src]
			src++
		}
	}
	for b := longStart; b < len(blocks); b++ {
		blocks[b].Codewords[shortDataLen] = rawCodewords[src]
		src++
	}
	totalLen := len(blocks[0].Codewords)
	for col := shortDataLen; col < totalLen; col++ {
		for b := range blocks {
			dst := col
			if b >= longStart {
				dst = col + 1
			}
			blocks[b].Codewords[dst] = rawCodewords[src]
			src++
		}
	}

	return blocks
}
