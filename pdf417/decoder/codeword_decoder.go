package decoder

import "math"

// ratiosTable[i] is the expected bar/space width ratios for symbolTable[i],
// one ratio per of the barsInModule runs making up the symbol.
var ratiosTable = buildRatiosTable()

func buildRatiosTable() [len(symbolTable)][barsInModule]float32 {
	var table [len(symbolTable)][barsInModule]float32
	for i, symbol := range symbolTable {
		currentBit := symbol & 0x1
		for j := 0; j < barsInModule; j++ {
			var size float32
			for (symbol & 0x1) == currentBit {
				size++
				symbol >>= 1
			}
			currentBit = symbol & 0x1
			table[i][barsInModule-j-1] = size / float32(modulesInCodeword)
		}
	}
	return table
}

// GetDecodedValue decodes a module bit-count pattern into a codeword value,
// falling back to the nearest ratio match when the exact bit pattern isn't
// a known codeword.
func GetDecodedValue(moduleBitCount []int) int {
	if v := getDecodedCodewordValue(sampleBitCounts(moduleBitCount)); v != -1 {
		return v
	}
	return getClosestDecodedValue(moduleBitCount)
}

func sampleBitCounts(moduleBitCount []int) []int {
	bitCountSum := sumInts(moduleBitCount)
	result := make([]int, barsInModule)
	bitCountIndex := 0
	sumPreviousBits := 0
	for i := 0; i < modulesInCodeword; i++ {
		sampleIndex := float64(bitCountSum)/(2.0*float64(modulesInCodeword)) +
			float64(i)*float64(bitCountSum)/float64(modulesInCodeword)
		if float64(sumPreviousBits+moduleBitCount[bitCountIndex]) <= sampleIndex {
			sumPreviousBits += moduleBitCount[bitCountIndex]
			bitCountIndex++
		}
		result[bitCountIndex]++
	}
	return result
}

func getDecodedCodewordValue(moduleBitCount []int) int {
	value := getBitValue(moduleBitCount)
	if getCodeword(value) == -1 {
		return -1
	}
	return value
}

// getBitValue packs moduleBitCount's alternating bar/space run lengths into
// a single integer, one bit per module, with bars (even-indexed runs) as 1.
func getBitValue(moduleBitCount []int) int {
	var result int64
	for i, count := range moduleBitCount {
		bit := int64(0)
		if i%2 == 0 {
			bit = 1
		}
		for n := 0; n < count; n++ {
			result = (result << 1) | bit
		}
	}
	return int(result)
}

func getClosestDecodedValue(moduleBitCount []int) int {
	return closestSymbol(toRatios(moduleBitCount))
}

func toRatios(moduleBitCount []int) []float32 {
	ratios := make([]float32, barsInModule)
	if sum := sumInts(moduleBitCount); sum > 1 {
		for i := range ratios {
			ratios[i] = float32(moduleBitCount[i]) / float32(sum)
		}
	}
	return ratios
}

// closestSymbol returns the symbol whose ratiosTable entry has the lowest
// squared-error distance from ratios, bailing out of a row's comparison
// early once its partial error already exceeds the best found so far.
func closestSymbol(ratios []float32) int {
	bestError := float32(math.MaxFloat32)
	bestSymbol := -1
	for i, row := range ratiosTable {
		var errSum float32
		for k := 0; k < barsInModule; k++ {
			diff := row[k] - ratios[k]
			errSum += diff * diff
			if errSum >= bestError {
				break
			}
		}
		if errSum < bestError {
			bestError = errSum
			bestSymbol = symbolTable[i]
		}
	}
	return bestSymbol
}

func sumInts(values []int) int {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum
}
