package fft

// BitReverse reorders data in place so that the element at index i moves to
// the index whose log2(len(data))-bit binary representation is i reversed.
// len(data) must be a power of 2. The permutation is its own inverse.
//
// The reversed target index is advanced incrementally (clear the leading run
// of set bits from the top, then set the next one), so the whole pass is O(N).
func BitReverse(data []Complex) {
	n := len(data)
	target := 0

	for i := range n {
		if target > i {
			data[target], data[i] = data[i], data[target]
		}

		mask := n >> 1
		for mask > 0 && target&mask != 0 {
			target &^= mask
			mask >>= 1
		}

		target |= mask
	}
}
