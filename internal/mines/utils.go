package mines

// neighbours calls fn for every in-bounds cell of the 3x3 block centred on
// (row, col), the centre included.
func neighbours(size, row, col int, fn func(r, c int)) {
	for r := max(0, row-1); r < min(size, row+2); r++ {
		for c := max(0, col-1); c < min(size, col+2); c++ {
			fn(r, c)
		}
	}
}
