package hal

func pixOffset(stride, x, y int) int {
	return y*stride + x*4
}

func putRGB(buf []byte, off int, r, g, b uint8) {
	if off < 0 || off+3 >= len(buf) {
		return
	}
	buf[off+0] = r
	buf[off+1] = g
	buf[off+2] = b
	buf[off+3] = 0xFF
}
