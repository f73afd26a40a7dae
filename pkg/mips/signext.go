package mips

// signExtend replicates bit (width-1) of v into the upper (32-width)
// bits of the returned int32. It is the shared primitive behind se8,
// se16, and se18.
func signExtend(v uint32, width uint) int32 {
	shift := 32 - width
	return int32(v<<shift) >> shift
}

func se8(v uint32) int32  { return signExtend(v, 8) }
func se16(v uint32) int32 { return signExtend(v, 16) }
func se18(v uint32) int32 { return signExtend(v, 18) }
