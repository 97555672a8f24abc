package diff

// Refine re-matches the two sides of a replace opcode at line
// granularity and returns the nested opcode stream, translated into the
// parent coordinate space. The result is consumed the same way as a
// top-level opcode stream; nested replace opcodes are not refined a
// second time, the aligner pairs their lines positionally.
func Refine(op Opcode, left, right []string) []Opcode {
	sub := Opcodes(left[op.I1:op.I2], right[op.J1:op.J2])
	out := make([]Opcode, len(sub))
	for i, s := range sub {
		out[i] = Opcode{
			Tag: s.Tag,
			I1:  s.I1 + op.I1,
			I2:  s.I2 + op.I1,
			J1:  s.J1 + op.J1,
			J2:  s.J2 + op.J1,
		}
	}
	return out
}
