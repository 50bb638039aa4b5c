package hardfloat

// propagateNaN picks the NaN result of an operation that has at least one
// NaN operand: the first NaN in argument order with its quiet bit forced, or
// the default NaN when ctl asks for it.
func (f Format) propagateNaN(ctl Control, ops ...Rec) Rec {
	if ctl&DefaultNaN != 0 {
		return f.DefaultNaN()
	}
	for _, r := range ops {
		if f.IsNaN(r) {
			return f.quiet(r)
		}
	}
	return f.DefaultNaN()
}

func (f Format) quiet(r Rec) Rec {
	r.Lo |= f.quietBit()
	return r
}

// signalingFlags returns Invalid when any operand is a signaling NaN.
func (f Format) signalingFlags(ops ...Rec) Flags {
	for _, r := range ops {
		if f.IsSignalingNaN(r) {
			return Invalid
		}
	}
	return 0
}
