package game

// Result reports the outcome of a placement attempt.
type Result int

const (
	Legal             Result = 0
	IllegalTurn       Result = -1
	IllegalPass       Result = -2
	IllegalOutOfRange Result = -3
	IllegalNotEmpty   Result = -4
	IllegalSuicide    Result = -5
	IllegalTake       Result = -6
)

func (r Result) Legal() bool {
	return r == Legal
}

func (r Result) String() string {
	switch r {
	case Legal:
		return "legal"
	case IllegalTurn:
		return "illegal turn"
	case IllegalPass:
		return "illegal pass"
	case IllegalOutOfRange:
		return "illegal out of range"
	case IllegalNotEmpty:
		return "illegal not empty"
	case IllegalSuicide:
		return "illegal suicide"
	case IllegalTake:
		return "illegal take"
	}
	return "unknown"
}
