package poly

// DispatchLevel names the backend an operation was executed on. Every
// operation in ops/ picks one of these automatically based on input size.
// area.Area and area.BatchArea return the level they used alongside their
// result; the translate and self-intersection entry points do not report
// one.
type DispatchLevel int

const (
	// DispatchScalar runs a plain sequential Go loop.
	DispatchScalar DispatchLevel = iota
	// DispatchParallel splits the work across poly/contrib/workerpool.
	DispatchParallel
	// DispatchOffload ships the work to an accelerator through
	// poly/offload. Only reachable when a backend is Available.
	DispatchOffload
)

// String returns a short lower-case name, suitable for log lines and
// benchmark table headers.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchParallel:
		return "parallel"
	case DispatchOffload:
		return "offload"
	default:
		return "unknown"
	}
}
