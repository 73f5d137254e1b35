package options

// TraceEnum selects which engine events a Reflector logs at debug level.
type TraceEnum int

const (
	TracePasses  TraceEnum = 1 << iota // every decode pass: activation ordinal, depth bound, activated path
	TraceCache                         // property cache hits and stores
	TraceResults                       // located properties, misses and enumeration sizes

	TraceAll  TraceEnum = (1 << iota) - 1 // all events combined
	TraceNone TraceEnum = 0               // nothing is traced
)

// Has reports whether every event in flag is selected.
func (t TraceEnum) Has(flag TraceEnum) bool {
	return t&flag == flag
}

// ParseTrace turns a list of event names into a TraceEnum.
// Known names are "passes", "cache", "results", "all" and "none".
func ParseTrace(names ...string) (TraceEnum, bool) {
	var out TraceEnum

	for _, name := range names {
		switch name {
		case "passes":
			out |= TracePasses
		case "cache":
			out |= TraceCache
		case "results":
			out |= TraceResults
		case "all":
			out |= TraceAll
		case "none":
		default:
			return 0, false
		}
	}

	return out, true
}
