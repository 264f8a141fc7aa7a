package status

// Kind is the closed set of statuses a deployment or pipeline can report.
type Kind int

const (
	KindUnknown Kind = iota
	KindSuccess
	KindFailed
	KindRunning
	KindPending
)

// Status is a parsed status value. Unknown statuses keep the raw text so it
// can still be shown on the badge.
type Status struct {
	Kind Kind
	raw  string
}

var (
	Success = Status{Kind: KindSuccess, raw: "success"}
	Failed  = Status{Kind: KindFailed, raw: "failed"}
	Running = Status{Kind: KindRunning, raw: "running"}
	Pending = Status{Kind: KindPending, raw: "pending"}
)

// Unknown wraps a status string that is not one of the known values.
func Unknown(raw string) Status {
	return Status{Kind: KindUnknown, raw: raw}
}

// Parse never fails. Matching is exact and case-sensitive.
func Parse(raw string) Status {
	switch raw {
	case "success":
		return Success
	case "failed":
		return Failed
	case "running":
		return Running
	case "pending":
		return Pending
	default:
		return Unknown(raw)
	}
}

func (s Status) String() string {
	return s.raw
}

func (s Status) IsUnknown() bool {
	return s.Kind == KindUnknown
}
