package status

// Category is what the page needs to draw a status: which icon and which
// badge style.
type Category struct {
	Icon  string
	Badge string
}

var (
	CategorySuccess = Category{Icon: "success-check", Badge: "badge-success"}
	CategoryFailure = Category{Icon: "failure-cross", Badge: "badge-failure"}
	CategoryRunning = Category{Icon: "running-play", Badge: "badge-running"}
	CategoryPending = Category{Icon: "pending-pause", Badge: "badge-pending"}
	CategoryUnknown = Category{Icon: "unknown-warning", Badge: "badge-unknown"}
)

// Category returns the display category for s.
func (s Status) Category() Category {
	switch s.Kind {
	case KindSuccess:
		return CategorySuccess
	case KindFailed:
		return CategoryFailure
	case KindRunning:
		return CategoryRunning
	case KindPending:
		return CategoryPending
	default:
		return CategoryUnknown
	}
}

// Classify maps any status string to its display category. Unrecognized
// values get CategoryUnknown.
func Classify(raw string) Category {
	return Parse(raw).Category()
}
