package dashboard

// Deployment is one row of the deployments panel.
type Deployment struct {
	ID     int
	Name   string
	Status string // success, running, failed, pending; anything else shows as unknown
	Time   string // relative label, e.g. "2 mins ago"
	Branch string
}

// Pipeline is one row of the pipelines panel.
type Pipeline struct {
	ID       int
	Name     string
	Status   string
	Duration string // "-" when the pipeline has not run yet
}

// Metric is a usage gauge on the monitoring panel.
type Metric struct {
	Name    string
	Percent int
	Tone    string // green, yellow, blue
}

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityResolved Severity = "resolved"
)

// Alert is an entry in the recent alerts list.
type Alert struct {
	Severity Severity
	Title    string
	Message  string
	Time     string
}

// Stat is one of the summary cards above the tabs.
type Stat struct {
	Title string
	Value string
	Note  string
	Icon  string
}
