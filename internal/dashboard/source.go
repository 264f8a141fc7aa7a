package dashboard

// Source supplies the data shown on the page. The static source is the only
// implementation; something talking to a real CD system would satisfy the
// same interface.
type Source interface {
	Deployments() []Deployment
	Pipelines() []Pipeline
	Metrics() []Metric
	Alerts() []Alert
	Stats() []Stat
}

type StaticSource struct {
	deployments []Deployment
	pipelines   []Pipeline
	metrics     []Metric
	alerts      []Alert
	stats       []Stat
}

func NewStaticSource() *StaticSource {
	s := &StaticSource{}
	s.loadFixtures()
	return s
}

func (s *StaticSource) loadFixtures() {
	s.deployments = []Deployment{
		{ID: 1, Name: "Frontend App", Status: "success", Time: "2 mins ago", Branch: "main"},
		{ID: 2, Name: "API Service", Status: "running", Time: "5 mins ago", Branch: "develop"},
		{ID: 3, Name: "Database Migration", Status: "failed", Time: "10 mins ago", Branch: "hotfix"},
	}

	s.pipelines = []Pipeline{
		{ID: 1, Name: "CI/CD Pipeline", Status: "success", Duration: "3m 24s"},
		{ID: 2, Name: "Test Suite", Status: "running", Duration: "1m 45s"},
		{ID: 3, Name: "Security Scan", Status: "pending", Duration: "-"},
	}

	s.metrics = []Metric{
		{Name: "CPU Usage", Percent: 23, Tone: "green"},
		{Name: "Memory Usage", Percent: 67, Tone: "yellow"},
		{Name: "Disk Usage", Percent: 45, Tone: "blue"},
	}

	s.alerts = []Alert{
		{Severity: SeverityCritical, Title: "Deployment Failed", Message: "Database migration failed", Time: "5 mins ago"},
		{Severity: SeverityWarning, Title: "High Memory Usage", Message: "Server-02 memory at 89%", Time: "12 mins ago"},
		{Severity: SeverityResolved, Title: "Deployment Successful", Message: "Frontend app deployed successfully", Time: "15 mins ago"},
	}

	s.stats = []Stat{
		{Title: "Active Deployments", Value: "3", Note: "+2 from last hour", Icon: "activity"},
		{Title: "Success Rate", Value: "94.2%", Note: "+1.2% from yesterday", Icon: "success-check"},
		{Title: "Avg Deploy Time", Value: "4m 32s", Note: "-23s from last week", Icon: "clock"},
		{Title: "Servers Online", Value: "12/12", Note: "All systems operational", Icon: "server"},
	}
}

func (s *StaticSource) Deployments() []Deployment { return s.deployments }
func (s *StaticSource) Pipelines() []Pipeline     { return s.pipelines }
func (s *StaticSource) Metrics() []Metric         { return s.metrics }
func (s *StaticSource) Alerts() []Alert           { return s.alerts }
func (s *StaticSource) Stats() []Stat             { return s.stats }
