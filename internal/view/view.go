package view

import (
	"github.com/samber/lo"

	"github.com/devopsboard/dashboard/internal/dashboard"
	"github.com/devopsboard/dashboard/internal/status"
	"github.com/devopsboard/dashboard/internal/tabs"
)

const (
	Title    = "DevOps Dashboard"
	Subtitle = "Monitor your deployments, pipelines, and infrastructure"
)

type TabView struct {
	ID      string
	Label   string
	Href    string
	Visible bool
}

type DeploymentRow struct {
	ID       int
	Name     string
	Status   string // raw status, shown as badge text
	Category status.Category
	Branch   string
	Time     string
}

type PipelineRow struct {
	ID       int
	Name     string
	Status   string
	Category status.Category
	Duration string
}

type AlertView struct {
	Title   string
	Message string
	Time    string
	Icon    string
	Tone    string
}

// Page is everything the dashboard template needs.
type Page struct {
	Title       string
	Subtitle    string
	Active      tabs.Tab
	Tabs        []TabView
	Stats       []dashboard.Stat
	Deployments []DeploymentRow
	Pipelines   []PipelineRow
	Metrics     []dashboard.Metric
	Alerts      []AlertView

	// Pre-rendered chart documents, filled in by the caller.
	HealthChart string
	StatusChart string
}

// Hidden reports whether the panel for tab is not the selected one.
func (p Page) Hidden(tab string) bool {
	return tabs.Tab(tab) != p.Active
}

func Build(board *dashboard.Board, sel *tabs.Selector) Page {
	return Page{
		Title:    Title,
		Subtitle: Subtitle,
		Active:   sel.Active(),
		Tabs: lo.Map(sel.Panels(), func(p tabs.Panel, _ int) TabView {
			return TabView{ID: string(p.Tab), Label: p.Label, Href: "?tab=" + string(p.Tab), Visible: p.Visible}
		}),
		Stats:       board.Stats(),
		Deployments: lo.Map(board.Deployments(), func(d dashboard.Deployment, _ int) DeploymentRow { return NewDeploymentRow(d) }),
		Pipelines:   lo.Map(board.Pipelines(), func(p dashboard.Pipeline, _ int) PipelineRow { return NewPipelineRow(p) }),
		Metrics:     board.Metrics(),
		Alerts:      lo.Map(board.Alerts(), func(a dashboard.Alert, _ int) AlertView { return NewAlertView(a) }),
	}
}

// WithStaticLinks points the tab links at pre-rendered <tab>.html files
// instead of the query parameter the server understands.
func (p Page) WithStaticLinks() Page {
	p.Tabs = lo.Map(p.Tabs, func(t TabView, _ int) TabView {
		t.Href = t.ID + ".html"
		return t
	})
	return p
}

func NewDeploymentRow(d dashboard.Deployment) DeploymentRow {
	return DeploymentRow{
		ID:       d.ID,
		Name:     d.Name,
		Status:   d.Status,
		Category: status.Classify(d.Status),
		Branch:   d.Branch,
		Time:     d.Time,
	}
}

func NewPipelineRow(p dashboard.Pipeline) PipelineRow {
	return PipelineRow{
		ID:       p.ID,
		Name:     p.Name,
		Status:   p.Status,
		Category: status.Classify(p.Status),
		Duration: p.Duration,
	}
}

func NewAlertView(a dashboard.Alert) AlertView {
	v := AlertView{Title: a.Title, Message: a.Message, Time: a.Time}
	switch a.Severity {
	case dashboard.SeverityCritical:
		v.Icon, v.Tone = status.CategoryFailure.Icon, "red"
	case dashboard.SeverityResolved:
		v.Icon, v.Tone = status.CategorySuccess.Icon, "green"
	default:
		v.Icon, v.Tone = status.CategoryUnknown.Icon, "yellow"
	}
	return v
}
