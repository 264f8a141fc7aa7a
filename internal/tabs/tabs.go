package tabs

import (
	"errors"
	"fmt"
)

type Tab string

const (
	Deployments Tab = "deployments"
	Pipelines   Tab = "pipelines"
	Monitoring  Tab = "monitoring"
)

// Default is the tab shown before anything is selected.
const Default = Deployments

var ErrUnknownTab = errors.New("unknown tab")

var labels = map[Tab]string{
	Deployments: "Deployments",
	Pipelines:   "Pipelines",
	Monitoring:  "Monitoring",
}

// All returns the tabs in display order.
func All() []Tab {
	return []Tab{Deployments, Pipelines, Monitoring}
}

func (t Tab) Label() string {
	return labels[t]
}

func (t Tab) Valid() bool {
	_, ok := labels[t]
	return ok
}

// Parse validates a tab name coming from outside, e.g. a query parameter.
func Parse(s string) (Tab, error) {
	t := Tab(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
	}
	return t, nil
}

// Panel is one content region and whether it is currently shown.
type Panel struct {
	Tab     Tab
	Label   string
	Visible bool
}

// Selector holds the active tab of a single page view.
type Selector struct {
	active Tab
}

func NewSelector() *Selector {
	return &Selector{active: Default}
}

func (s *Selector) Active() Tab {
	return s.active
}

// Select makes t the active tab. On error the previous tab stays active.
func (s *Selector) Select(t Tab) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTab, string(t))
	}
	s.active = t
	return nil
}

func (s *Selector) Visible(t Tab) bool {
	return t == s.active
}

func (s *Selector) Panels() []Panel {
	panels := make([]Panel, 0, len(labels))
	for _, t := range All() {
		panels = append(panels, Panel{
			Tab:     t,
			Label:   t.Label(),
			Visible: s.Visible(t),
		})
	}
	return panels
}
