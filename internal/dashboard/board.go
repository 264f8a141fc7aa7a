package dashboard

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

var ErrDuplicateID = errors.New("duplicate id")

// Board is the read-only view model for one page. Collections keep the order
// they came in, which is also the display order.
type Board struct {
	deployments []Deployment
	pipelines   []Pipeline
	metrics     []Metric
	alerts      []Alert
	stats       []Stat
}

// NewBoard copies everything out of src and checks that deployment and
// pipeline IDs are unique within their list.
func NewBoard(src Source) (*Board, error) {
	deployments := slices.Clone(src.Deployments())
	if dups := lo.FindDuplicatesBy(deployments, func(d Deployment) int { return d.ID }); len(dups) > 0 {
		return nil, fmt.Errorf("deployments: %w %d", ErrDuplicateID, dups[0].ID)
	}

	pipelines := slices.Clone(src.Pipelines())
	if dups := lo.FindDuplicatesBy(pipelines, func(p Pipeline) int { return p.ID }); len(dups) > 0 {
		return nil, fmt.Errorf("pipelines: %w %d", ErrDuplicateID, dups[0].ID)
	}

	return &Board{
		deployments: deployments,
		pipelines:   pipelines,
		metrics:     slices.Clone(src.Metrics()),
		alerts:      slices.Clone(src.Alerts()),
		stats:       slices.Clone(src.Stats()),
	}, nil
}

func (b *Board) Deployments() []Deployment { return slices.Clone(b.deployments) }
func (b *Board) Pipelines() []Pipeline     { return slices.Clone(b.pipelines) }
func (b *Board) Metrics() []Metric         { return slices.Clone(b.metrics) }
func (b *Board) Alerts() []Alert           { return slices.Clone(b.alerts) }
func (b *Board) Stats() []Stat             { return slices.Clone(b.stats) }
