package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorDefaultsToDeployments(t *testing.T) {
	s := NewSelector()
	assert.Equal(t, Deployments, s.Active())
	assert.True(t, s.Visible(Deployments))
	assert.False(t, s.Visible(Pipelines))
	assert.False(t, s.Visible(Monitoring))
}

func TestSelectShowsExactlyOnePanel(t *testing.T) {
	for _, tab := range All() {
		t.Run(string(tab), func(t *testing.T) {
			s := NewSelector()
			require.NoError(t, s.Select(tab))
			assert.Equal(t, tab, s.Active())

			visible := 0
			for _, p := range s.Panels() {
				if p.Visible {
					visible++
					assert.Equal(t, tab, p.Tab)
				}
			}
			assert.Equal(t, 1, visible)
		})
	}
}

func TestSelectMonitoringHidesOtherPanels(t *testing.T) {
	s := NewSelector()
	require.NoError(t, s.Select(Monitoring))

	assert.False(t, s.Visible(Deployments))
	assert.False(t, s.Visible(Pipelines))
	assert.True(t, s.Visible(Monitoring))
}

func TestSelectRejectsUnknownTab(t *testing.T) {
	s := NewSelector()
	require.NoError(t, s.Select(Pipelines))

	err := s.Select(Tab("settings"))
	assert.ErrorIs(t, err, ErrUnknownTab)
	assert.Equal(t, Pipelines, s.Active())
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Tab
		wantErr bool
	}{
		{"deployments", Deployments, false},
		{"pipelines", Pipelines, false},
		{"monitoring", Monitoring, false},
		{"Monitoring", "", true},
		{"", "", true},
		{"logs", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownTab)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPanelsOrderAndLabels(t *testing.T) {
	panels := NewSelector().Panels()
	require.Len(t, panels, 3)
	assert.Equal(t, "Deployments", panels[0].Label)
	assert.Equal(t, "Pipelines", panels[1].Label)
	assert.Equal(t, "Monitoring", panels[2].Label)
}
