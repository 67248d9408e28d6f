package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launch-dashboard-service/internal/charts"
	"launch-dashboard-service/internal/domain"
)

func testDashboard(t *testing.T) *Dashboard {
	t.Helper()

	ds, err := domain.NewDataset([]domain.LaunchRecord{
		{Site: "CCAFS LC-40", PayloadMassKg: 0, Outcome: domain.OutcomeFailure, BoosterCategory: "v1.0"},
		{Site: "KSC LC-39A", PayloadMassKg: 2490, Outcome: domain.OutcomeSuccess, BoosterCategory: "FT"},
		{Site: "KSC LC-39A", PayloadMassKg: 5300, Outcome: domain.OutcomeFailure, BoosterCategory: "FT"},
		{Site: "VAFB SLC-4E", PayloadMassKg: 9600, Outcome: domain.OutcomeSuccess, BoosterCategory: "B4"},
	})
	require.NoError(t, err)
	return New(ds, nil, nil)
}

func ids(views []View) []ViewID {
	out := make([]ViewID, 0, len(views))
	for _, v := range views {
		out = append(out, v.ID)
	}
	return out
}

func TestGraphAffected(t *testing.T) {
	g := DefaultGraph()

	cases := []struct {
		name    string
		changed []Input
		want    []ViewID
	}{
		{"initial render", nil, []ViewID{ViewSuccessPie, ViewPayloadScatter}},
		{"site change", []Input{InputSite}, []ViewID{ViewSuccessPie, ViewPayloadScatter}},
		{"payload change", []Input{InputPayload}, []ViewID{ViewPayloadScatter}},
		{"both", []Input{InputPayload, InputSite}, []ViewID{ViewSuccessPie, ViewPayloadScatter}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Affected(tc.changed...))
		})
	}
}

func TestGraphAddExtendsDependencies(t *testing.T) {
	g := NewGraph()
	g.Add("summary", InputSite)
	g.Add("summary", InputPayload)

	assert.Equal(t, []ViewID{"summary"}, g.Views())
	assert.Equal(t, []ViewID{"summary"}, g.Affected(InputPayload))
}

func TestParseInputs(t *testing.T) {
	got, err := ParseInputs(" site, payload ,")
	require.NoError(t, err)
	assert.Equal(t, []Input{InputSite, InputPayload}, got)

	got, err = ParseInputs("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseInputs("site,booster")
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
}

func TestDashboardRender(t *testing.T) {
	d := testDashboard(t)
	ctx := context.Background()

	t.Run("initial render computes both views", func(t *testing.T) {
		views, err := d.Render(ctx, domain.DefaultSelection(d.Dataset()))
		require.NoError(t, err)
		require.Equal(t, []ViewID{ViewSuccessPie, ViewPayloadScatter}, ids(views))

		pie := views[0].Figure
		assert.Equal(t, charts.KindPie, pie.Kind)
		assert.Equal(t, "Total Success Launches By Site", pie.Title)
		assert.Len(t, pie.Slices, 2)

		scatter := views[1].Figure
		assert.Equal(t, charts.KindScatter, scatter.Kind)
		assert.False(t, scatter.Empty())
	})

	t.Run("payload change recomputes only the scatter", func(t *testing.T) {
		sel := domain.Selection{Site: "KSC LC-39A", Payload: domain.PayloadRange{Lower: 2000, Upper: 3000}}

		views, err := d.Render(ctx, sel, InputPayload)
		require.NoError(t, err)
		require.Equal(t, []ViewID{ViewPayloadScatter}, ids(views))

		fig := views[0].Figure
		assert.Equal(t, "Payload and Launch outcome for KSC LC-39A", fig.Title)
		require.Len(t, fig.Series, 1)
		assert.Equal(t, []charts.Point{{X: 2490, Y: 1}}, fig.Series[0].Points)
	})

	t.Run("selection with no matches renders empty figures", func(t *testing.T) {
		sel := domain.Selection{Site: "CCAFS LC-40", Payload: domain.PayloadRange{Lower: 100, Upper: 200}}

		views, err := d.Render(ctx, sel)
		require.NoError(t, err)
		assert.False(t, views[0].Figure.Empty(), "pie ignores the payload range")
		assert.True(t, views[1].Figure.Empty())
	})

	t.Run("invalid selection is rejected", func(t *testing.T) {
		_, err := d.Render(ctx, domain.Selection{Site: "Nowhere", Payload: domain.PayloadRange{Lower: 0, Upper: 1}})
		assert.ErrorIs(t, err, domain.ErrInvalidSelection)

		_, err = d.Render(ctx, domain.Selection{Site: domain.AllSites, Payload: domain.PayloadRange{Lower: 2, Upper: 1}}, InputSite)
		assert.ErrorIs(t, err, domain.ErrInvalidSelection)
	})
}
