package dashboard

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"launch-dashboard-service/internal/charts"
	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/platform/obs"
	"launch-dashboard-service/internal/services"
)

// A recomputed view and its figure.
type View struct {
	ID     ViewID
	Figure charts.Figure
}

// Dashboard recomputes derived views from the shared read-only dataset.
// It keeps no state between calls; the selection arrives with every call.
type Dashboard struct {
	ds      *domain.Dataset
	graph   *Graph
	logger  *zap.Logger
	metrics *obs.Metrics
}

func New(ds *domain.Dataset, logger *zap.Logger, metrics *obs.Metrics) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{ds: ds, graph: DefaultGraph(), logger: logger, metrics: metrics}
}

func (d *Dashboard) Dataset() *domain.Dataset { return d.ds }
func (d *Dashboard) Graph() *Graph            { return d.graph }

// Render validates sel and recomputes the views affected by the changed inputs.
func (d *Dashboard) Render(ctx context.Context, sel domain.Selection, changed ...Input) (_ []View, err error) {
	defer obs.Time(ctx, d.logger, "dashboard.Render")(&err)

	if err := sel.Validate(d.ds); err != nil {
		return nil, fmt.Errorf("render dashboard: %w", err)
	}

	affected := d.graph.Affected(changed...)
	views := make([]View, 0, len(affected))
	for _, id := range affected {
		var fig charts.Figure
		switch id {
		case ViewSuccessPie:
			fig, err = d.Pie(ctx, sel.Site)
		case ViewPayloadScatter:
			fig, err = d.Scatter(ctx, sel)
		default:
			err = fmt.Errorf("no renderer for view %q", id)
		}
		if err != nil {
			return nil, fmt.Errorf("render dashboard: view %s: %w", id, err)
		}
		views = append(views, View{ID: id, Figure: fig})
	}

	return views, nil
}

// Pie computes the success-count view for a site filter.
func (d *Dashboard) Pie(ctx context.Context, site string) (_ charts.Figure, err error) {
	defer obs.Time(ctx, d.logger, "dashboard.Pie")(&err)

	counts, err := services.SuccessCountBySite(d.ds, site)
	if err != nil {
		return charts.Figure{}, err
	}
	d.metrics.ViewRecomputed(string(ViewSuccessPie))
	return charts.PieFigure(site, counts), nil
}

// Scatter computes the payload/outcome view for a selection.
func (d *Dashboard) Scatter(ctx context.Context, sel domain.Selection) (_ charts.Figure, err error) {
	defer obs.Time(ctx, d.logger, "dashboard.Scatter")(&err)

	records, err := services.PayloadOutcome(d.ds, sel)
	if err != nil {
		return charts.Figure{}, err
	}
	d.metrics.ViewRecomputed(string(ViewPayloadScatter))
	return charts.ScatterFigure(sel, records, d.ds.BoosterCategories()), nil
}
