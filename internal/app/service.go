// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kselvam/pulseboard/internal/adapters/repository"
	"github.com/kselvam/pulseboard/internal/domain/catalog"
	"github.com/kselvam/pulseboard/internal/domain/format"
	"github.com/kselvam/pulseboard/internal/domain/frame"
	"github.com/kselvam/pulseboard/internal/domain/kpi"
	"github.com/kselvam/pulseboard/pkg/logger"
	"github.com/kselvam/pulseboard/pkg/metrics"
)

// Grouping dimensions accepted by GroupedTable.
const (
	GroupByEntity = "entity"
	GroupByYear   = "year"
	GroupByPeriod = "period"
)

// FormattedBundle is the KPI bundle rendered for display. Currency-valued
// categories format with the rupee sign, user categories as plain numbers.
type FormattedBundle struct {
	TotalValue     string `json:"total_value"`
	TotalCount     string `json:"total_count"`
	Average        string `json:"average"`
	TopEntityValue string `json:"top_entity_value"`
	YoY            string `json:"yoy"`
	QoQ            string `json:"qoq"`
	CAGR           string `json:"cagr"`
}

// Overview is the full dashboard payload for one category and selection.
type Overview struct {
	Category   string          `json:"category"`
	ValueLabel string          `json:"value_label"`
	ColorScale string          `json:"color_scale"`
	Selection  frame.Selection `json:"selection"`
	KPIs       kpi.Bundle      `json:"kpis"`
	Formatted  FormattedBundle `json:"formatted"`
	ByEntity   []kpi.Group     `json:"by_entity"`
	ByYear     []kpi.Group     `json:"by_year"`
	ByPeriod   []kpi.Group     `json:"by_period"`
}

// Stats reports service-level counters.
type Stats struct {
	Categories    int   `json:"categories"`
	CacheEntries  int   `json:"cache_entries"`
	UptimeSeconds int64 `json:"uptime_seconds"`
}

// sizer is implemented by caching loaders that can report their size.
type sizer interface {
	Size() int
}

// Service wires the catalog, loader and metric engine into the operations
// the HTTP API needs.
type Service struct {
	loader        repository.Loader
	catalog       *catalog.Catalog
	logger        logger.Logger
	maxTableLimit int
	startedAt     time.Time
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLoader sets the frame loader.
func WithLoader(loader repository.Loader) Option {
	return func(s *Service) {
		if loader != nil {
			s.loader = loader
		}
	}
}

// WithCatalog sets the category registry.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxTableLimit caps the limit accepted by GroupedTable.
func WithMaxTableLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxTableLimit = limit
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		catalog:       catalog.New(),
		maxTableLimit: 100,
		startedAt:     time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Categories lists every resolvable category config, sorted by name.
func (s *Service) Categories(_ context.Context) []catalog.Config {
	names := s.catalog.Categories()
	out := make([]catalog.Config, 0, len(names))
	for _, name := range names {
		cfg, err := s.catalog.Resolve(name)
		if err != nil {
			continue
		}
		out = append(out, cfg)
	}
	return out
}

// Overview runs the full pipeline for one category: resolve, load, filter,
// compute, format, group. Unknown categories fail before any load is
// issued; load failures degrade to an empty frame.
func (s *Service) Overview(ctx context.Context, category string, sel *frame.Selection) (*Overview, error) {
	cfg, f, applied, err := s.materialize(ctx, category, sel)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	bundle := kpi.Compute(f, cfg)
	metrics.RecordKPICompute(float64(time.Since(start).Milliseconds()))

	o := &Overview{
		Category:   cfg.Category,
		ValueLabel: cfg.ValueLabel,
		ColorScale: cfg.ColorScale,
		Selection:  applied,
		KPIs:       bundle,
		Formatted:  formatBundle(bundle, cfg),
		ByYear:     kpi.SumByYear(f, cfg.ValueColumn),
		ByPeriod:   kpi.SumByPeriod(f, cfg.ValueColumn),
	}
	if cfg.LabelColumn != "" {
		o.ByEntity = kpi.SumByLabel(f, cfg.LabelColumn, cfg.ValueColumn, cfg.CountColumn)
	}
	return o, nil
}

// GroupedTable returns a single grouped table for charting. limit <= 0
// means no explicit limit; the configured cap applies either way.
func (s *Service) GroupedTable(ctx context.Context, category string, sel *frame.Selection, groupBy string, limit int) ([]kpi.Group, error) {
	cfg, f, _, err := s.materialize(ctx, category, sel)
	if err != nil {
		return nil, err
	}

	var groups []kpi.Group
	switch groupBy {
	case GroupByEntity:
		groups = kpi.SumByLabel(f, cfg.LabelColumn, cfg.ValueColumn, cfg.CountColumn)
	case GroupByYear:
		groups = kpi.SumByYear(f, cfg.ValueColumn)
	case GroupByPeriod:
		groups = kpi.SumByPeriod(f, cfg.ValueColumn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidGroupBy, groupBy)
	}

	if limit <= 0 || limit > s.maxTableLimit {
		limit = s.maxTableLimit
	}
	if len(groups) > limit {
		groups = groups[:limit]
	}
	return groups, nil
}

// Stats returns service-level counters for the stats endpoint.
func (s *Service) Stats(_ context.Context) Stats {
	st := Stats{
		Categories:    len(s.catalog.Categories()),
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
	}
	if sz, ok := s.loader.(sizer); ok {
		st.CacheEntries = sz.Size()
	}
	return st
}

// materialize resolves a category, loads its dataset and applies the
// selection, defaulting to the latest year when none is given.
func (s *Service) materialize(ctx context.Context, category string, sel *frame.Selection) (catalog.Config, *frame.Frame, frame.Selection, error) {
	cfg, err := s.catalog.Resolve(category)
	if err != nil {
		metrics.RecordResolveFailure()
		return catalog.Config{}, nil, frame.Selection{}, err
	}
	metrics.RecordResolve()

	f, err := s.loader.Load(ctx, cfg.Query())
	if err != nil {
		// Missing or unreadable data renders as an empty dashboard, not
		// a failed request.
		s.logger.Warn(ctx, "dataset load failed",
			logger.String("category", cfg.Category),
			logger.String("dataset", cfg.Dataset),
			logger.Error(err),
		)
		f = &frame.Frame{}
	}

	// Defaults apply per dimension: a label-only selection still narrows
	// to the most recent year.
	applied := frame.Selection{}
	if sel != nil {
		applied = *sel
	}
	applied = applied.WithDefaults(f)
	return cfg, frame.Apply(f, applied), applied, nil
}

func formatBundle(b kpi.Bundle, cfg catalog.Config) FormattedBundle {
	value := format.Number
	if cfg.CurrencyValued() {
		value = format.Currency
	}
	return FormattedBundle{
		TotalValue:     value(b.TotalValue),
		TotalCount:     format.Number(b.TotalCount),
		Average:        value(b.Average),
		TopEntityValue: value(b.TopEntityValue),
		YoY:            format.Percentage(b.YoY),
		QoQ:            format.Percentage(b.QoQ),
		CAGR:           format.Percentage(b.CAGR),
	}
}
