package logic

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kegelclub/club-stats/internal/models"
)

// DefaultRankingSlots is the number of places tracked for manually placed games.
const DefaultRankingSlots = 6

// ReportOptions sets the histogram size of each bucketed format.
type ReportOptions struct {
	Slots map[models.Format]int
}

// DefaultReportOptions returns the club's standard slot counts.
func DefaultReportOptions() ReportOptions {
	return ReportOptions{Slots: map[models.Format]int{
		models.FormatNines:   DefaultSoloSlots,
		models.FormatRats:    DefaultSoloSlots,
		models.FormatRanking: DefaultRankingSlots,
		models.FormatRelay:   DefaultRelaySlots,
	}}
}

// SlotsFor returns the histogram size of a format, or 0 for formats without one.
func (o ReportOptions) SlotsFor(f models.Format) int {
	return o.Slots[f]
}

type reportService struct {
	store  RecordStore
	cache  ReportCache
	opts   ReportOptions
	logger *zap.SugaredLogger
}

// NewReportService wires the engine to a record store. cache may be nil.
func NewReportService(store RecordStore, cache ReportCache, opts ReportOptions, logger *zap.Logger) ReportService {
	return &reportService{
		store:  store,
		cache:  cache,
		opts:   opts,
		logger: logger.Sugar(),
	}
}

// recordSet is everything fetched for one report.
type recordSet struct {
	roster     models.Roster
	pairwise   map[models.Format][]models.PairwiseRecord
	solo       []models.SoloRecord
	placements []models.PlacementRecord
}

type fetchPlan struct {
	pairwise   []models.Format
	solo       []models.Format
	placements bool
}

// fetch loads the roster and the planned record sets in parallel.
func (s *reportService) fetch(ctx context.Context, window models.Window, plan fetchPlan) (*recordSet, error) {
	g, ctx := errgroup.WithContext(ctx)

	var participants []models.Participant
	g.Go(func() error {
		var err error
		if participants, err = s.store.Roster(ctx); err != nil {
			return fmt.Errorf("fetch roster: %w", err)
		}
		return nil
	})

	pairwise := make([][]models.PairwiseRecord, len(plan.pairwise))
	for i, format := range plan.pairwise {
		g.Go(func() error {
			records, err := s.store.PairwiseRecords(ctx, format, window)
			if err != nil {
				return fmt.Errorf("fetch %s records: %w", format, err)
			}
			pairwise[i] = records
			return nil
		})
	}

	set := &recordSet{pairwise: make(map[models.Format][]models.PairwiseRecord, len(plan.pairwise))}
	if len(plan.solo) > 0 {
		g.Go(func() error {
			var err error
			if set.solo, err = s.store.SoloRecords(ctx, plan.solo, window); err != nil {
				return fmt.Errorf("fetch solo records: %w", err)
			}
			return nil
		})
	}
	if plan.placements {
		g.Go(func() error {
			var err error
			if set.placements, err = s.store.PlacementRecords(ctx, window); err != nil {
				return fmt.Errorf("fetch placement records: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	set.roster = models.NewRoster(participants)
	for i, format := range plan.pairwise {
		set.pairwise[format] = pairwise[i]
	}
	return set, nil
}

func reportKey(report, key string) string {
	return "clubstats:" + report + ":" + key
}

// put writes a report to the cache. Failures only log; a report is still served without cache.
func (s *reportService) put(ctx context.Context, report, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, reportKey(report, key), value); err != nil {
		s.logger.Warnw("Report cache write failed", "report", report, "key", key, "error", err)
	}
}

// cached serves a report from the cache or builds and stores it.
func cached[T any](ctx context.Context, s *reportService, report, key string, build func(context.Context) (T, error)) (T, error) {
	if s.cache != nil {
		var hit T
		ok, err := s.cache.Get(ctx, reportKey(report, key), &hit)
		if err != nil {
			s.logger.Warnw("Report cache read failed", "report", report, "key", key, "error", err)
		} else if ok {
			reportCacheHits.WithLabelValues(report).Inc()
			return hit, nil
		}
	}

	start := time.Now()
	result, err := build(ctx)
	if err != nil {
		return result, err
	}
	reportsBuilt.WithLabelValues(report).Inc()
	reportBuildDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())

	s.put(ctx, report, key, result)
	return result, nil
}

func (s *reportService) Standings(ctx context.Context, format models.Format, window models.Window) (*models.Standings, error) {
	return cached(ctx, s, "standings", string(format)+":"+window.CacheKey(), func(ctx context.Context) (*models.Standings, error) {
		return s.buildStandings(ctx, format, window)
	})
}

// RefreshStandings recomputes standings from the store and overwrites the cached copy.
func (s *reportService) RefreshStandings(ctx context.Context, format models.Format, window models.Window) (*models.Standings, error) {
	standings, err := s.buildStandings(ctx, format, window)
	if err != nil {
		return nil, err
	}
	reportsBuilt.WithLabelValues("standings").Inc()
	s.put(ctx, "standings", string(format)+":"+window.CacheKey(), standings)
	return standings, nil
}

func (s *reportService) buildStandings(ctx context.Context, format models.Format, window models.Window) (*models.Standings, error) {
	var plan fetchPlan
	switch {
	case format.IsPairwise():
		plan.pairwise = []models.Format{format}
	case format.IsSoloScore(), format == models.FormatRanking:
		plan.solo = []models.Format{format}
	case format == models.FormatRelay:
		plan.placements = true
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownFormat, format)
	}

	set, err := s.fetch(ctx, window, plan)
	if err != nil {
		return nil, err
	}
	return &models.Standings{Format: format, Window: window, Entries: s.rankedEntries(format, set)}, nil
}

// rankedEntries aggregates and ranks one format from an already fetched record set.
func (s *reportService) rankedEntries(format models.Format, set *recordSet) []models.StandingsEntry {
	switch {
	case format == models.FormatWood:
		return AssignDenseRanks(AggregatePairwise(set.pairwise[format], format.Fields(), set.roster),
			BySum, ByMetric(MetricWins))
	case format == models.FormatPoints:
		return AssignDenseRanks(AggregatePairwise(set.pairwise[format], format.Fields(), set.roster),
			BySum, ByMetric(MetricWins), ByMetric(MetricDraws))
	case format == models.FormatCombined:
		return AssignDenseRanks(AggregatePairwise(set.pairwise[format], format.Fields(), set.roster),
			BySum, ByMetric(string(models.FieldThreeToEight)))
	case format.IsSoloScore():
		rule := SoloRule{Bucketed: true, Slots: s.opts.SlotsFor(format)}
		return AssignDenseRanks(AggregateSolo(set.solo, rule, set.roster), BySum, ByParticipation)
	case format == models.FormatRanking:
		return AssignDenseRanks(AggregatePlacements(set.solo, s.opts.SlotsFor(models.FormatRanking), set.roster),
			BySum, ByBucket(2), ByBucket(3))
	case format == models.FormatRelay:
		tables := AccumulatePlacements(set.placements, set.roster, s.opts.SlotsFor(models.FormatRelay))
		return PlacementStandings(tables.Participants)
	}
	return nil
}

func (s *reportService) HeadToHead(ctx context.Context, window models.Window) (*models.HeadToHeadLedger, error) {
	return cached(ctx, s, "head_to_head", window.CacheKey(), func(ctx context.Context) (*models.HeadToHeadLedger, error) {
		set, err := s.fetch(ctx, window, fetchPlan{
			pairwise: []models.Format{models.FormatWood, models.FormatPoints, models.FormatCombined},
		})
		if err != nil {
			return nil, err
		}

		categories := []Category{
			PairwiseCategory(models.FormatWood, set.pairwise[models.FormatWood]),
			PairwiseCategory(models.FormatPoints, set.pairwise[models.FormatPoints]),
		}
		categories = append(categories, CombinedCategories(set.pairwise[models.FormatCombined])...)

		return &models.HeadToHeadLedger{
			Window: window,
			Rows:   BuildHeadToHead(set.roster, categories),
		}, nil
	})
}

func (s *reportService) CrossTab(ctx context.Context, format models.Format, window models.Window) (*models.CrossTabGrid, error) {
	if !format.IsPairwise() {
		return nil, fmt.Errorf("%w: %q has no cross-tab", models.ErrUnknownFormat, format)
	}
	return cached(ctx, s, "crosstab", string(format)+":"+window.CacheKey(), func(ctx context.Context) (*models.CrossTabGrid, error) {
		set, err := s.fetch(ctx, window, fetchPlan{pairwise: []models.Format{format}})
		if err != nil {
			return nil, err
		}

		grid := BuildCrossTab(s.rankedEntries(format, set), set.pairwise[format], format.Fields())
		grid.Format = format
		grid.Window = window
		return &grid, nil
	})
}

func (s *reportService) Placements(ctx context.Context, window models.Window) (*models.PlacementTables, error) {
	return cached(ctx, s, "placements", window.CacheKey(), func(ctx context.Context) (*models.PlacementTables, error) {
		set, err := s.fetch(ctx, window, fetchPlan{placements: true})
		if err != nil {
			return nil, err
		}
		tables := AccumulatePlacements(set.placements, set.roster, s.opts.SlotsFor(models.FormatRelay))
		tables.Window = window
		return &tables, nil
	})
}

func (s *reportService) Champions(ctx context.Context, window models.Window) ([]models.Champion, error) {
	return cached(ctx, s, "champions", window.CacheKey(), func(ctx context.Context) ([]models.Champion, error) {
		set, err := s.fetch(ctx, window, fetchPlan{solo: []models.Format{models.FormatNines, models.FormatRats}})
		if err != nil {
			return nil, err
		}
		return DailyChampions(set.solo, set.roster), nil
	})
}
