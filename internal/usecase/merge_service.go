package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/draftboard/external/sleeper"
	"github.com/riskibarqy/draftboard/internal/domain/rankings"
	"github.com/riskibarqy/draftboard/internal/domain/roster"
	"github.com/riskibarqy/draftboard/internal/platform/logging"
	"github.com/riskibarqy/draftboard/internal/platform/tabular"
)

const snapshotDayLayout = "2006-01-02"

// RosterFeed is the upstream player-data provider.
type RosterFeed interface {
	FetchUser(ctx context.Context, username string) (sleeper.User, error)
	FetchPlayers(ctx context.Context) (map[string]map[string]any, error)
}

// RosterSnapshotStore caches one flattened feed pull per calendar day.
type RosterSnapshotStore interface {
	Load(day string) (*tabular.Table, bool, error)
	Save(table *tabular.Table, day string) error
}

// MergeOptions configures one generator run.
type MergeOptions struct {
	Username          string
	RankingsCSVPath   string
	SecondaryCSVPath  string
	OrderedRosterPath string
	OutputPath        string
	MatchMinScore     int
	IncludeDefenses   bool
	LotteryTickets    []string
	Sleepers          []string
	Handcuffs         []rankings.HandcuffPair
}

// MergeReport summarizes what a run produced.
type MergeReport struct {
	AccountID          string
	AccountDisplayName string
	FromSnapshot       bool
	RosterRows         int
	DuplicateNames     int
	MatchedRows        int
	TotalRows          int
	Unmatched          []string
	OutputPath         string
}

// MergeService runs the full ranked-list pipeline: pull the roster feed,
// clean it, fuzzy-join the rankings export onto it, tag, attach the
// secondary rankings, and write the output CSV.
type MergeService struct {
	feed      RosterFeed
	snapshots RosterSnapshotStore
	logger    *logging.Logger
	now       func() time.Time
}

func NewMergeService(feed RosterFeed, snapshots RosterSnapshotStore, logger *logging.Logger) *MergeService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MergeService{
		feed:      feed,
		snapshots: snapshots,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *MergeService) Run(ctx context.Context, opts MergeOptions) (MergeReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MergeService.Run")
	defer span.End()

	opts.Username = strings.TrimSpace(opts.Username)
	if opts.Username == "" {
		return MergeReport{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if strings.TrimSpace(opts.RankingsCSVPath) == "" {
		return MergeReport{}, fmt.Errorf("%w: rankings csv path is required", ErrInvalidInput)
	}
	if strings.TrimSpace(opts.OutputPath) == "" {
		return MergeReport{}, fmt.Errorf("%w: output path is required", ErrInvalidInput)
	}

	report := MergeReport{OutputPath: opts.OutputPath}

	user, err := s.feed.FetchUser(ctx, opts.Username)
	if err != nil {
		return MergeReport{}, fmt.Errorf("load account %s: %w", opts.Username, err)
	}
	report.AccountID = user.UserID
	report.AccountDisplayName = user.DisplayName
	s.logger.InfoContext(ctx, "account loaded",
		"username", opts.Username,
		"display_name", user.DisplayName,
		"user_id", user.UserID,
	)

	feed, fromSnapshot, err := s.loadFeed(ctx)
	if err != nil {
		return MergeReport{}, err
	}
	report.FromSnapshot = fromSnapshot

	cleaned, err := roster.Clean(feed, roster.CleanOptions{IncludeDefenses: opts.IncludeDefenses})
	if err != nil {
		return MergeReport{}, fmt.Errorf("%w: clean roster feed: %v", ErrSchema, err)
	}
	report.RosterRows = cleaned.Table.Len()
	report.DuplicateNames = cleaned.DuplicateNames
	s.logger.InfoContext(ctx, "roster feed cleaned",
		"input_rows", cleaned.InputRows,
		"rows", cleaned.Table.Len(),
		"dropped_rows", cleaned.DroppedRows,
		"duplicate_names", cleaned.DuplicateNames,
	)

	if path := strings.TrimSpace(opts.OrderedRosterPath); path != "" {
		if err := cleaned.Table.WriteCSVFile(path); err != nil {
			return MergeReport{}, fmt.Errorf("write ordered roster csv: %w", err)
		}
		s.logger.InfoContext(ctx, "ordered roster saved", "path", path)
	}

	rankingsTable, err := tabular.ReadCSVFile(opts.RankingsCSVPath)
	if err != nil {
		return MergeReport{}, fmt.Errorf("read rankings csv: %w", err)
	}
	rankingsTable = rankings.FilterTeamDefenses(rankingsTable)

	joined, err := rankings.FuzzyJoin(rankingsTable, cleaned.Table, opts.MatchMinScore)
	if err != nil {
		return MergeReport{}, fmt.Errorf("%w: join rankings to roster: %v", ErrSchema, err)
	}
	report.MatchedRows = joined.Matched
	report.TotalRows = joined.Total
	s.logger.InfoContext(ctx, "rankings joined",
		"matched", joined.Matched,
		"total", joined.Total,
		"min_score", opts.MatchMinScore,
	)

	merged := joined.Table
	if err := rankings.AddRookieTag(merged); err != nil {
		return MergeReport{}, fmt.Errorf("%w: tag rookies: %v", ErrSchema, err)
	}
	if err := rankings.AddLotteryTicketTag(merged, opts.LotteryTickets); err != nil {
		return MergeReport{}, fmt.Errorf("%w: tag lottery tickets: %v", ErrSchema, err)
	}
	if err := rankings.AddHandcuffTag(merged, opts.Handcuffs); err != nil {
		return MergeReport{}, fmt.Errorf("%w: tag handcuffs: %v", ErrSchema, err)
	}
	if err := rankings.AddSleeperTag(merged, opts.Sleepers); err != nil {
		return MergeReport{}, fmt.Errorf("%w: tag sleepers: %v", ErrSchema, err)
	}

	if path := strings.TrimSpace(opts.SecondaryCSVPath); path != "" {
		secondary, err := tabular.ReadCSVFile(path)
		if err != nil {
			return MergeReport{}, fmt.Errorf("read secondary rankings csv: %w", err)
		}
		if err := rankings.JoinSecondary(merged, secondary); err != nil {
			return MergeReport{}, fmt.Errorf("%w: join secondary rankings: %v", ErrSchema, err)
		}
		s.logger.InfoContext(ctx, "secondary rankings joined", "path", path)
	}

	if err := merged.WriteCSVFile(opts.OutputPath); err != nil {
		return MergeReport{}, fmt.Errorf("write output csv: %w", err)
	}
	s.logger.InfoContext(ctx, "output saved", "path", opts.OutputPath, "rows", merged.Len())

	unmatched, err := rankings.UnmatchedNames(merged, cleaned.Table, true)
	if err != nil {
		return MergeReport{}, fmt.Errorf("%w: unmatched report: %v", ErrSchema, err)
	}
	report.Unmatched = unmatched
	if len(unmatched) > 0 {
		s.logger.WarnContext(ctx, "some rankings rows did not match the roster",
			"count", len(unmatched),
			"names", strings.Join(unmatched, ", "),
		)
	}

	return report, nil
}

// loadFeed returns today's snapshot when one exists, otherwise pulls the
// feed and snapshots it for the rest of the day.
func (s *MergeService) loadFeed(ctx context.Context) (*tabular.Table, bool, error) {
	day := s.now().Format(snapshotDayLayout)

	if s.snapshots != nil {
		table, ok, err := s.snapshots.Load(day)
		if err != nil {
			return nil, false, fmt.Errorf("load roster snapshot: %w", err)
		}
		if ok {
			s.logger.InfoContext(ctx, "roster feed loaded from snapshot", "day", day, "rows", table.Len())
			return table, true, nil
		}
	}

	s.logger.InfoContext(ctx, "fetching roster feed", "day", day)
	players, err := s.feed.FetchPlayers(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("%w: fetch roster feed: %v", ErrDependencyUnavailable, err)
	}

	table := sleeper.Flatten(players)
	if s.snapshots != nil {
		if err := s.snapshots.Save(table, day); err != nil {
			return nil, false, fmt.Errorf("save roster snapshot: %w", err)
		}
	}
	return table, false, nil
}
