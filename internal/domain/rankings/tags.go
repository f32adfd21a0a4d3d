package rankings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/draftboard/internal/domain/roster"
	"github.com/riskibarqy/draftboard/internal/platform/namematch"
	"github.com/riskibarqy/draftboard/internal/platform/tabular"
)

// HandcuffPair binds a starter to the backup worth rostering alongside him.
// The backup is a display name only, never validated against the table.
type HandcuffPair struct {
	Starter string `json:"starter"`
	Backup  string `json:"backup"`
}

const (
	tagTrue  = "true"
	tagFalse = "false"
)

// Missing experience counts as non-rookie, not zero.
const missingExperience = -1

// AddRookieTag marks rows whose years of experience is exactly zero.
func AddRookieTag(table *tabular.Table) error {
	if !table.HasColumn(roster.ColumnYearsExp) {
		return fmt.Errorf("rankings: column %q not found; was the roster join run?", roster.ColumnYearsExp)
	}
	if err := ensureColumn(table, ColumnIsRookie); err != nil {
		return err
	}

	for i := 0; i < table.Len(); i++ {
		raw, _ := table.Cell(i, roster.ColumnYearsExp)
		years := missingExperience
		if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			years = v
		}
		value := tagFalse
		if years == 0 {
			value = tagTrue
		}
		if err := table.SetCell(i, ColumnIsRookie, value); err != nil {
			return err
		}
	}
	return nil
}

// AddLotteryTicketTag marks rows whose clean name appears in the curated
// lottery-ticket list.
func AddLotteryTicketTag(table *tabular.Table, names []string) error {
	return addMembershipTag(table, ColumnIsLotteryTicket, names)
}

// AddSleeperTag marks rows whose clean name appears in the curated
// sleeper list.
func AddSleeperTag(table *tabular.Table, names []string) error {
	return addMembershipTag(table, ColumnIsSleeper, names)
}

func addMembershipTag(table *tabular.Table, column string, names []string) error {
	if !table.HasColumn(roster.ColumnFullNameClean) {
		return fmt.Errorf("rankings: column %q not found; was the roster join run?", roster.ColumnFullNameClean)
	}
	if err := ensureColumn(table, column); err != nil {
		return err
	}

	members := make(map[string]struct{}, len(names))
	for _, name := range names {
		members[namematch.Clean(name)] = struct{}{}
	}

	for i := 0; i < table.Len(); i++ {
		clean, _ := table.Cell(i, roster.ColumnFullNameClean)
		value := tagFalse
		if _, ok := members[clean]; ok && clean != "" {
			value = tagTrue
		}
		if err := table.SetCell(i, column, value); err != nil {
			return err
		}
	}
	return nil
}

// AddHandcuffTag writes the curated backup's display name onto each
// starter's row; every other row keeps a missing value.
func AddHandcuffTag(table *tabular.Table, pairs []HandcuffPair) error {
	if !table.HasColumn(roster.ColumnFullNameClean) {
		return fmt.Errorf("rankings: column %q not found; was the roster join run?", roster.ColumnFullNameClean)
	}
	if err := ensureColumn(table, ColumnHandcuff); err != nil {
		return err
	}

	backupByStarter := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		backupByStarter[namematch.Clean(pair.Starter)] = pair.Backup
	}

	for i := 0; i < table.Len(); i++ {
		clean, _ := table.Cell(i, roster.ColumnFullNameClean)
		backup, ok := backupByStarter[clean]
		if !ok || clean == "" {
			continue
		}
		if err := table.SetCell(i, ColumnHandcuff, backup); err != nil {
			return err
		}
	}
	return nil
}

// JoinSecondary left-joins a second rankings source by exact display-name
// equality and derives the rank delta between the two systems. A name
// missing from either side leaves the delta missing.
func JoinSecondary(table, secondary *tabular.Table) error {
	if !table.HasColumn(ColumnPlayerName) {
		return fmt.Errorf("rankings: column %q not found", ColumnPlayerName)
	}
	for _, column := range []string{SecondaryColumnPlayer, SecondaryColumnRank} {
		if !secondary.HasColumn(column) {
			return fmt.Errorf("rankings: column %q not found in secondary rankings", column)
		}
	}

	rankByName := make(map[string]string, secondary.Len())
	for i := 0; i < secondary.Len(); i++ {
		name, _ := secondary.Cell(i, SecondaryColumnPlayer)
		if _, exists := rankByName[name]; !exists {
			rank, _ := secondary.Cell(i, SecondaryColumnRank)
			rankByName[name] = rank
		}
	}

	for _, column := range []string{SecondaryColumnRank, ColumnRankDelta} {
		if err := ensureColumn(table, column); err != nil {
			return err
		}
	}

	for i := 0; i < table.Len(); i++ {
		name, _ := table.Cell(i, ColumnPlayerName)
		secondaryRank, ok := rankByName[name]
		if !ok {
			continue
		}
		if err := table.SetCell(i, SecondaryColumnRank, secondaryRank); err != nil {
			return err
		}

		primaryRaw, _ := table.Cell(i, ColumnRank)
		primary, errPrimary := strconv.ParseFloat(strings.TrimSpace(primaryRaw), 64)
		other, errOther := strconv.ParseFloat(strings.TrimSpace(secondaryRank), 64)
		if errPrimary != nil || errOther != nil {
			continue
		}
		delta := strconv.FormatFloat(primary-other, 'f', -1, 64)
		if err := table.SetCell(i, ColumnRankDelta, delta); err != nil {
			return err
		}
	}
	return nil
}

func ensureColumn(table *tabular.Table, name string) error {
	if table.HasColumn(name) {
		return nil
	}
	return table.AddColumn(name)
}
