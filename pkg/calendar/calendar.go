// Package calendar renders a tournament schedule as an iCalendar document
package calendar

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/limaJavier/tournament/pkg/model"
)

const productId = "-//limaJavier//tournament//EN"

// Events returns the schedule sorted by day and block, as it'll be rendered
func Events(matches []model.Match) []model.Match {
	sorted := slices.Clone(matches)
	slices.SortFunc(sorted, func(a, b model.Match) int {
		if dayComparison := cmp.Compare(a.Day, b.Day); dayComparison != 0 {
			return dayComparison
		}
		return cmp.Compare(a.Block, b.Block)
	})
	return sorted
}

// Begin returns when the match starts: its day after the tournament's start date, and its block after the first hour
func Begin(tournament model.Tournament, match model.Match) time.Time {
	return tournament.StartDate.
		AddDate(0, 0, int(match.Day)).
		Add(time.Duration(tournament.StartHour+model.BlockHours*match.Block) * time.Hour)
}

// Render builds an iCalendar document with one event per match. Event identifiers are derived from the tournament's
// name and the match, so rendering the same schedule twice yields the same events; stamp is written as DTSTAMP
func Render(tournament model.Tournament, matches []model.Match, stamp time.Time) (string, error) {
	participants := uint64(len(tournament.Participants))
	namespace := uuid.NewSHA1(uuid.NameSpaceOID, []byte(tournament.Name))

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productId)

	for _, match := range Events(matches) {
		if match.Local >= participants || match.Visit >= participants {
			return "", fmt.Errorf("match %v references an unknown participant", match)
		}

		begin := Begin(tournament, match)
		id := uuid.NewSHA1(namespace, []byte(match.String()))

		event := cal.AddEvent(id.String())
		event.SetDtStampTime(stamp)
		event.SetStartAt(begin)
		event.SetEndAt(begin.Add(model.BlockHours * time.Hour))
		event.SetSummary(fmt.Sprintf("%v vs %v", tournament.Participants[match.Local], tournament.Participants[match.Visit]))
		event.SetDescription(tournament.Name)
	}

	return cal.Serialize(), nil
}

func WriteFile(file string, tournament model.Tournament, matches []model.Match, stamp time.Time) error {
	if filepath.Ext(file) != ".ics" {
		return fmt.Errorf("file extension for %v not allowed", file)
	}

	content, err := Render(tournament, matches, stamp)
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, []byte(content), 0666); err != nil {
		return fmt.Errorf("cannot write calendar file: %w", err)
	}
	return nil
}
