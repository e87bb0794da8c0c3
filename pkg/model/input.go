package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

const (
	BlockHours = 2

	dateLayout = "2006-01-02"
)

var timeLayouts = []string{"15:04", "15:04:05", "15:04:05.999999999"}

type RawInput struct {
	TournamentName string   `mapstructure:"tournament_name"`
	StartDate      string   `mapstructure:"start_date"`
	EndDate        string   `mapstructure:"end_date"`
	StartTime      string   `mapstructure:"start_time"`
	EndTime        string   `mapstructure:"end_time"`
	Participants   []string `mapstructure:"participants"`
}

func InputFromJson(file string) (Tournament, error) {
	if filepath.Ext(file) != ".json" {
		return Tournament{}, fmt.Errorf("file extension for %v not allowed", file)
	}

	bytes, err := os.ReadFile(file)
	if err != nil {
		return Tournament{}, fmt.Errorf("cannot read file %v: %w", file, err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Tournament{}, err
	}

	var rawInput RawInput
	if err := mapstructure.Decode(inputJson, &rawInput); err != nil {
		return Tournament{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawInput) (Tournament, error) {
	//** Manage dates
	startDate, err := time.Parse(dateLayout, rawInput.StartDate)
	if err != nil {
		return Tournament{}, fmt.Errorf("%w: start date %q: %v", ErrInvalidInput, rawInput.StartDate, err)
	}
	endDate, err := time.Parse(dateLayout, rawInput.EndDate)
	if err != nil {
		return Tournament{}, fmt.Errorf("%w: end date %q: %v", ErrInvalidInput, rawInput.EndDate, err)
	}
	if endDate.Before(startDate) {
		return Tournament{}, fmt.Errorf("%w: end date is earlier than start date", ErrInvalidInput)
	}
	days := uint64(endDate.Sub(startDate).Hours()/24) + 1

	//** Manage times
	startTime, err := parseTime(rawInput.StartTime)
	if err != nil {
		return Tournament{}, fmt.Errorf("%w: start time %q: %v", ErrInvalidInput, rawInput.StartTime, err)
	}
	endTime, err := parseTime(rawInput.EndTime)
	if err != nil {
		return Tournament{}, fmt.Errorf("%w: end time %q: %v", ErrInvalidInput, rawInput.EndTime, err)
	}
	startHour, endHour, err := usableHours(startTime, endTime)
	if err != nil {
		return Tournament{}, err
	}
	blocks := (endHour - startHour) / BlockHours
	if blocks <= 0 {
		return Tournament{}, fmt.Errorf("%w: no available blocks to use", ErrInvalidInput)
	}

	//** Manage participants
	if len(rawInput.Participants) < 2 {
		return Tournament{}, fmt.Errorf("%w: at least 2 participants are required", ErrInvalidInput)
	}
	if duplicates := lo.FindDuplicates(rawInput.Participants); len(duplicates) > 0 {
		return Tournament{}, fmt.Errorf("%w: participants must be distinct: %v", ErrInvalidInput, duplicates)
	}

	return Tournament{
		Name:         rawInput.TournamentName,
		Days:         days,
		Blocks:       uint64(blocks),
		Participants: rawInput.Participants,
		StartDate:    startDate,
		StartHour:    uint64(startHour),
	}, nil
}

// Returns the first and last full hours of the day usable for matches. A start time with minutes (or seconds) is
// moved to the next hour, an end time is truncated to its hour and midnight stands for the end of the day
func usableHours(start, end time.Duration) (startHour, endHour int, err error) {
	if end != 0 && end <= start {
		return 0, 0, fmt.Errorf("%w: end time is earlier or equal than start time", ErrInvalidInput)
	}

	startHour = int(start / time.Hour)
	if start%time.Hour > 0 {
		startHour++
	}

	endHour = int(end / time.Hour)
	if end == 0 {
		endHour = 24
	} else if endHour == 0 {
		return 0, 0, fmt.Errorf("%w: no available blocks to use", ErrInvalidInput)
	}

	return startHour, endHour, nil
}

// Parses a time of the day and returns its offset from midnight
func parseTime(value string) (time.Duration, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return time.Duration(parsed.Hour())*time.Hour +
				time.Duration(parsed.Minute())*time.Minute +
				time.Duration(parsed.Second())*time.Second +
				time.Duration(parsed.Nanosecond()), nil
		}
		lastErr = err
	}
	return 0, lastErr
}
