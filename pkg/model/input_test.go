package model

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawInput(startDate, endDate, startTime, endTime string, participants ...string) RawInput {
	return RawInput{
		TournamentName: "Copa",
		StartDate:      startDate,
		EndDate:        endDate,
		StartTime:      startTime,
		EndTime:        endTime,
		Participants:   participants,
	}
}

func TestProcessRawInput(t *testing.T) {
	testCases := []struct {
		name      string
		input     RawInput
		days      uint64
		blocks    uint64
		startHour uint64
	}{
		{"full hours", rawInput("2021-07-20", "2021-07-25", "12:00", "20:00", "A", "B", "C", "D"), 6, 4, 12},
		{"start with minutes", rawInput("2025-01-01", "2025-01-01", "08:30", "13:00", "A", "B"), 1, 2, 9},
		{"end with minutes", rawInput("2025-01-01", "2025-01-02", "08:00", "11:59", "A", "B"), 2, 1, 8},
		{"end at midnight", rawInput("2025-01-01", "2025-01-03", "20:00", "00:00", "A", "B"), 3, 2, 20},
		{"whole day", rawInput("2025-01-01", "2025-01-01", "00:00", "00:00", "A", "B"), 1, 12, 0},
		{"with seconds", rawInput("2025-02-27", "2025-03-02", "10:00:00", "14:00:00", "A", "B"), 4, 2, 10},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			tournament, err := ProcessRawInput(testCase.input)

			require.NoError(t, err)
			assert.Equal(t, "Copa", tournament.Name)
			assert.Equal(t, testCase.days, tournament.Days)
			assert.Equal(t, testCase.blocks, tournament.Blocks)
			assert.Equal(t, testCase.startHour, tournament.StartHour)
			assert.Equal(t, testCase.input.Participants, tournament.Participants)
			assert.Equal(t, testCase.input.StartDate, tournament.StartDate.Format("2006-01-02"))
		})
	}
}

func TestProcessRawInputErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input RawInput
	}{
		{"end date before start date", rawInput("2025-01-02", "2025-01-01", "10:00", "12:00", "A", "B")},
		{"malformed date", rawInput("01/02/2025", "2025-01-03", "10:00", "12:00", "A", "B")},
		{"malformed time", rawInput("2025-01-01", "2025-01-01", "10am", "12:00", "A", "B")},
		{"end time before start time", rawInput("2025-01-01", "2025-01-01", "14:00", "12:00", "A", "B")},
		{"equal times", rawInput("2025-01-01", "2025-01-01", "12:00", "12:00", "A", "B")},
		{"less than a block", rawInput("2025-01-01", "2025-01-01", "11:00", "12:00", "A", "B")},
		{"rounding leaves no block", rawInput("2025-01-01", "2025-01-01", "10:30", "12:30", "A", "B")},
		{"end before the first hour", rawInput("2025-01-01", "2025-01-01", "00:10", "00:40", "A", "B")},
		{"single participant", rawInput("2025-01-01", "2025-01-01", "10:00", "12:00", "A")},
		{"duplicated participants", rawInput("2025-01-01", "2025-01-01", "10:00", "12:00", "A", "B", "A")},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := ProcessRawInput(testCase.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestInputFromJson(t *testing.T) {
	//** Arrange
	dir := t.TempDir()
	file := filepath.Join(dir, "copa.json")
	content := `{
		"tournament_name": "Copa",
		"start_date": "2021-07-20",
		"end_date": "2021-07-25",
		"start_time": "12:00",
		"end_time": "20:00",
		"participants": ["A", "B", "C", "D"]
	}`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	//** Act
	tournament, err := InputFromJson(file)

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, Tournament{
		Name:         "Copa",
		Days:         6,
		Blocks:       4,
		Participants: []string{"A", "B", "C", "D"},
		StartDate:    time.Date(2021, 7, 20, 0, 0, 0, 0, time.UTC),
		StartHour:    12,
	}, tournament)
}

func TestInputFromJsonErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		file := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
		return file
	}

	_, err := InputFromJson(write("copa.txt", "{}"))
	assert.ErrorContains(t, err, "not allowed")

	_, err = InputFromJson(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = InputFromJson(write("broken.json", "{"))
	assert.Error(t, err)

	_, err = InputFromJson(write("typed.json", `{"tournament_name": "Copa", "participants": "A"}`))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
