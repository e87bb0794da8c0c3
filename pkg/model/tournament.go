package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidShape = errors.New("invalid tournament shape")
	ErrInvalidInput = errors.New("invalid tournament parameters")
)

// Tournament holds the validated parameters of a round-robin tournament
type Tournament struct {
	Name         string
	Days         uint64
	Blocks       uint64 // Two-hour blocks available per day
	Participants []string
	StartDate    time.Time
	StartHour    uint64 // Hour of the day in which the first block begins
}

// Shape returns the dimensions of the match space spanned by the tournament
func (tournament Tournament) Shape() Shape {
	return Shape{
		Days:         tournament.Days,
		Blocks:       tournament.Blocks,
		Participants: uint64(len(tournament.Participants)),
	}
}

// Shape is the part of a tournament the encoding depends on
type Shape struct {
	Days         uint64
	Blocks       uint64
	Participants uint64
}

func (shape Shape) Validate() error {
	if shape.Days == 0 {
		return fmt.Errorf("%w: days must be positive", ErrInvalidShape)
	} else if shape.Blocks == 0 {
		return fmt.Errorf("%w: blocks must be positive", ErrInvalidShape)
	} else if shape.Participants < 2 {
		return fmt.Errorf("%w: at least 2 participants are required, got %d", ErrInvalidShape, shape.Participants)
	}
	return nil
}

// Slots returns the amount of (day, block) pairs
func (shape Shape) Slots() uint64 {
	return shape.Days * shape.Blocks
}

// Fixtures returns the amount of ordered (local, visit) pairs
func (shape Shape) Fixtures() uint64 {
	return shape.Participants * (shape.Participants - 1)
}

// Match states that participant Local hosts participant Visit on the given day and block
type Match struct {
	Local uint64
	Visit uint64
	Day   uint64
	Block uint64
}

func (match Match) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", match.Local, match.Visit, match.Day, match.Block)
}
