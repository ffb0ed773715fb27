package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.events (
//     id              TEXT PRIMARY KEY,
//     title           TEXT NOT NULL,
//     description     TEXT,
//     date            TIMESTAMPTZ NOT NULL,
//     time_slot       TEXT,
//     location        TEXT,
//     category        TEXT NOT NULL,
//     club            TEXT,
//     attendees       INT DEFAULT 0,
//     max_attendees   INT DEFAULT 0,
//     tags            JSONB,
//     difficulty      TEXT,
//     duration        TEXT,
//     image           TEXT,
//     rating          NUMERIC,
//     reviews         INT DEFAULT 0,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// ValidDifficulty reports whether d is one of the closed difficulty levels.
// Anything else is tolerated in data but never matches a preference.
func ValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

type Event struct {
	ID           string                     `gorm:"primaryKey;column:id" json:"id"`
	Title        string                     `gorm:"column:title;not null" json:"title"`
	Description  string                     `gorm:"column:description;type:text" json:"description"`
	Date         time.Time                  `gorm:"column:date;not null" json:"date"`
	TimeSlot     string                     `gorm:"column:time_slot" json:"time"`
	Location     string                     `gorm:"column:location" json:"location"`
	Category     string                     `gorm:"column:category;not null" json:"category"`
	Club         string                     `gorm:"column:club" json:"club"`
	Attendees    int                        `gorm:"column:attendees;default:0" json:"attendees"`
	MaxAttendees int                        `gorm:"column:max_attendees;default:0" json:"max_attendees"`
	Tags         datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	Difficulty   Difficulty                 `gorm:"column:difficulty" json:"difficulty"`
	Duration     string                     `gorm:"column:duration" json:"duration"`
	Image        string                     `gorm:"column:image" json:"image,omitempty"`
	Rating       *float64                   `gorm:"column:rating;type:numeric" json:"rating,omitempty"`
	Reviews      int                        `gorm:"column:reviews;default:0" json:"reviews"`
	CreatedAt    time.Time                  `gorm:"column:created_at" json:"created_at"`
}

func (Event) TableName() string {
	return "events"
}

// AttendanceRate returns attendees/maxAttendees, or 0 when the event has no
// capacity set. Callers that sort by popularity must push zero-capacity
// events last themselves.
func (e Event) AttendanceRate() float64 {
	if e.MaxAttendees <= 0 {
		return 0
	}
	return float64(e.Attendees) / float64(e.MaxAttendees)
}
