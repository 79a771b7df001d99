package spinner

import "time"

type unit struct {
	title   string
	stage   string
	err     error
	started time.Time
	elapsed time.Duration
	done    bool
}

type UnitProvider interface {
	// identifier for accessing and updating units, it needs to match the ID from the Message struct
	GetID() any
	// used as text display before the stage
	GetTitle() string
	// units that start out failed count as done immediately
	GetError() error
}
