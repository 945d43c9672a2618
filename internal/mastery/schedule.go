package mastery

import (
	"time"

	"github.com/brightpath/tutor/internal/config"
)

// NextReviewAt returns the spaced-repetition due date for a record at the
// given level. Intervals expand as the level rises; the date is consumed
// by an external review scheduler.
func NextReviewAt(level Level, now time.Time, cfg config.ReviewConfig) time.Time {
	days := cfg.NoviceDays
	switch level {
	case LevelDeveloping:
		days = cfg.DevelopingDays
	case LevelProficient:
		days = cfg.ProficientDays
	case LevelAdvanced:
		days = cfg.AdvancedDays
	case LevelMastered:
		days = cfg.MasteredDays
	}
	return now.AddDate(0, 0, days)
}
