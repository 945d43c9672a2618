package mastery

import "github.com/brightpath/tutor/internal/config"

// Level is the discrete mastery band derived from bktProbability.
type Level string

const (
	LevelNovice     Level = "novice"
	LevelDeveloping Level = "developing"
	LevelProficient Level = "proficient"
	LevelAdvanced   Level = "advanced"
	LevelMastered   Level = "mastered"
)

// LevelFor maps a BKT probability to its discrete level. This is the only
// place the thresholds are applied; every caller goes through it.
func LevelFor(p float64, cfg config.LevelsConfig) Level {
	switch {
	case p < cfg.Novice:
		return LevelNovice
	case p < cfg.Developing:
		return LevelDeveloping
	case p < cfg.Proficient:
		return LevelProficient
	case p < cfg.Advanced:
		return LevelAdvanced
	default:
		return LevelMastered
	}
}
