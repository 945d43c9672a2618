package mastery

import (
	"testing"
	"time"

	"github.com/brightpath/tutor/internal/config"
)

func TestLevelFor_Thresholds(t *testing.T) {
	cfg := config.Default().Levels
	tests := []struct {
		p    float64
		want Level
	}{
		{0.0, LevelNovice},
		{0.39, LevelNovice},
		{0.40, LevelDeveloping},
		{0.59, LevelDeveloping},
		{0.60, LevelProficient},
		{0.84, LevelProficient},
		{0.85, LevelAdvanced},
		{0.94, LevelAdvanced},
		{0.95, LevelMastered},
		{1.0, LevelMastered},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.p, cfg); got != tt.want {
			t.Errorf("LevelFor(%v): got %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestNextReviewAt_IntervalsExpand(t *testing.T) {
	cfg := config.Default().Review
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		level Level
		days  int
	}{
		{LevelNovice, 1},
		{LevelDeveloping, 3},
		{LevelProficient, 7},
		{LevelAdvanced, 14},
		{LevelMastered, 30},
	}
	for _, tt := range tests {
		got := NextReviewAt(tt.level, now, cfg)
		want := now.AddDate(0, 0, tt.days)
		if !got.Equal(want) {
			t.Errorf("NextReviewAt(%q): got %v, want %v", tt.level, got, want)
		}
	}
}
