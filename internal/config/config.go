package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all engine tuning parameters. The numeric bands here
// (BKT calibration, level thresholds, hour estimates) are product
// configuration, not hard-coded business rules.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	BKT      BKTConfig      `yaml:"bkt"`
	Levels   LevelsConfig   `yaml:"levels"`
	Gate     GateConfig     `yaml:"gate"`
	Session  SessionConfig  `yaml:"session"`
	Planner  PlannerConfig  `yaml:"planner"`
	Review   ReviewConfig   `yaml:"review"`
	Oracle   OracleConfig   `yaml:"oracle"`
}

// ServerConfig configures the HTTP surface exposed to the CRUD layer.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// UnmarshalYAML accepts Go duration strings ("10s", "500ms") for the
// timeout fields, keeping existing values when a key is absent.
func (s *ServerConfig) UnmarshalYAML(node *yaml.Node) error {
	raw := struct {
		Addr         string `yaml:"addr"`
		ReadTimeout  string `yaml:"read_timeout"`
		WriteTimeout string `yaml:"write_timeout"`
	}{Addr: s.Addr}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	s.Addr = raw.Addr
	var err error
	if s.ReadTimeout, err = overlayDuration(raw.ReadTimeout, s.ReadTimeout); err != nil {
		return fmt.Errorf("server.read_timeout: %w", err)
	}
	if s.WriteTimeout, err = overlayDuration(raw.WriteTimeout, s.WriteTimeout); err != nil {
		return fmt.Errorf("server.write_timeout: %w", err)
	}
	return nil
}

// overlayDuration parses a duration string, returning the previous value
// for an absent key.
func overlayDuration(raw string, prev time.Duration) (time.Duration, error) {
	if raw == "" {
		return prev, nil
	}
	return time.ParseDuration(raw)
}

// DatabaseConfig configures the SQLite store.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Mode string `yaml:"mode"` // "production" or "development"
}

// BKTParams are the four Bayesian Knowledge Tracing calibration constants.
type BKTParams struct {
	PInit  float64 `yaml:"p_init"`  // prior P(known) before any evidence
	PLearn float64 `yaml:"p_learn"` // P(unknown -> known) per opportunity
	PGuess float64 `yaml:"p_guess"` // P(correct | unknown)
	PSlip  float64 `yaml:"p_slip"`  // P(incorrect | known)
}

// BKTConfig holds the global calibration plus per-domain overrides.
type BKTConfig struct {
	Default   BKTParams            `yaml:"default"`
	PerDomain map[string]BKTParams `yaml:"per_domain"`
}

// ForDomain returns the calibration for a domain, falling back to the
// global default when no per-domain data is available.
func (c BKTConfig) ForDomain(domain string) BKTParams {
	if p, ok := c.PerDomain[domain]; ok {
		return p
	}
	return c.Default
}

// LevelsConfig maps bktProbability to the discrete mastery level.
// Each threshold is exclusive: probability < Novice -> NOVICE, etc.
type LevelsConfig struct {
	Novice     float64 `yaml:"novice"`
	Developing float64 `yaml:"developing"`
	Proficient float64 `yaml:"proficient"`
	Advanced   float64 `yaml:"advanced"`
}

// GateConfig tunes the multi-criteria mastery gate.
type GateConfig struct {
	WindowSize         int     `yaml:"window_size"`          // N most recent responses
	AccuracyThreshold  float64 `yaml:"accuracy_threshold"`   // fraction correct in window
	MinQuestionTypes   int     `yaml:"min_question_types"`   // distinct types among correct answers
	RetentionThreshold float64 `yaml:"retention_threshold"`  // minimum retention probe score
	SpeedImprovingMax  float64 `yaml:"speed_improving_max"`  // second/first half ratio at or under -> improving
	SpeedSlowingMin    float64 `yaml:"speed_slowing_min"`    // ratio at or above -> slowing
}

// SessionConfig tunes struggle detection.
type SessionConfig struct {
	StruggleWrongStreak  int           `yaml:"struggle_wrong_streak"`
	StruggleBKTThreshold float64       `yaml:"struggle_bkt_threshold"`
	OracleWait           time.Duration `yaml:"oracle_wait"` // bounded wait for prefetched content
}

func (s *SessionConfig) UnmarshalYAML(node *yaml.Node) error {
	raw := struct {
		StruggleWrongStreak  int     `yaml:"struggle_wrong_streak"`
		StruggleBKTThreshold float64 `yaml:"struggle_bkt_threshold"`
		OracleWait           string  `yaml:"oracle_wait"`
	}{StruggleWrongStreak: s.StruggleWrongStreak, StruggleBKTThreshold: s.StruggleBKTThreshold}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	s.StruggleWrongStreak = raw.StruggleWrongStreak
	s.StruggleBKTThreshold = raw.StruggleBKTThreshold
	var err error
	if s.OracleWait, err = overlayDuration(raw.OracleWait, s.OracleWait); err != nil {
		return fmt.Errorf("session.oracle_wait: %w", err)
	}
	return nil
}

// PlannerConfig tunes plan generation.
type PlannerConfig struct {
	// HourBands maps a difficulty ceiling to estimated study hours.
	// A concept gets the hours of the first band whose ceiling is >= its
	// difficulty. Bands are evaluated in ascending ceiling order.
	HourBands         map[float64]float64 `yaml:"hour_bands"`
	MaxActivePlans    int                 `yaml:"max_active_plans"`
	VelocityWindow    int                 `yaml:"velocity_window"` // mastered concepts in the trailing average
}

// HourBandCeilings returns the band ceilings in ascending order.
func (c PlannerConfig) HourBandCeilings() []float64 {
	ceilings := make([]float64, 0, len(c.HourBands))
	for k := range c.HourBands {
		ceilings = append(ceilings, k)
	}
	sort.Float64s(ceilings)
	return ceilings
}

// ReviewConfig maps mastery level to the spaced-repetition interval before
// the next review is due.
type ReviewConfig struct {
	NoviceDays     int `yaml:"novice_days"`
	DevelopingDays int `yaml:"developing_days"`
	ProficientDays int `yaml:"proficient_days"`
	AdvancedDays   int `yaml:"advanced_days"`
	MasteredDays   int `yaml:"mastered_days"`
}

// OracleConfig selects and tunes the content oracle provider.
type OracleConfig struct {
	Provider    string        `yaml:"provider"` // anthropic, openai, gemini, mock
	Model       string        `yaml:"model"`
	Timeout     time.Duration `yaml:"timeout"`
	PrefetchTTL time.Duration `yaml:"prefetch_ttl"`
}

func (o *OracleConfig) UnmarshalYAML(node *yaml.Node) error {
	raw := struct {
		Provider    string `yaml:"provider"`
		Model       string `yaml:"model"`
		Timeout     string `yaml:"timeout"`
		PrefetchTTL string `yaml:"prefetch_ttl"`
	}{Provider: o.Provider, Model: o.Model}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	o.Provider = raw.Provider
	o.Model = raw.Model
	var err error
	if o.Timeout, err = overlayDuration(raw.Timeout, o.Timeout); err != nil {
		return fmt.Errorf("oracle.timeout: %w", err)
	}
	if o.PrefetchTTL, err = overlayDuration(raw.PrefetchTTL, o.PrefetchTTL); err != nil {
		return fmt.Errorf("oracle.prefetch_ttl: %w", err)
	}
	return nil
}

// Default returns the engine defaults. Calibration values follow the
// commonly published BKT literature ranges; they are starting points, not
// validated product constants.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{Path: "tutor.db"},
		Logging:  LoggingConfig{Mode: "production"},
		BKT: BKTConfig{
			Default: BKTParams{PInit: 0.25, PLearn: 0.20, PGuess: 0.20, PSlip: 0.10},
		},
		Levels: LevelsConfig{
			Novice:     0.40,
			Developing: 0.60,
			Proficient: 0.85,
			Advanced:   0.95,
		},
		Gate: GateConfig{
			WindowSize:         10,
			AccuracyThreshold:  0.85,
			MinQuestionTypes:   3,
			RetentionThreshold: 0.70,
			SpeedImprovingMax:  0.9,
			SpeedSlowingMin:    1.1,
		},
		Session: SessionConfig{
			StruggleWrongStreak:  3,
			StruggleBKTThreshold: 0.25,
			OracleWait:           2 * time.Second,
		},
		Planner: PlannerConfig{
			HourBands: map[float64]float64{
				2:  0.5,
				4:  1,
				6:  2,
				8:  3,
				10: 5,
			},
			MaxActivePlans: 3,
			VelocityWindow: 5,
		},
		Review: ReviewConfig{
			NoviceDays:     1,
			DevelopingDays: 3,
			ProficientDays: 7,
			AdvancedDays:   14,
			MasteredDays:   30,
		},
		Oracle: OracleConfig{
			Provider:    "mock",
			Timeout:     30 * time.Second,
			PrefetchTTL: 10 * time.Minute,
		},
	}
}

// Load reads configuration from the YAML file at path (when it exists),
// layered over defaults, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("TUTOR_DB"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("TUTOR_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("TUTOR_LOG_MODE"); v != "" {
		c.Logging.Mode = v
	}
	if v := os.Getenv("TUTOR_ORACLE_PROVIDER"); v != "" {
		c.Oracle.Provider = v
	}
	if v := os.Getenv("TUTOR_ORACLE_MODEL"); v != "" {
		c.Oracle.Model = v
	}
}

// Validate checks cross-field consistency of the tuning parameters.
func (c *Config) Validate() error {
	p := c.BKT.Default
	for name, v := range map[string]float64{
		"bkt.default.p_init": p.PInit, "bkt.default.p_learn": p.PLearn,
		"bkt.default.p_guess": p.PGuess, "bkt.default.p_slip": p.PSlip,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %g", name, v)
		}
	}
	if p.PGuess >= 1 {
		return fmt.Errorf("bkt.default.p_guess must be < 1")
	}
	if !(c.Levels.Novice < c.Levels.Developing &&
		c.Levels.Developing < c.Levels.Proficient &&
		c.Levels.Proficient < c.Levels.Advanced &&
		c.Levels.Advanced <= 1) {
		return fmt.Errorf("level thresholds must be strictly increasing and at most 1")
	}
	if c.Gate.WindowSize <= 0 {
		return fmt.Errorf("gate.window_size must be > 0")
	}
	if c.Gate.SpeedImprovingMax >= c.Gate.SpeedSlowingMin {
		return fmt.Errorf("gate.speed_improving_max must be below gate.speed_slowing_min")
	}
	if len(c.Planner.HourBands) == 0 {
		return fmt.Errorf("planner.hour_bands must not be empty")
	}
	if c.Planner.MaxActivePlans <= 0 {
		return fmt.Errorf("planner.max_active_plans must be > 0")
	}
	if c.Planner.VelocityWindow <= 0 {
		return fmt.Errorf("planner.velocity_window must be > 0")
	}
	if c.Session.StruggleWrongStreak <= 0 {
		return fmt.Errorf("session.struggle_wrong_streak must be > 0")
	}
	return nil
}
