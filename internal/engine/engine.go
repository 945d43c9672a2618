// Package engine wires the adaptive core together and exposes its
// operations as one facade: answer submission, hints, session lifecycle,
// gate evaluation, plan generation, and branch navigation.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/brightpath/tutor/internal/config"
	"github.com/brightpath/tutor/internal/curriculum"
	"github.com/brightpath/tutor/internal/events"
	"github.com/brightpath/tutor/internal/gate"
	"github.com/brightpath/tutor/internal/logging"
	"github.com/brightpath/tutor/internal/mastery"
	"github.com/brightpath/tutor/internal/oracle"
	"github.com/brightpath/tutor/internal/planner"
	"github.com/brightpath/tutor/internal/review"
	"github.com/brightpath/tutor/internal/session"
	"github.com/brightpath/tutor/internal/store"
)

// Stores bundles the persistence interfaces the engine consumes.
type Stores struct {
	Mastery   store.MasteryRepo
	Responses store.ResponseRepo
	Sessions  store.SessionRepo
	Plans     store.PlanRepo
}

// Engine is the adaptive core facade.
type Engine struct {
	Graph    *curriculum.Graph
	Mastery  *mastery.Service
	Gate     *gate.Service
	Planner  *planner.Service
	Sessions *session.Service
	Reviews  *review.Service

	log *logging.Logger
}

// New assembles the engine from its collaborators. The content source and
// publisher are injected so callers control oracle wiring and event
// delivery; pass nil for publisher to log events only.
func New(cfg *config.Config, stores Stores, graph *curriculum.Graph, content session.ContentSource, publisher events.Publisher, log *logging.Logger) *Engine {
	if publisher == nil {
		publisher = events.NewAsync(events.NewLogPublisher(log), log)
	}

	masterySvc := mastery.NewService(stores.Mastery, cfg, log)
	gateSvc := gate.NewService(stores.Responses, stores.Mastery, cfg.Gate, log)
	plannerSvc := planner.NewService(stores.Plans, masterySvc, stores.Responses, graph, cfg.Planner, log)
	sessionSvc := session.NewService(stores.Sessions, stores.Responses, masterySvc, gateSvc, plannerSvc, graph, content, publisher, cfg.Session, log)
	reviewSvc := review.NewService(stores.Mastery, graph, cfg, log)

	return &Engine{
		Graph:    graph,
		Mastery:  masterySvc,
		Gate:     gateSvc,
		Planner:  plannerSvc,
		Sessions: sessionSvc,
		Reviews:  reviewSvc,
		log:      log,
	}
}

// NewContentSource builds the narrative pipeline from configuration:
// provider, retry and logging middleware, narrator, prefetch cache.
func NewContentSource(ctx context.Context, cfg *config.Config, log *logging.Logger) (session.ContentSource, error) {
	oracleCfg := oracle.FromEnv()
	if cfg.Oracle.Provider != "" {
		oracleCfg.Provider = cfg.Oracle.Provider
	}
	if cfg.Oracle.Model != "" {
		oracleCfg.Model = cfg.Oracle.Model
	}
	if cfg.Oracle.Timeout > 0 {
		oracleCfg.Timeout = cfg.Oracle.Timeout
	}

	provider, err := oracle.NewProvider(ctx, oracleCfg, log)
	if err != nil {
		return nil, fmt.Errorf("content oracle: %w", err)
	}

	narratorCfg := oracle.DefaultNarratorConfig()
	if cfg.Session.OracleWait > 0 {
		narratorCfg.Wait = cfg.Session.OracleWait
	}
	narrator := oracle.NewNarrator(provider, narratorCfg, log)

	ttl := cfg.Oracle.PrefetchTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return oracle.NewPrefetchNarrator(narrator, 256, ttl, log), nil
}

// BranchTree returns the student's derived branch view: per-branch
// unlocked/completed status plus deeper/broader choices.
func (e *Engine) BranchTree(ctx context.Context, studentID string) (*curriculum.BranchTree, error) {
	mastered, err := e.Mastery.MasteredSet(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load mastered set: %w", err)
	}
	tree := e.Graph.BranchTreeFor(mastered)
	return &tree, nil
}
