package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/brightpath/tutor/internal/curriculum"
	"github.com/brightpath/tutor/internal/logging"
)

// NarrativeSchema defines the JSON schema for tutoring narrative text.
var NarrativeSchema = &Schema{
	Name:        "tutoring-narrative",
	Description: "A short piece of tutoring narrative text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "The narrative text, 1-4 sentences, plain ASCII",
			},
		},
		"required":             []any{"text"},
		"additionalProperties": false,
	},
}

const narratorSystemPrompt = `You are a patient, encouraging tutor for K-12 students. Write short, warm, age-appropriate text. Use plain ASCII, no markdown, no emoji.`

// NarratorConfig tunes narrative generation.
type NarratorConfig struct {
	// MaxTokens bounds each generated narrative.
	MaxTokens int

	// Temperature for generation. Narratives tolerate some variety.
	Temperature float64

	// Wait bounds how long a caller blocks on the oracle before falling
	// back to canned text.
	Wait time.Duration
}

// DefaultNarratorConfig returns narrator defaults.
func DefaultNarratorConfig() NarratorConfig {
	return NarratorConfig{
		MaxTokens:   300,
		Temperature: 0.7,
		Wait:        2 * time.Second,
	}
}

// Narrator produces the tutoring text shown to students: teaching
// introductions, hints, and celebrations. Every method degrades to a
// canned fallback when the oracle is slow or unavailable, so callers
// never block on it beyond the configured wait.
type Narrator struct {
	provider Provider
	cfg      NarratorConfig
	log      *logging.Logger
}

// NewNarrator creates a Narrator.
func NewNarrator(provider Provider, cfg NarratorConfig, log *logging.Logger) *Narrator {
	return &Narrator{provider: provider, cfg: cfg, log: log}
}

// Teaching returns an introduction for a concept.
func (n *Narrator) Teaching(ctx context.Context, node *curriculum.ConceptNode) string {
	prompt := buildTeachingPrompt(node)
	fallback := fmt.Sprintf("Let's learn about %s. Take your time and work through each step.", node.Name)
	return n.generate(WithPurpose(ctx, "teaching"), prompt, fallback)
}

// Hint returns a hint for the concept being practiced. The hint guides
// without revealing the answer.
func (n *Narrator) Hint(ctx context.Context, node *curriculum.ConceptNode, wrongStreak int) string {
	prompt := buildHintPrompt(node, wrongStreak)
	fallback := fmt.Sprintf("Think about what %s means, and break the problem into smaller steps.", node.Name)
	return n.generate(WithPurpose(ctx, "hint"), prompt, fallback)
}

// Celebration returns congratulatory text for a newly mastered concept.
func (n *Narrator) Celebration(ctx context.Context, node *curriculum.ConceptNode) string {
	prompt := buildCelebrationPrompt(node)
	fallback := fmt.Sprintf("Great work! You've mastered %s.", node.Name)
	return n.generate(WithPurpose(ctx, "celebration"), prompt, fallback)
}

// Encouragement returns supportive text for a struggling student.
func (n *Narrator) Encouragement(ctx context.Context, node *curriculum.ConceptNode) string {
	prompt := buildEncouragementPrompt(node)
	fallback := "It's okay to find this tricky. Let's slow down and try a different way."
	return n.generate(WithPurpose(ctx, "encouragement"), prompt, fallback)
}

type narrativeOutput struct {
	Text string `json:"text"`
}

func (n *Narrator) generate(ctx context.Context, prompt, fallback string) string {
	ctx, cancel := context.WithTimeout(ctx, n.cfg.Wait)
	defer cancel()

	req := Request{
		System:      narratorSystemPrompt,
		Prompt:      prompt,
		Schema:      NarrativeSchema,
		MaxTokens:   n.cfg.MaxTokens,
		Temperature: n.cfg.Temperature,
	}

	resp, err := n.provider.Generate(ctx, req)
	if err != nil {
		n.log.Debug("narrative fallback", "purpose", PurposeFrom(ctx), "error", err)
		return fallback
	}

	var out narrativeOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil || strings.TrimSpace(out.Text) == "" {
		n.log.Debug("narrative parse fallback", "purpose", PurposeFrom(ctx))
		return fallback
	}

	return out.Text
}

func buildTeachingPrompt(node *curriculum.ConceptNode) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Concept: %s\n", node.Name))
	b.WriteString(fmt.Sprintf("Description: %s\n", node.Description))
	b.WriteString(fmt.Sprintf("Grade: %d\n", node.GradeLevel))
	b.WriteString("\nWrite a 2-4 sentence introduction to this concept for a student about to start learning it. Explain what it is and why it matters, in simple language.")
	return b.String()
}

func buildHintPrompt(node *curriculum.ConceptNode, wrongStreak int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Concept: %s\n", node.Name))
	b.WriteString(fmt.Sprintf("Description: %s\n", node.Description))
	b.WriteString(fmt.Sprintf("Grade: %d\n", node.GradeLevel))
	if wrongStreak > 0 {
		b.WriteString(fmt.Sprintf("The student has answered %d questions wrong in a row.\n", wrongStreak))
	}
	b.WriteString("\nWrite a 1-3 sentence hint that nudges the student toward the right approach. Do NOT give away any answer.")
	return b.String()
}

func buildCelebrationPrompt(node *curriculum.ConceptNode) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Concept: %s\n", node.Name))
	b.WriteString(fmt.Sprintf("Grade: %d\n", node.GradeLevel))
	b.WriteString("\nThe student just mastered this concept. Write 1-2 sentences of specific, genuine congratulations.")
	return b.String()
}

func buildEncouragementPrompt(node *curriculum.ConceptNode) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Concept: %s\n", node.Name))
	b.WriteString(fmt.Sprintf("Grade: %d\n", node.GradeLevel))
	b.WriteString("\nThe student is struggling with this concept. Write 1-2 sentences of encouragement that normalizes the struggle and suggests slowing down.")
	return b.String()
}
