// Package enrich wraps the deterministic advising engine with the
// optional layers: live research notes about candidate schools and a
// generative restyle of the reply. Every enrichment is best-effort;
// when a layer fails or is not configured the deterministic reply
// passes through unchanged and the advisee never sees an error.
package enrich

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/eduguide/advisor/internal/composer"
	"github.com/eduguide/advisor/internal/engine"
	"github.com/eduguide/advisor/internal/intent"
	"github.com/eduguide/advisor/internal/llm"
	"github.com/eduguide/advisor/internal/profile"
	"github.com/eduguide/advisor/internal/prompts"
	"github.com/eduguide/advisor/internal/research"
)

// maxHistoryTurns bounds how much conversation history reaches the
// restyle prompt.
const maxHistoryTurns = 14

// Generation deadlines. A slow provider must not hold the reply hostage.
const (
	restyleTimeout = 30 * time.Second
	suggestTimeout = 10 * time.Second
)

// Turn is one prior message in the conversation. Roles follow the
// chat-transcript convention: "user" is the advisee, "assistant" the
// advisor.
type Turn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// Request is one advising request from a client.
type Request struct {
	Message  string          `json:"message" validate:"required,max=4000"`
	Profile  profile.Profile `json:"profile"`
	UserName string          `json:"user_name" validate:"omitempty,max=100"`
	History  []Turn          `json:"history" validate:"dive"`
	Mode     string          `json:"mode" validate:"omitempty,oneof=demo dashboard"`
}

// Response is the enriched advising reply.
type Response struct {
	composer.Response
	Sources []research.Note `json:"sources,omitempty"`
}

// Options configures which enrichment layers run.
type Options struct {
	Research bool
	// ResearchLimit caps how many schools one request researches;
	// zero means the research package default.
	ResearchLimit int
	Verbose       bool
}

// Advisor is the enriched advising pipeline. A nil client disables the
// generative layers entirely.
type Advisor struct {
	engine *engine.Engine
	client llm.Client
	opts   Options
}

// New builds an advisor around a deterministic engine.
func New(eng *engine.Engine, client llm.Client, opts Options) *Advisor {
	return &Advisor{engine: eng, client: client, opts: opts}
}

// Advise answers one request. The deterministic engine always runs
// first; refusals skip enrichment entirely.
func (a *Advisor) Advise(ctx context.Context, req Request) Response {
	core := a.engine.Respond(req.Message, req.Profile, req.UserName)
	resp := Response{Response: core}

	if intent.OutOfScope(req.Message) {
		return resp
	}

	if a.opts.Research && len(core.Colleges) > 0 {
		targets := research.FindTargets(req.Message, core.Colleges)
		if a.opts.ResearchLimit > 0 && len(targets) > a.opts.ResearchLimit {
			targets = targets[:a.opts.ResearchLimit]
		}
		resp.Sources = research.Collect(ctx, targets, a.opts.Verbose)
	}

	if a.client == nil {
		return resp
	}

	if restyled, err := a.restyle(ctx, req, core.Content, resp.Sources); err != nil {
		if a.opts.Verbose {
			log.Printf("[ENRICH] restyle failed, keeping deterministic reply: %v", err)
		}
	} else if restyled != "" {
		resp.Content = restyled
	}

	if suggestions, err := a.suggestFollowUps(ctx, req, resp.Content); err != nil {
		if a.opts.Verbose {
			log.Printf("[ENRICH] follow-up suggestion failed: %v", err)
		}
	} else if len(suggestions) > 0 {
		resp.FollowUpQuestions = suggestions
	}

	return resp
}

// restyle rewrites the deterministic draft in the advisor's voice.
// School names, numbers, and list order are pinned by the prompt; the
// draft is the fallback on any failure.
func (a *Advisor) restyle(ctx context.Context, req Request, draft string, sources []research.Note) (string, error) {
	template, err := prompts.Get("advising.json", "restyle")
	if err != nil {
		return "", err
	}

	prompt := prompts.Format(template, map[string]string{
		"UserName":       orUnknown(req.UserName),
		"ProfileSummary": profileSummary(req.Profile),
		"History":        formatHistory(req.History),
		"Message":        req.Message,
		"Draft":          draft,
	})

	if len(sources) > 0 {
		addendum, err := prompts.Get("advising.json", "restyle-with-sources")
		if err == nil {
			prompt += "\n\n" + prompts.Format(addendum, map[string]string{
				"Sources": formatSources(sources),
			})
		}
	}

	ctx, cancel := context.WithTimeout(ctx, restyleTimeout)
	defer cancel()

	out, err := a.client.GenerateText(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// suggestFollowUps asks the lite tier for three context-aware
// follow-up questions. Anything that is not exactly three non-empty
// strings is discarded.
func (a *Advisor) suggestFollowUps(ctx context.Context, req Request, reply string) ([]string, error) {
	template, err := prompts.Get("advising.json", "suggest-follow-ups")
	if err != nil {
		return nil, err
	}

	prompt := prompts.Format(template, map[string]string{
		"ProfileSummary": profileSummary(req.Profile),
		"Message":        req.Message,
		"Draft":          reply,
	})

	ctx, cancel := context.WithTimeout(ctx, suggestTimeout)
	defer cancel()

	out, err := a.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, err
	}

	var suggestions []string
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(out)), &suggestions); err != nil {
		return nil, err
	}
	if len(suggestions) != 3 {
		return nil, nil
	}
	for _, s := range suggestions {
		if strings.TrimSpace(s) == "" {
			return nil, nil
		}
	}
	return suggestions, nil
}

// formatHistory renders the last maxHistoryTurns turns, oldest first.
func formatHistory(history []Turn) string {
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	if len(history) == 0 {
		return "(first message)"
	}

	var b strings.Builder
	for _, turn := range history {
		b.WriteString(roleLabel(turn.Role))
		b.WriteString(": ")
		b.WriteString(turn.Content)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// roleLabel translates transcript roles into the advising vocabulary
// the restyle prompt uses.
func roleLabel(role string) string {
	switch role {
	case "user":
		return "student"
	case "assistant":
		return "advisor"
	}
	return role
}

func formatSources(sources []research.Note) string {
	var b strings.Builder
	for _, s := range sources {
		b.WriteString("- ")
		b.WriteString(s.Title)
		b.WriteString(": ")
		b.WriteString(s.Note)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func profileSummary(p profile.Profile) string {
	if p.IsEmpty() {
		return "(nothing yet)"
	}
	data, err := json.Marshal(p)
	if err != nil {
		return "(nothing yet)"
	}
	return string(data)
}

func orUnknown(name string) string {
	if name == "" {
		return "(not given)"
	}
	return name
}
