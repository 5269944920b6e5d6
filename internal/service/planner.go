package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tabiplan/internal/ai"
	"tabiplan/internal/modules/usage"
	"tabiplan/internal/persona"
)

// ErrEmptyInput is returned when the request text is blank after trimming.
// No model call is made in that case.
var ErrEmptyInput = errors.New("empty input")

// EmptyInputNotice is the user-facing text shown for ErrEmptyInput.
const EmptyInputNotice = "入力が空です。内容を入力してください。"

// userPromptTemplate fixes the request wording and output requirements around
// the raw user text. The model sees the text exactly as it was typed.
const userPromptTemplate = `以下の条件で旅行プランを作成してください。
ユーザー入力:
%s

出力要件:
- 時間順（例: 09:00 出発 → 10:15 到着 → …）
- 箇条書きを中心に簡潔に
- 固有名は一般的な観光地に留め、過度な断定は避ける
- 不明点は仮定を明記
`

// Plan is one generated itinerary.
type Plan struct {
	PersonaKey   string `json:"persona"`
	PersonaTitle string `json:"title"`
	Text         string `json:"plan"`
}

// Planner turns free-form travel wishes into timeline plans through the
// configured chat model.
type Planner struct {
	llm   ai.Client
	usage *usage.Service
	model string
}

// NewPlanner creates a Planner. usageSvc may be nil when metering is not
// configured; model names the provider/model pair recorded with each attempt.
func NewPlanner(llm ai.Client, usageSvc *usage.Service, model string) *Planner {
	return &Planner{
		llm:   llm,
		usage: usageSvc,
		model: model,
	}
}

// Generate builds the two-message prompt for the selected persona and returns
// the model reply as a plan. Unknown persona keys fall back to the default
// persona rather than failing.
func (p *Planner) Generate(ctx context.Context, userText, personaKey string) (*Plan, error) {
	per := persona.Lookup(personaKey)

	if strings.TrimSpace(userText) == "" {
		p.usage.Record(ctx, usage.Entry{
			PersonaKey: per.Key,
			Model:      p.model,
			Outcome:    usage.OutcomeEmpty,
		})
		return nil, ErrEmptyInput
	}

	prompt := fmt.Sprintf(userPromptTemplate, userText)

	start := time.Now()
	text, err := p.llm.Complete(ctx, per.System, prompt)
	elapsed := time.Since(start)

	entry := usage.Entry{
		PersonaKey: per.Key,
		Model:      p.model,
		InputChars: len([]rune(userText)),
		Duration:   elapsed,
		Outcome:    usage.OutcomeOK,
	}
	if err != nil {
		entry.Outcome = usage.OutcomeError
	}
	p.usage.Record(ctx, entry)

	if err != nil {
		return nil, fmt.Errorf("plan generation: %w", err)
	}

	return &Plan{
		PersonaKey:   per.Key,
		PersonaTitle: per.Title,
		Text:         text,
	}, nil
}
