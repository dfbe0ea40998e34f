package narrative

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeminuswork/readiness-check/internal/llm"
)

// stubClient implements llm.Client with canned responses.
type stubClient struct {
	response string
	err      error
	calls    int
}

func (s *stubClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubClient) GetModel(_ llm.ModelTier) string { return "stub" }
func (s *stubClient) Close() error                    { return nil }

func TestProvider_NilClientUsesFallback(t *testing.T) {
	p := NewProvider(nil)
	req := Request{FirstName: "Ada", Scores: allFivesScores(), Overall: 5}

	content := p.FullReport(context.Background(), req)

	assert.Equal(t, FallbackReport(req), content)
}

func TestProvider_TransportErrorUsesFallback(t *testing.T) {
	stub := &stubClient{err: errors.New("boom")}
	p := NewProvider(stub)
	req := Request{FirstName: "Ada", Scores: allFivesScores(), Overall: 5}

	content := p.FullReport(context.Background(), req)

	assert.Equal(t, FallbackReport(req), content)
	assert.Equal(t, 1, stub.calls)
}

func TestProvider_NonJSONOutputUsesFallback(t *testing.T) {
	stub := &stubClient{response: "I could not produce JSON today, sorry."}
	p := NewProvider(stub)
	req := Request{Scores: allFivesScores(), Overall: 5}

	content := p.FullReport(context.Background(), req)

	assert.Equal(t, FallbackReport(req), content)
}

func TestProvider_MalformedJSONUsesFallback(t *testing.T) {
	stub := &stubClient{response: `{"headline": "unterminated`}
	p := NewProvider(stub)
	req := Request{Scores: allFivesScores(), Overall: 5}

	content := p.FullReport(context.Background(), req)

	assert.Equal(t, FallbackReport(req), content)
}

func TestProvider_ProseWrappedJSONIsExtracted(t *testing.T) {
	stub := &stubClient{response: `Here you go! {"headline": "A calm next chapter"} Enjoy.`}
	p := NewProvider(stub)
	req := Request{FirstName: "Ada", Scores: allFivesScores(), Overall: 5}

	content := p.FullReport(context.Background(), req)

	assert.Equal(t, "A calm next chapter", content.Headline)
}

func TestProvider_PartialResultKeepsFallbackFields(t *testing.T) {
	stub := &stubClient{response: `{"headline": "Generated headline", "actions": ["One generated action"]}`}
	p := NewProvider(stub)
	req := Request{FirstName: "Ada", Scores: allFivesScores(), Overall: 5}

	content := p.FullReport(context.Background(), req)
	fallback := FallbackReport(req)

	assert.Equal(t, "Generated headline", content.Headline)
	assert.Equal(t, []string{"One generated action"}, content.Actions)
	// Fields the generation omitted keep their deterministic values.
	assert.Equal(t, fallback.WeekPlan, content.WeekPlan)
	assert.Equal(t, fallback.SignatureSentence, content.SignatureSentence)
}

func TestProvider_MiniReportGenerated(t *testing.T) {
	stub := &stubClient{response: `{
		"mini_headline": "Ada, momentum is on your side.",
		"tiny_actions": ["Walk", "Call", "Plan"],
		"week_teaser": ["Mon: walk", "Tue: call", "Wed: plan"],
		"unlock": ["A", "B", "C", "D"]
	}`}
	p := NewProvider(stub)
	req := Request{FirstName: "Ada", Scores: allFivesScores(), Overall: 5}

	mini := p.MiniReport(context.Background(), req)

	assert.Equal(t, "Ada, momentum is on your side.", mini.Headline)
	require.Len(t, mini.TinyActions, 3)
	assert.Len(t, mini.Unlock, 4)
}

func TestProvider_MiniReportFallbackOnError(t *testing.T) {
	stub := &stubClient{err: errors.New("unavailable")}
	p := NewProvider(stub)
	req := Request{FirstName: "Ada", Scores: allFivesScores(), Overall: 5}

	mini := p.MiniReport(context.Background(), req)

	assert.Equal(t, FallbackMini(req), mini)
}
