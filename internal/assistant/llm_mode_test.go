package assistant

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge/internal/llm"
	"concierge/internal/provider"
	"concierge/pkg/models"
)

// scriptedClient plays back canned responses in order.
type scriptedClient struct {
	responses []*llm.Response
	requests  [][]llm.Message
}

func (c *scriptedClient) Chat(ctx context.Context, messages []llm.Message, tools []llm.ToolDefinition, systemPrompt string) (*llm.Response, error) {
	c.requests = append(c.requests, messages)
	resp := c.responses[0]
	c.responses = c.responses[1:]
	return resp, nil
}

func (c *scriptedClient) Name() string { return "scripted" }

func TestLLMReplyExecutesToolAndContinues(t *testing.T) {
	client := &scriptedClient{responses: []*llm.Response{
		{
			StopReason: "tool_use",
			ToolCalls: []llm.ToolCall{
				{ID: "t1", Name: "get_weather", Input: []byte(`{"location":"Paris"}`)},
			},
		},
		{StopReason: "end_turn", Content: "It is 18°C in Paris right now."},
	}}

	w := &fakeWeather{report: &models.WeatherReport{Location: "Paris", Country: "FR", Temperature: 18}}
	a := NewLLM(llm.ForceClient(client), w, &fakeStock{}, &fakeRaces{}, zerolog.Nop())

	got, err := a.Reply(context.Background(), []models.ChatMessage{{Role: "user", Content: "how warm is Paris?"}})
	require.NoError(t, err)
	assert.Equal(t, "It is 18°C in Paris right now.", got)
	assert.Equal(t, []string{"Paris"}, w.calls)

	// The second model call must carry the JSON tool payload, and that
	// payload must classify as a weather result.
	require.Len(t, client.requests, 2)
	secondTurn := client.requests[1]
	last := secondTurn[len(secondTurn)-1]
	assert.Contains(t, last.Content, `"location":"Paris"`)
}

func TestLLMToolPayloadsClassify(t *testing.T) {
	w := &fakeWeather{report: &models.WeatherReport{Location: "Paris", Country: "FR", Temperature: 18}}
	s := &fakeStock{quote: &models.StockQuote{Symbol: "AAPL", Price: 150.25}}
	r := &fakeRaces{race: &models.RaceEvent{RaceName: "Monaco Grand Prix", Round: 8}}
	a := NewLLM(nil, w, s, r, zerolog.Nop())

	tests := []struct {
		tool     string
		input    string
		wantKind models.ResultKind
	}{
		{"get_weather", `{"location":"Paris"}`, models.KindWeather},
		{"get_stock_price", `{"symbol":"AAPL"}`, models.KindStock},
		{"get_next_race", `{}`, models.KindRace},
		{"unknown_tool", `{}`, models.KindError},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			result := a.executeTool(context.Background(), tt.tool, json.RawMessage(tt.input))
			payload, err := json.Marshal(result)
			require.NoError(t, err)

			classified, ok := models.Classify(string(payload))
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, classified.Kind)
		})
	}
}

func TestLLMRaceToolFallsBackToPlaceholder(t *testing.T) {
	r := &fakeRaces{err: provider.ErrUnavailable}
	a := NewLLM(nil, &fakeWeather{}, &fakeStock{}, r, zerolog.Nop())

	result := a.executeTool(context.Background(), "get_next_race", json.RawMessage(`{}`))
	require.Equal(t, models.KindRace, result.Kind)
	assert.Equal(t, "Abu Dhabi Grand Prix", result.Race.RaceName)
}

func TestLLMReplyNoBackend(t *testing.T) {
	a := NewLLM(llm.ForceClient(nil), &fakeWeather{}, &fakeStock{}, &fakeRaces{}, zerolog.Nop())

	_, err := a.Reply(context.Background(), []models.ChatMessage{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}
