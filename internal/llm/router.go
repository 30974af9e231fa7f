package llm

import (
	"context"
	"strings"
)

// HybridRouter picks a backend per query: plain data lookups can run on a
// local model, conversational or comparative questions go to the cloud.
type HybridRouter struct {
	localClient *OllamaClient
	cloudClient *ClaudeClient
	preferLocal bool
	localAvail  bool
}

func NewHybridRouter(ollamaURL, ollamaModel, claudeAPIKey, claudeModel string, preferLocal bool) *HybridRouter {
	router := &HybridRouter{
		preferLocal: preferLocal,
	}

	if ollamaURL != "" || preferLocal {
		router.localClient = NewOllamaClient(ollamaURL, ollamaModel)
		router.localAvail = router.localClient.IsAvailable(context.Background())
	}

	if claudeAPIKey != "" {
		router.cloudClient = NewClaudeClient(claudeAPIKey, claudeModel)
	}

	return router
}

func (r *HybridRouter) Route(query string) Client {
	if r.isComplexQuery(query) && r.cloudClient != nil {
		return r.cloudClient
	}

	if r.preferLocal && r.localAvail && r.localClient != nil {
		return r.localClient
	}

	if r.cloudClient != nil {
		return r.cloudClient
	}

	if r.localClient != nil {
		return r.localClient
	}

	return nil
}

func (r *HybridRouter) GetCloud() Client {
	return r.cloudClient
}

func (r *HybridRouter) LocalAvailable() bool {
	return r.localAvail
}

func (r *HybridRouter) isComplexQuery(query string) bool {
	query = strings.ToLower(query)

	complexIndicators := []string{
		"compare",
		"should i",
		"recommend",
		"why",
		"explain",
		"forecast",
		"trend",
		"better",
		"versus",
		" vs ",
	}

	for _, indicator := range complexIndicators {
		if strings.Contains(query, indicator) {
			return true
		}
	}

	simpleIndicators := []string{
		"weather",
		"stock",
		"price",
		"race",
		"f1",
		"temperature",
	}

	for _, indicator := range simpleIndicators {
		if strings.Contains(query, indicator) {
			return false
		}
	}

	return len(query) > 100
}

// ForcedClient is a Router pinned to one backend, for the --local/--cloud
// CLI flags.
type ForcedClient struct {
	client Client
}

func ForceClient(c Client) *ForcedClient {
	return &ForcedClient{client: c}
}

func (f *ForcedClient) Route(query string) Client {
	return f.client
}
