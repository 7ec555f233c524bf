package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/llm"
)

// CategorizeService assigns ASCEND and NORTH categories to report items.
type CategorizeService interface {
	// Categorize returns a category pair for every item in the input.
	// Coverage is total: items the model misses or mislabels receive
	// the fallback pair. The bool reports whether any fallback was used.
	Categorize(ctx context.Context, items []domain.BodyItem) (map[int]CategoryPair, bool)
}

type categorizeService struct {
	client llm.Client
}

// NewCategorizeService creates a CategorizeService backed by an LLM
// client. A nil client means every item gets the fallback pair.
func NewCategorizeService(client llm.Client) CategorizeService {
	return &categorizeService{client: client}
}

func (s *categorizeService) Categorize(ctx context.Context, items []domain.BodyItem) (map[int]CategoryPair, bool) {
	out := make(map[int]CategoryPair, len(items))
	if len(items) == 0 {
		return out, false
	}

	modeled := s.askModel(ctx, items)

	usedFallback := false
	for _, it := range items {
		pair, ok := modeled[it.ID]
		if !ok {
			pair = FallbackPair()
			usedFallback = true
		}
		out[it.ID] = pair
	}
	return out, usedFallback
}

// askModel returns whatever valid assignments the model produced, keyed
// by item ID. Any failure yields an empty map.
func (s *categorizeService) askModel(ctx context.Context, items []domain.BodyItem) map[int]CategoryPair {
	if s.client == nil {
		return nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskCategorize,
		SystemPrompt: categorizeSystemPrompt,
		UserPrompt:   formatItemList(items),
	})
	if err != nil {
		return nil
	}

	payload, err := llm.ExtractJSON[categorizationPayload](resp.Text, validateCategorization)
	if err != nil {
		return nil
	}

	known := make(map[int]bool, len(items))
	for _, it := range items {
		known[it.ID] = true
	}

	modeled := make(map[int]CategoryPair, len(payload.Items))
	for _, it := range payload.Items {
		if !known[it.ID] {
			continue
		}
		modeled[it.ID] = CategoryPair{
			Ascend: domain.AscendCategory(it.Ascend),
			North:  domain.NorthCategory(it.North),
		}
	}
	return modeled
}

func formatItemList(items []domain.BodyItem) string {
	var b strings.Builder
	b.WriteString("Categorize these weekly report items:\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "%d. [%s, %s] %s\n", it.ID, domain.SectionLabels[it.Section], it.Kind, it.Text)
	}
	return b.String()
}
