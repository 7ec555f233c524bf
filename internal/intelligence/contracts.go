package intelligence

import (
	"fmt"

	"github.com/alexanderramin/pulse/internal/domain"
)

// CategoryPair holds the two framework labels assigned to one report item.
type CategoryPair struct {
	Ascend domain.AscendCategory
	North  domain.NorthCategory
}

// FallbackPair is assigned to any item the model fails to categorize.
func FallbackPair() CategoryPair {
	return CategoryPair{Ascend: domain.FallbackAscend, North: domain.FallbackNorth}
}

// itemCategories is the per-item element of the model's categorization output.
type itemCategories struct {
	ID     int    `json:"id"`
	Ascend string `json:"ascend_category"`
	North  string `json:"north_category"`
}

// categorizationPayload is the JSON object the model is asked to produce.
type categorizationPayload struct {
	Items []itemCategories `json:"items"`
}

// validateCategorization rejects output containing unknown category labels.
// Unknown item IDs are tolerated here and dropped during the merge.
func validateCategorization(p categorizationPayload) error {
	for _, it := range p.Items {
		if !domain.ValidAscendCategories[domain.AscendCategory(it.Ascend)] {
			return fmt.Errorf("unknown ascend category %q for item %d", it.Ascend, it.ID)
		}
		if !domain.ValidNorthCategories[domain.NorthCategory(it.North)] {
			return fmt.Errorf("unknown north category %q for item %d", it.North, it.ID)
		}
	}
	return nil
}

// summaryPayload is the JSON object the model produces for summary tasks.
type summaryPayload struct {
	Summary string `json:"summary"`
}

func validateSummary(p summaryPayload) error {
	if p.Summary == "" {
		return fmt.Errorf("empty summary")
	}
	return nil
}
