package services

import "github.com/terraincognita07/moveday/internal/models"

// Progress returns the completion ratio in [0,1] for one category, or 0
// when the category has no items.
func Progress(items []models.ChecklistItem, category string) float64 {
	total := 0
	completed := 0
	for _, item := range items {
		if item.Category != category {
			continue
		}
		total++
		if item.Completed {
			completed++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total)
}

// OverallProgress returns the completion ratio across the whole list, or 0
// for an empty list.
func OverallProgress(items []models.ChecklistItem) float64 {
	if len(items) == 0 {
		return 0
	}
	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(items))
}

type CategoryProgress struct {
	Category  string  `json:"category"`
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Ratio     float64 `json:"ratio"`
}

// ProgressByCategory summarizes each category in display order. Empty
// categories are not skipped; they report zero counts and a zero ratio.
func ProgressByCategory(items []models.ChecklistItem) []CategoryProgress {
	summaries := make([]CategoryProgress, 0, len(models.Categories()))
	for _, category := range models.Categories() {
		summary := CategoryProgress{Category: category}
		for _, item := range items {
			if item.Category != category {
				continue
			}
			summary.Total++
			if item.Completed {
				summary.Completed++
			}
		}
		if summary.Total > 0 {
			summary.Ratio = float64(summary.Completed) / float64(summary.Total)
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
