package lottery

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
)

const (
	noResultsMessageConstant            = "no results to summarize"
	statisticsErrorTemplateConstant     = "unable to compute %s: %w"
	statisticsMeanLabelConstant         = "mean"
	statisticsMedianLabelConstant       = "median"
	statisticsStandardDeviationConstant = "standard deviation"
)

// ErrNoResults indicates Summarize received no successful results.
var ErrNoResults = errors.New(noResultsMessageConstant)

// CategoryFrequency reports how often numbers from a category were drawn.
type CategoryFrequency struct {
	Category Category `yaml:"category"`
	Count    int      `yaml:"count"`
}

// Summary aggregates the numbers of many generated results.
type Summary struct {
	ResultCount       int                 `yaml:"results"`
	NumberCount       int                 `yaml:"numbers"`
	Mean              float64             `yaml:"mean"`
	Median            float64             `yaml:"median"`
	StandardDeviation float64             `yaml:"standard_deviation"`
	Frequencies       []CategoryFrequency `yaml:"frequencies"`
}

// Summarize computes per-category frequencies and descriptive statistics over successful results.
func Summarize(results []*Result) (Summary, error) {
	drawnNumbers := make([]int, 0)
	categoryCounts := make(map[Category]int)
	resultCount := 0
	for _, result := range results {
		if result == nil || !result.IsSuccess() {
			continue
		}
		resultCount++
		for _, entry := range result.Entries() {
			drawnNumbers = append(drawnNumbers, entry.Number)
			categoryCounts[entry.Category]++
		}
	}

	if len(drawnNumbers) == 0 {
		return Summary{}, ErrNoResults
	}

	numberData := stats.LoadRawData(drawnNumbers)

	mean, meanError := stats.Mean(numberData)
	if meanError != nil {
		return Summary{}, fmt.Errorf(statisticsErrorTemplateConstant, statisticsMeanLabelConstant, meanError)
	}
	median, medianError := stats.Median(numberData)
	if medianError != nil {
		return Summary{}, fmt.Errorf(statisticsErrorTemplateConstant, statisticsMedianLabelConstant, medianError)
	}
	standardDeviation, deviationError := stats.StandardDeviation(numberData)
	if deviationError != nil {
		return Summary{}, fmt.Errorf(statisticsErrorTemplateConstant, statisticsStandardDeviationConstant, deviationError)
	}

	frequencies := make([]CategoryFrequency, 0, len(categoryBoundaries))
	for _, boundary := range categoryBoundaries {
		if boundary.Category == CategoryUnknown {
			continue
		}
		frequencies = append(frequencies, CategoryFrequency{Category: boundary.Category, Count: categoryCounts[boundary.Category]})
	}

	return Summary{
		ResultCount:       resultCount,
		NumberCount:       len(drawnNumbers),
		Mean:              mean,
		Median:            median,
		StandardDeviation: standardDeviation,
		Frequencies:       frequencies,
	}, nil
}
