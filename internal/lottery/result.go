package lottery

import (
	"maps"
	"slices"
)

// Entry pairs a generated number with its category.
type Entry struct {
	Number   int      `yaml:"number"`
	Category Category `yaml:"category"`
}

// Result accumulates the numbers produced by a single generation request.
// It is read-only once finalized as a success or a failure. The zero value
// expects no numbers and accepts none; use NewResult.
type Result struct {
	numbers       map[int]Category
	requiredCount int
	finalized     bool
	succeeded     bool
	errorMessage  string
}

// NewResult creates an empty result that expects requiredCount numbers.
func NewResult(requiredCount int) *Result {
	return &Result{
		numbers:       make(map[int]Category, max(requiredCount, 0)),
		requiredCount: requiredCount,
	}
}

// TrySaveNumber stores number with its category. It refuses duplicates, CategoryUnknown,
// inserts beyond the required count, and any insert after the result is finalized.
func (result *Result) TrySaveNumber(number int, category Category) bool {
	if result.finalized || category == CategoryUnknown {
		return false
	}
	if len(result.numbers) >= result.requiredCount || result.isNumberAlreadyStored(number) {
		return false
	}
	result.numbers[number] = category
	return true
}

// HasRequiredCount reports whether the required count of numbers has been stored.
func (result *Result) HasRequiredCount() bool {
	return len(result.numbers) == result.requiredCount
}

// AreNumbersValid reports whether the stored numbers match the required count and are distinct.
func (result *Result) AreNumbersValid() bool {
	if len(result.numbers) != result.requiredCount {
		return false
	}
	distinctNumbers := make(map[int]struct{}, len(result.numbers))
	for _, number := range result.Numbers() {
		distinctNumbers[number] = struct{}{}
	}
	return len(distinctNumbers) == result.requiredCount
}

// Numbers returns the stored numbers in ascending order.
func (result *Result) Numbers() []int {
	return slices.Sorted(maps.Keys(result.numbers))
}

// Entries returns the stored numbers with their categories in ascending number order.
func (result *Result) Entries() []Entry {
	entries := make([]Entry, 0, len(result.numbers))
	for _, number := range result.Numbers() {
		entries = append(entries, Entry{Number: number, Category: result.numbers[number]})
	}
	return entries
}

// CategoryOf returns the category stored for number.
func (result *Result) CategoryOf(number int) (Category, bool) {
	category, exists := result.numbers[number]
	return category, exists
}

// Count reports how many numbers are stored.
func (result *Result) Count() int {
	return len(result.numbers)
}

// RequiredCount reports the target count of numbers.
func (result *Result) RequiredCount() int {
	return result.requiredCount
}

// IsSuccess reports whether generation completed successfully.
func (result *Result) IsSuccess() bool {
	return result.succeeded
}

// ErrorMessage describes the failure recorded for the result, if any.
func (result *Result) ErrorMessage() string {
	return result.errorMessage
}

func (result *Result) markSucceeded() {
	result.finalized = true
	result.succeeded = true
	result.errorMessage = ""
}

func (result *Result) markFailed(message string) {
	result.finalized = true
	result.succeeded = false
	result.errorMessage = message
}

func (result *Result) isNumberAlreadyStored(number int) bool {
	_, exists := result.numbers[number]
	return exists
}
