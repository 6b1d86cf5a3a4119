package lottery

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultRequiredCount is the count of numbers produced when none is requested.
	DefaultRequiredCount = 6

	invalidCountMessageConstant                = "required count of numbers must be positive"
	countExceedsRangeMessageConstant           = "required count of numbers exceeds the drawable range"
	categoryRangeMismatchMessageConstant       = "could not determine category for drawn number"
	numbersNotUniqueMessageConstant            = "generated numbers were not each unique"
	randomSourceMissingMessageConstant         = "random source not configured"
	drawOutOfRangeMessageConstant              = "drawn number outside the draw range"
	drawOutOfRangeErrorTemplateConstant        = "%w: %d not in [%d, %d)"
	invalidCountErrorTemplateConstant          = "%w: %d"
	countExceedsRangeErrorTemplateConstant     = "%w: requested %d, available %d"
	categoryRangeMismatchErrorTemplateConstant = "%w: %d"
	numbersNotUniqueErrorTemplateConstant      = "%w: values generated were %s"
	numberJoinSeparatorConstant                = ","
	generationCompletedMessageConstant         = "lottery numbers generated"
	duplicateDrawMessageConstant               = "duplicate draw rejected"
	categoryMismatchLogMessageConstant         = "drawn number has no category"
	drawOutOfRangeLogMessageConstant           = "random source returned a value outside the draw range"
	logFieldRequiredCountConstant              = "required_count"
	logFieldDrawCountConstant                  = "draw_count"
	logFieldNumberConstant                     = "number"
	logFieldNumbersConstant                    = "numbers"
)

// ErrInvalidCount indicates a non-positive required count.
var ErrInvalidCount = errors.New(invalidCountMessageConstant)

// ErrCountExceedsRange indicates more unique numbers were requested than can be drawn.
var ErrCountExceedsRange = errors.New(countExceedsRangeMessageConstant)

// ErrCategoryRangeMismatch indicates a drawn number fell outside every category.
var ErrCategoryRangeMismatch = errors.New(categoryRangeMismatchMessageConstant)

// ErrDrawOutOfRange indicates the random source produced a value outside [0, n).
var ErrDrawOutOfRange = errors.New(drawOutOfRangeMessageConstant)

// ErrNumbersNotUnique indicates the final validation of a result failed.
var ErrNumbersNotUnique = errors.New(numbersNotUniqueMessageConstant)

// ErrRandomSourceNotConfigured indicates the random source provider returned nothing.
var ErrRandomSourceNotConfigured = errors.New(randomSourceMissingMessageConstant)

// GeneratorDependencies enumerates collaborators used by the generator.
type GeneratorDependencies struct {
	RandomSourceProvider RandomSourceProvider
	Logger               *zap.Logger
}

// Generator draws unique lottery numbers and tags them with categories.
type Generator struct {
	randomSourceProvider RandomSourceProvider
	logger               *zap.Logger
	lowerBound           int
	upperBound           int
}

// NewGenerator constructs a Generator, defaulting to a system random source and a no-op logger.
func NewGenerator(dependencies GeneratorDependencies) *Generator {
	randomSourceProvider := dependencies.RandomSourceProvider
	if randomSourceProvider == nil {
		randomSourceProvider = NewSystemRandomSource
	}
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		randomSourceProvider: randomSourceProvider,
		logger:               logger,
		lowerBound:           MinimumNumber(),
		upperBound:           MaximumNumber(),
	}
}

// DrawableCount reports how many distinct numbers the generator can produce.
func (generator *Generator) DrawableCount() int {
	return generator.upperBound - generator.lowerBound
}

// GenerateDefault produces DefaultRequiredCount unique numbers.
func (generator *Generator) GenerateDefault() (*Result, error) {
	return generator.Generate(DefaultRequiredCount)
}

// Generate produces requiredCount unique numbers drawn from [MinimumNumber, MaximumNumber).
//
// A draw outside the range or without a category aborts generation; the returned
// result is marked failed and the error wraps ErrDrawOutOfRange or ErrCategoryRangeMismatch.
func (generator *Generator) Generate(requiredCount int) (*Result, error) {
	if requiredCount <= 0 {
		return nil, fmt.Errorf(invalidCountErrorTemplateConstant, ErrInvalidCount, requiredCount)
	}
	if requiredCount > generator.DrawableCount() {
		return nil, fmt.Errorf(countExceedsRangeErrorTemplateConstant, ErrCountExceedsRange, requiredCount, generator.DrawableCount())
	}

	randomSource := generator.randomSourceProvider()
	if randomSource == nil {
		return nil, ErrRandomSourceNotConfigured
	}

	result := NewResult(requiredCount)
	drawSpan := generator.upperBound - generator.lowerBound
	drawCount := 0
	for !result.HasRequiredCount() {
		drawOffset := randomSource.IntN(drawSpan)
		drawnNumber := generator.lowerBound + drawOffset
		drawCount++

		if drawOffset < 0 || drawOffset >= drawSpan {
			outOfRangeError := fmt.Errorf(drawOutOfRangeErrorTemplateConstant, ErrDrawOutOfRange, drawnNumber, generator.lowerBound, generator.upperBound)
			generator.logger.Error(drawOutOfRangeLogMessageConstant, zap.Int(logFieldNumberConstant, drawnNumber))
			result.markFailed(outOfRangeError.Error())
			return result, outOfRangeError
		}

		category := DetermineCategory(drawnNumber)
		if category == CategoryUnknown {
			mismatchError := fmt.Errorf(categoryRangeMismatchErrorTemplateConstant, ErrCategoryRangeMismatch, drawnNumber)
			generator.logger.Error(categoryMismatchLogMessageConstant, zap.Int(logFieldNumberConstant, drawnNumber))
			result.markFailed(mismatchError.Error())
			return result, mismatchError
		}

		if !result.TrySaveNumber(drawnNumber, category) {
			generator.logger.Debug(duplicateDrawMessageConstant, zap.Int(logFieldNumberConstant, drawnNumber))
		}
	}

	if !result.AreNumbersValid() {
		validationError := fmt.Errorf(numbersNotUniqueErrorTemplateConstant, ErrNumbersNotUnique, joinNumbers(result.Numbers()))
		result.markFailed(validationError.Error())
		return result, validationError
	}

	result.markSucceeded()

	generator.logger.Info(
		generationCompletedMessageConstant,
		zap.Int(logFieldRequiredCountConstant, requiredCount),
		zap.Int(logFieldDrawCountConstant, drawCount),
		zap.Ints(logFieldNumbersConstant, result.Numbers()),
	)

	return result, nil
}

func joinNumbers(numbers []int) string {
	formattedNumbers := make([]string, 0, len(numbers))
	for _, number := range numbers {
		formattedNumbers = append(formattedNumbers, strconv.Itoa(number))
	}
	return strings.Join(formattedNumbers, numberJoinSeparatorConstant)
}
