package lottery

const (
	categoryUnknownNameConstant = "unknown"
	categoryGreyNameConstant    = "grey"
	categoryBlueNameConstant    = "blue"
	categoryPinkNameConstant    = "pink"
	categoryGreenNameConstant   = "green"
	categoryYellowNameConstant  = "yellow"
)

// Category names a contiguous sub-range of lottery numbers.
type Category string

// Supported categories. CategoryUnknown marks numbers outside every sub-range.
const (
	CategoryUnknown Category = Category(categoryUnknownNameConstant)
	CategoryGrey    Category = Category(categoryGreyNameConstant)
	CategoryBlue    Category = Category(categoryBlueNameConstant)
	CategoryPink    Category = Category(categoryPinkNameConstant)
	CategoryGreen   Category = Category(categoryGreenNameConstant)
	CategoryYellow  Category = Category(categoryYellowNameConstant)
)

// CategoryBoundary pairs a category with the inclusive upper bound of its sub-range.
type CategoryBoundary struct {
	Category   Category
	UpperBound int
}

// categoryBoundaries is ordered; each lower bound is the previous upper bound plus one.
var categoryBoundaries = []CategoryBoundary{
	{Category: CategoryUnknown, UpperBound: 0},
	{Category: CategoryGrey, UpperBound: 9},
	{Category: CategoryBlue, UpperBound: 19},
	{Category: CategoryPink, UpperBound: 29},
	{Category: CategoryGreen, UpperBound: 39},
	{Category: CategoryYellow, UpperBound: 49},
}

// Categories returns a copy of the ordered category table, starting with the unknown sentinel.
func Categories() []CategoryBoundary {
	duplicatedBoundaries := make([]CategoryBoundary, len(categoryBoundaries))
	copy(duplicatedBoundaries, categoryBoundaries)
	return duplicatedBoundaries
}

// MinimumNumber reports the smallest number a generator may draw.
func MinimumNumber() int {
	return unknownUpperBound(categoryBoundaries) + 1
}

// MaximumNumber reports the largest category upper bound. Draws exclude it.
func MaximumNumber() int {
	return maximumUpperBound(categoryBoundaries)
}

// DetermineCategory returns the category whose sub-range contains number, or CategoryUnknown.
func DetermineCategory(number int) Category {
	return determineCategory(categoryBoundaries, number)
}

// String returns the category name.
func (category Category) String() string {
	return string(category)
}

func determineCategory(boundaries []CategoryBoundary, number int) Category {
	lowerBound := 0
	for _, boundary := range boundaries {
		if number >= lowerBound && number <= boundary.UpperBound {
			return boundary.Category
		}
		lowerBound = boundary.UpperBound + 1
	}
	return CategoryUnknown
}

func unknownUpperBound(boundaries []CategoryBoundary) int {
	for _, boundary := range boundaries {
		if boundary.Category == CategoryUnknown {
			return boundary.UpperBound
		}
	}
	return 0
}

func maximumUpperBound(boundaries []CategoryBoundary) int {
	maximum := 0
	for _, boundary := range boundaries {
		if boundary.UpperBound > maximum {
			maximum = boundary.UpperBound
		}
	}
	return maximum
}
