package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/temirov/lotto/internal/lottery"
)

const (
	darkGrayColorCodeConstant            = "8"
	blueColorCodeConstant                = "12"
	magentaColorCodeConstant             = "13"
	greenColorCodeConstant               = "10"
	yellowColorCodeConstant              = "11"
	errorColorCodeConstant               = "9"
	invalidCategoryMessageConstant       = "category has no display color"
	invalidCategoryErrorTemplateConstant = "%w: %q"
)

// ErrInvalidCategory indicates a category that cannot be displayed, such as the unknown sentinel.
var ErrInvalidCategory = errors.New(invalidCategoryMessageConstant)

var categoryColors = map[lottery.Category]lipgloss.Color{
	lottery.CategoryGrey:   lipgloss.Color(darkGrayColorCodeConstant),
	lottery.CategoryBlue:   lipgloss.Color(blueColorCodeConstant),
	lottery.CategoryPink:   lipgloss.Color(magentaColorCodeConstant),
	lottery.CategoryGreen:  lipgloss.Color(greenColorCodeConstant),
	lottery.CategoryYellow: lipgloss.Color(yellowColorCodeConstant),
}

// ColorForCategory returns the terminal color used to display numbers of the given category.
func ColorForCategory(category lottery.Category) (lipgloss.Color, error) {
	color, exists := categoryColors[category]
	if !exists {
		return "", fmt.Errorf(invalidCategoryErrorTemplateConstant, ErrInvalidCategory, category)
	}
	return color, nil
}
