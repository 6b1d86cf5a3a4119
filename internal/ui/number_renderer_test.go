package ui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/lotto/internal/lottery"
	"github.com/temirov/lotto/internal/ui"
)

const (
	testAnsiEscapePrefixConstant = "\x1b["
)

func buildSuccessfulResult(t *testing.T, values []int) *lottery.Result {
	t.Helper()
	position := 0
	generator := lottery.NewGenerator(lottery.GeneratorDependencies{
		RandomSourceProvider: func() lottery.RandomSource {
			return randomSourceFunc(func(int) int {
				value := values[position]
				position++
				return value
			})
		},
	})
	result, generateError := generator.Generate(len(values))
	require.NoError(t, generateError)
	return result
}

type randomSourceFunc func(n int) int

func (source randomSourceFunc) IntN(n int) int {
	return source(n)
}

func TestColorForCategory(t *testing.T) {
	testCases := []struct {
		category      lottery.Category
		expectedColor string
	}{
		{category: lottery.CategoryGrey, expectedColor: "8"},
		{category: lottery.CategoryBlue, expectedColor: "12"},
		{category: lottery.CategoryPink, expectedColor: "13"},
		{category: lottery.CategoryGreen, expectedColor: "10"},
		{category: lottery.CategoryYellow, expectedColor: "11"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.category.String(), func(t *testing.T) {
			color, colorError := ui.ColorForCategory(testCase.category)
			require.NoError(t, colorError)
			require.Equal(t, testCase.expectedColor, string(color))
		})
	}
}

func TestColorForCategoryRejectsUnknown(t *testing.T) {
	_, colorError := ui.ColorForCategory(lottery.CategoryUnknown)
	require.ErrorIs(t, colorError, ui.ErrInvalidCategory)

	_, colorError = ui.ColorForCategory(lottery.Category("purple"))
	require.ErrorIs(t, colorError, ui.ErrInvalidCategory)
}

func TestRenderResultWritesNumbersInOrder(t *testing.T) {
	result := buildSuccessfulResult(t, []int{41, 6, 22})
	output := &bytes.Buffer{}

	renderer := ui.NewNumberRenderer(output, ui.ColorModeNever, ui.OutputFormatConsole)
	require.NoError(t, renderer.RenderResult(result))
	require.Equal(t, "7\n23\n42\n", output.String())
}

func TestRenderResultColorsNumbersWhenForced(t *testing.T) {
	result := buildSuccessfulResult(t, []int{0, 47})
	output := &bytes.Buffer{}

	renderer := ui.NewNumberRenderer(output, ui.ColorModeAlways, ui.OutputFormatConsole)
	require.NoError(t, renderer.RenderResult(result))
	require.Contains(t, output.String(), testAnsiEscapePrefixConstant)
	require.Contains(t, output.String(), "48")
}

func TestRenderResultYAML(t *testing.T) {
	result := buildSuccessfulResult(t, []int{9, 30})
	output := &bytes.Buffer{}

	renderer := ui.NewNumberRenderer(output, ui.ColorModeNever, ui.OutputFormatYAML)
	require.NoError(t, renderer.RenderResult(result))

	var document struct {
		Success bool `yaml:"success"`
		Numbers []struct {
			Number   int    `yaml:"number"`
			Category string `yaml:"category"`
		} `yaml:"numbers"`
	}
	require.NoError(t, yaml.Unmarshal(output.Bytes(), &document))
	require.True(t, document.Success)
	require.Len(t, document.Numbers, 2)
	require.Equal(t, 10, document.Numbers[0].Number)
	require.Equal(t, "blue", document.Numbers[0].Category)
	require.Equal(t, 31, document.Numbers[1].Number)
	require.Equal(t, "green", document.Numbers[1].Category)
}

func TestRenderResultReportsFailure(t *testing.T) {
	output := &bytes.Buffer{}
	renderer := ui.NewNumberRenderer(output, ui.ColorModeNever, ui.OutputFormatConsole)

	require.NoError(t, renderer.RenderResult(lottery.NewResult(6)))
	require.Equal(t, "An error has occurred while generating lottery numbers\nError: No error message found\n", output.String())

	output.Reset()
	require.NoError(t, renderer.RenderFailure("could not determine category for drawn number: 61"))
	require.Contains(t, output.String(), "Error: could not determine category for drawn number: 61")
}

func TestRenderSummary(t *testing.T) {
	summary := lottery.Summary{
		ResultCount:       2,
		NumberCount:       12,
		Mean:              24.5,
		Median:            25,
		StandardDeviation: 13.75,
		Frequencies: []lottery.CategoryFrequency{
			{Category: lottery.CategoryGrey, Count: 3},
			{Category: lottery.CategoryYellow, Count: 9},
		},
	}
	output := &bytes.Buffer{}
	renderer := ui.NewNumberRenderer(output, ui.ColorModeNever, ui.OutputFormatConsole)

	require.NoError(t, renderer.RenderSummary(summary))
	require.Contains(t, output.String(), "12 numbers across 2 draws")
	require.Contains(t, output.String(), "mean               24.50")
	require.Contains(t, output.String(), "yellow             9")
}

func TestParseOutputOptions(t *testing.T) {
	colorMode, colorModeError := ui.ParseColorMode(" ALWAYS ")
	require.NoError(t, colorModeError)
	require.Equal(t, ui.ColorModeAlways, colorMode)

	colorMode, colorModeError = ui.ParseColorMode("")
	require.NoError(t, colorModeError)
	require.Equal(t, ui.ColorModeAuto, colorMode)

	_, colorModeError = ui.ParseColorMode("sometimes")
	require.Error(t, colorModeError)

	outputFormat, formatError := ui.ParseOutputFormat("yaml")
	require.NoError(t, formatError)
	require.Equal(t, ui.OutputFormatYAML, outputFormat)

	_, formatError = ui.ParseOutputFormat("xml")
	require.Error(t, formatError)
}
