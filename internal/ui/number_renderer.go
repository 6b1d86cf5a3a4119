package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/temirov/lotto/internal/lottery"
)

const (
	failureHeadlineConstant          = "An error has occurred while generating lottery numbers"
	failureDetailTemplateConstant    = "Error: %s"
	missingErrorMessageConstant      = "No error message found"
	summaryHeadlineTemplateConstant  = "%d numbers across %d draws"
	summaryStatisticTemplateConstant = "%-18s %.2f"
	summaryFrequencyTemplateConstant = "%-18s %d"
	summaryMeanLabelConstant         = "mean"
	summaryMedianLabelConstant       = "median"
	summaryDeviationLabelConstant    = "standard deviation"
	yamlIndentationConstant          = 2
	yamlEncodeErrorTemplateConstant  = "unable to encode result: %w"
	outputWriteErrorTemplateConstant = "unable to write output: %w"
)

// NumberRenderer writes generated numbers and draw summaries to a writer.
type NumberRenderer struct {
	writer        io.Writer
	styleRenderer *lipgloss.Renderer
	format        OutputFormat
}

// NewNumberRenderer constructs a renderer for the provided writer, color mode, and format.
// In ColorModeAuto the color profile is detected from the innermost wrapped writer.
func NewNumberRenderer(writer io.Writer, colorMode ColorMode, format OutputFormat) *NumberRenderer {
	styleRenderer := lipgloss.NewRenderer(terminalWriter(writer))
	switch colorMode {
	case ColorModeAlways:
		styleRenderer.SetColorProfile(termenv.ANSI)
	case ColorModeNever:
		styleRenderer.SetColorProfile(termenv.Ascii)
	}
	if len(format) == 0 {
		format = OutputFormatConsole
	}
	return &NumberRenderer{writer: writer, styleRenderer: styleRenderer, format: format}
}

// RenderResult writes each number of a successful result in ascending order, colored by category.
// A failed result is rendered as an error message. Numbers with an undisplayable category
// stop rendering with ErrInvalidCategory before anything is written for that entry.
func (renderer *NumberRenderer) RenderResult(result *lottery.Result) error {
	if result == nil || !result.IsSuccess() {
		errorMessage := ""
		if result != nil {
			errorMessage = result.ErrorMessage()
		}
		return renderer.RenderFailure(errorMessage)
	}

	if renderer.format == OutputFormatYAML {
		return renderer.renderEntriesYAML(result.Entries())
	}
	return renderer.renderEntries(result.Entries())
}

func (renderer *NumberRenderer) renderEntries(entries []lottery.Entry) error {
	for _, entry := range entries {
		color, colorError := ColorForCategory(entry.Category)
		if colorError != nil {
			return colorError
		}
		numberStyle := renderer.styleRenderer.NewStyle().Foreground(color)
		if writeError := renderer.writeLine(numberStyle.Render(strconv.Itoa(entry.Number))); writeError != nil {
			return writeError
		}
	}
	return nil
}

// RenderFailure writes the generation failure message in the error style.
func (renderer *NumberRenderer) RenderFailure(errorMessage string) error {
	if len(errorMessage) == 0 {
		errorMessage = missingErrorMessageConstant
	}
	errorStyle := renderer.styleRenderer.NewStyle().Foreground(lipgloss.Color(errorColorCodeConstant))
	if writeError := renderer.writeLine(errorStyle.Render(failureHeadlineConstant)); writeError != nil {
		return writeError
	}
	return renderer.writeLine(errorStyle.Render(fmt.Sprintf(failureDetailTemplateConstant, errorMessage)))
}

// RenderSummary writes aggregated draw statistics.
func (renderer *NumberRenderer) RenderSummary(summary lottery.Summary) error {
	if renderer.format == OutputFormatYAML {
		return renderer.encodeYAML(summary)
	}

	headlineStyle := renderer.styleRenderer.NewStyle().Bold(true)
	lines := []string{
		headlineStyle.Render(fmt.Sprintf(summaryHeadlineTemplateConstant, summary.NumberCount, summary.ResultCount)),
		fmt.Sprintf(summaryStatisticTemplateConstant, summaryMeanLabelConstant, summary.Mean),
		fmt.Sprintf(summaryStatisticTemplateConstant, summaryMedianLabelConstant, summary.Median),
		fmt.Sprintf(summaryStatisticTemplateConstant, summaryDeviationLabelConstant, summary.StandardDeviation),
	}
	for _, frequency := range summary.Frequencies {
		color, colorError := ColorForCategory(frequency.Category)
		if colorError != nil {
			return colorError
		}
		frequencyStyle := renderer.styleRenderer.NewStyle().Foreground(color)
		lines = append(lines, frequencyStyle.Render(fmt.Sprintf(summaryFrequencyTemplateConstant, frequency.Category, frequency.Count)))
	}

	for _, line := range lines {
		if writeError := renderer.writeLine(line); writeError != nil {
			return writeError
		}
	}
	return nil
}

type unwrappingWriter interface {
	Unwrap() io.Writer
}

// terminalWriter strips writer wrappers so termenv can see the underlying file descriptor.
func terminalWriter(writer io.Writer) io.Writer {
	for {
		wrapper, wraps := writer.(unwrappingWriter)
		if !wraps {
			return writer
		}
		innerWriter := wrapper.Unwrap()
		if innerWriter == nil {
			return writer
		}
		writer = innerWriter
	}
}

type resultDocument struct {
	Success bool            `yaml:"success"`
	Numbers []lottery.Entry `yaml:"numbers"`
}

func (renderer *NumberRenderer) renderEntriesYAML(entries []lottery.Entry) error {
	for _, entry := range entries {
		if _, colorError := ColorForCategory(entry.Category); colorError != nil {
			return colorError
		}
	}
	return renderer.encodeYAML(resultDocument{Success: true, Numbers: entries})
}

func (renderer *NumberRenderer) encodeYAML(document any) error {
	encoder := yaml.NewEncoder(renderer.writer)
	encoder.SetIndent(yamlIndentationConstant)
	if encodeError := encoder.Encode(document); encodeError != nil {
		return fmt.Errorf(yamlEncodeErrorTemplateConstant, encodeError)
	}
	if closeError := encoder.Close(); closeError != nil {
		return fmt.Errorf(yamlEncodeErrorTemplateConstant, closeError)
	}
	return nil
}

func (renderer *NumberRenderer) writeLine(line string) error {
	if _, writeError := fmt.Fprintln(renderer.writer, line); writeError != nil {
		return fmt.Errorf(outputWriteErrorTemplateConstant, writeError)
	}
	return nil
}
