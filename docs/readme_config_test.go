package docs_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/lotto/cmd/cli"
	"github.com/temirov/lotto/internal/lottery"
)

const (
	readmeFileNameConstant           = "README.md"
	yamlFenceStartConstant           = "```yaml"
	yamlFenceEndConstant             = "```"
	configHeaderMarkerConstant       = "# config.yaml"
	readmeSnippetFileNameConstant    = "config.yaml"
	parentDirectoryReferenceConstant = ".."
	missingHeaderMessageConstant     = "README example missing config header marker"
	missingStartFenceMessageConstant = "README example missing yaml fence start"
	missingEndFenceMessageConstant   = "README example missing yaml fence end"
)

type readmeApplicationConfiguration struct {
	RequiredNumberOfLotteryNumbers int `yaml:"requiredNumberOfLotteryNumbers"`
	Tools                          struct {
		Stats struct {
			Draws int `yaml:"draws"`
		} `yaml:"stats"`
	} `yaml:"tools"`
}

type steppingRandomSource struct {
	next int
}

func (source *steppingRandomSource) IntN(upperBound int) int {
	value := source.next % upperBound
	source.next++
	return value
}

func readReadmeConfigurationSnippet(testInstance *testing.T) string {
	testInstance.Helper()

	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	contentBytes, readError := os.ReadFile(filepath.Join(workingDirectory, parentDirectoryReferenceConstant, readmeFileNameConstant))
	require.NoError(testInstance, readError)

	contentText := string(contentBytes)
	headerIndex := strings.Index(contentText, configHeaderMarkerConstant)
	require.NotEqual(testInstance, -1, headerIndex, missingHeaderMessageConstant)

	fenceStartIndex := strings.LastIndex(contentText[:headerIndex], yamlFenceStartConstant)
	require.NotEqual(testInstance, -1, fenceStartIndex, missingStartFenceMessageConstant)

	fenceEndRelativeIndex := strings.Index(contentText[headerIndex:], yamlFenceEndConstant)
	require.NotEqual(testInstance, -1, fenceEndRelativeIndex, missingEndFenceMessageConstant)

	return strings.TrimSpace(contentText[fenceStartIndex+len(yamlFenceStartConstant) : headerIndex+fenceEndRelativeIndex])
}

func TestReadmeConfigurationDrivesGeneration(testInstance *testing.T) {
	snippetContent := readReadmeConfigurationSnippet(testInstance)

	var readmeConfiguration readmeApplicationConfiguration
	require.NoError(testInstance, yaml.Unmarshal([]byte(snippetContent), &readmeConfiguration))
	require.Positive(testInstance, readmeConfiguration.RequiredNumberOfLotteryNumbers)
	require.Positive(testInstance, readmeConfiguration.Tools.Stats.Draws)

	configurationPath := filepath.Join(testInstance.TempDir(), readmeSnippetFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(snippetContent), 0o600))

	application, applicationError := cli.NewApplicationWithDependencies(cli.ApplicationDependencies{
		RandomSourceProvider: func() lottery.RandomSource {
			return &steppingRandomSource{}
		},
		TerminalDetector: func() bool {
			return false
		},
		SearchPaths: []string{testInstance.TempDir()},
	})
	require.NoError(testInstance, applicationError)

	standardOutput := &bytes.Buffer{}
	standardError := &bytes.Buffer{}
	application.SetStreams(strings.NewReader(""), standardOutput, standardError)
	application.SetArguments([]string{"--config", configurationPath, "generate"})

	require.NoError(testInstance, application.Execute())
	require.Empty(testInstance, standardError.String())

	printedLines := strings.Split(strings.TrimSpace(standardOutput.String()), "\n")
	require.Len(testInstance, printedLines, readmeConfiguration.RequiredNumberOfLotteryNumbers)
}
