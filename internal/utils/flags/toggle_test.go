package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestAddToggleFlagParsesValues(t *testing.T) {
	testCases := []struct {
		name            string
		arguments       []string
		expectedValue   bool
		expectedChanged bool
	}{
		{name: "DefaultFalse", arguments: []string{}, expectedValue: false, expectedChanged: false},
		{name: "ImplicitTrue", arguments: []string{"--pause"}, expectedValue: true, expectedChanged: true},
		{name: "ExplicitYes", arguments: []string{"--pause=yes"}, expectedValue: true, expectedChanged: true},
		{name: "ExplicitTrueUppercase", arguments: []string{"--pause=TRUE"}, expectedValue: true, expectedChanged: true},
		{name: "ExplicitNo", arguments: []string{"--pause=no"}, expectedValue: false, expectedChanged: true},
		{name: "ExplicitOff", arguments: []string{"--pause=off"}, expectedValue: false, expectedChanged: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			command := &cobra.Command{}

			var toggleValue bool
			AddToggleFlag(command.Flags(), &toggleValue, "pause", false, "Wait for Return")

			require.NoError(t, command.ParseFlags(testCase.arguments))
			require.Equal(t, testCase.expectedValue, toggleValue)

			flag := command.Flags().Lookup("pause")
			require.NotNil(t, flag)
			require.Equal(t, testCase.expectedChanged, flag.Changed)
			require.Equal(t, "`<yes|NO>` Wait for Return", flag.Usage)
		})
	}
}

func TestAddToggleFlagRejectsInvalidValues(t *testing.T) {
	command := &cobra.Command{}

	var toggleValue bool
	AddToggleFlag(command.Flags(), &toggleValue, "pause", false, "Wait for Return")

	require.Error(t, command.ParseFlags([]string{"--pause=maybe"}))
	require.False(t, toggleValue)
	require.False(t, command.Flags().Lookup("pause").Changed)
}
