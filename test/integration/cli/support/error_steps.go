package support

import (
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// theErrorShouldMentionUnknownSetting verifies an unknown setting error.
func (testCtx *TestContext) theErrorShouldMentionUnknownSetting() error {
	return testCtx.theErrorShouldMention("unknown setting")
}

// theErrorShouldMentionUnsupportedPreset verifies an unsupported preset error.
func (testCtx *TestContext) theErrorShouldMentionUnsupportedPreset() error {
	return testCtx.theErrorShouldMention("unsupported preset")
}

// theErrorShouldMentionUnknownSymbology verifies a symbology parse error.
func (testCtx *TestContext) theErrorShouldMentionUnknownSymbology() error {
	return testCtx.theErrorShouldMention("symbology")
}

// theErrorShouldSuggestAvailableCommands verifies command suggestion error.
func (testCtx *TestContext) theErrorShouldSuggestAvailableCommands() error {
	suggestionIndicators := []string{"available", "commands", "help", "usage"}
	for _, indicator := range suggestionIndicators {
		if strings.Contains(strings.ToLower(testCtx.LastOutput), indicator) {
			return nil
		}
	}
	return fmt.Errorf("error does not suggest available commands: %s", testCtx.LastOutput)
}

// theErrorShouldMentionUnknownFlag verifies unknown flag error.
func (testCtx *TestContext) theErrorShouldMentionUnknownFlag() error {
	return testCtx.theErrorShouldMention("unknown flag")
}

// theOutputShouldContainVersionInformation verifies version output.
func (testCtx *TestContext) theOutputShouldContainVersionInformation() error {
	for _, indicator := range []string{"scandefaults version", "Commit:", "Date:"} {
		if !strings.Contains(testCtx.LastOutput, indicator) {
			return fmt.Errorf("output does not contain version information %q: %s", indicator, testCtx.LastOutput)
		}
	}
	return nil
}

// theErrorShouldIndicateInvalidPort verifies invalid port error.
func (testCtx *TestContext) theErrorShouldIndicateInvalidPort() error {
	return testCtx.theErrorShouldMention("invalid port")
}

// theErrorShouldMentionInvalidFormat verifies invalid format mention.
func (testCtx *TestContext) theErrorShouldMentionInvalidFormat() error {
	return testCtx.theErrorShouldMention("invalid output format")
}

// RegisterErrorSteps registers all error handling step definitions.
func (testCtx *TestContext) RegisterErrorSteps(sc *godog.ScenarioContext) {
	// Lookup errors
	sc.Step(`^the error should mention an unknown setting$`, testCtx.theErrorShouldMentionUnknownSetting)
	sc.Step(`^the error should mention an unsupported preset$`, testCtx.theErrorShouldMentionUnsupportedPreset)
	sc.Step(`^the error should mention an unknown symbology$`, testCtx.theErrorShouldMentionUnknownSymbology)

	// Usage errors
	sc.Step(`^the error should suggest available commands$`, testCtx.theErrorShouldSuggestAvailableCommands)
	sc.Step(`^the error should mention an unknown flag$`, testCtx.theErrorShouldMentionUnknownFlag)
	sc.Step(`^the error should indicate invalid port$`, testCtx.theErrorShouldIndicateInvalidPort)
	sc.Step(`^the error should mention an invalid format$`, testCtx.theErrorShouldMentionInvalidFormat)

	// Version
	sc.Step(`^the output should contain version information$`, testCtx.theOutputShouldContainVersionInformation)
}
