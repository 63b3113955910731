package support

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/MeKo-Tech/scandefaults/internal/testutil"
)

// cliName is the binary name used in feature files.
const cliName = "scandefaults"

// hasEnvVar checks if an environment variable is already set in the test context.
func (testCtx *TestContext) hasEnvVar(name string) bool {
	prefix := name + "="
	for _, envVar := range testCtx.EnvVars {
		if strings.HasPrefix(envVar, prefix) {
			return true
		}
	}
	return false
}

func (testCtx *TestContext) iRunCommand(command string) error {
	command = testCtx.substituteCommandVariables(command)

	testCtx.LastCommand = command
	testCtx.LastStartTime = time.Now()

	parts := strings.Fields(command)
	if len(parts) == 0 {
		return errors.New("empty command")
	}
	if parts[0] == cliName {
		if bin := os.Getenv("SCANDEFAULTS_BIN"); bin != "" {
			parts[0] = bin
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...) //nolint:gosec // G204: commands come from feature files
	cmd.Dir = testCtx.WorkingDir
	cmd.Env = append(os.Environ(), testCtx.EnvVars...)

	output, err := cmd.CombinedOutput()
	testCtx.LastOutput = string(output)
	testCtx.LastError = err
	testCtx.LastDuration = time.Since(testCtx.LastStartTime)

	if err != nil {
		exitError := &exec.ExitError{}
		if errors.As(err, &exitError) {
			testCtx.LastExitCode = exitError.ExitCode()
		} else {
			testCtx.LastExitCode = -1
		}
	} else {
		testCtx.LastExitCode = 0
	}

	return nil
}

// theCommandShouldSucceed verifies the command succeeded.
func (testCtx *TestContext) theCommandShouldSucceed() error {
	if testCtx.LastExitCode != 0 {
		return fmt.Errorf("command failed with exit code %d: %w\nOutput: %s",
			testCtx.LastExitCode, testCtx.LastError, testCtx.LastOutput)
	}
	return nil
}

// theCommandShouldFail verifies the command failed.
func (testCtx *TestContext) theCommandShouldFail() error {
	if testCtx.LastExitCode == 0 {
		return fmt.Errorf("command succeeded when it should have failed\nOutput: %s", testCtx.LastOutput)
	}
	return nil
}

// theOutputShouldContain verifies the output contains specific text.
func (testCtx *TestContext) theOutputShouldContain(expectedText string) error {
	if !strings.Contains(testCtx.LastOutput, expectedText) {
		return fmt.Errorf("output does not contain '%s'\nActual output: %s", expectedText, testCtx.LastOutput)
	}
	return nil
}

func (testCtx *TestContext) theOutputShouldNotContain(text string) error {
	if strings.Contains(testCtx.LastOutput, text) {
		return fmt.Errorf("output unexpectedly contains '%s'\nActual output: %s", text, testCtx.LastOutput)
	}
	return nil
}

// theOutputShouldBe compares the trimmed output.
func (testCtx *TestContext) theOutputShouldBe(expected string) error {
	if got := strings.TrimSpace(testCtx.LastOutput); got != expected {
		return fmt.Errorf("expected output %q, got %q", expected, got)
	}
	return nil
}

// jsonPart returns the output from the first '{' or '['.
func jsonPart(output string) (string, error) {
	output = strings.TrimSpace(output)
	idx := strings.IndexAny(output, "{[")
	if idx == -1 {
		return "", fmt.Errorf("no JSON found in output: %s", output)
	}
	return output[idx:], nil
}

// theOutputShouldBeValidJSON verifies the output is valid JSON.
func (testCtx *TestContext) theOutputShouldBeValidJSON() error {
	part, err := jsonPart(testCtx.LastOutput)
	if err != nil {
		return err
	}
	var js json.RawMessage
	if err := json.Unmarshal([]byte(part), &js); err != nil {
		return fmt.Errorf("output is not valid JSON: %w\nJSON part: %s", err, part)
	}
	return nil
}

func (testCtx *TestContext) outputJSON() (any, error) {
	part, err := jsonPart(testCtx.LastOutput)
	if err != nil {
		return nil, err
	}
	var data any
	if err := json.Unmarshal([]byte(part), &data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return data, nil
}

// theJSONShouldContain verifies JSON contains a specific field.
func (testCtx *TestContext) theJSONShouldContain(field string) error {
	data, err := testCtx.outputJSON()
	if err != nil {
		return err
	}
	_, err = lookupJSONPath(data, field)
	return err
}

func (testCtx *TestContext) theJSONFieldShouldBe(field, expected string) error {
	data, err := testCtx.outputJSON()
	if err != nil {
		return err
	}
	return checkJSONField(data, field, expected)
}

// lookupJSONPath walks a dotted path; numeric parts index arrays.
func lookupJSONPath(data any, path string) (any, error) {
	current := data
	parts := strings.Split(path, ".")
	for i, part := range parts {
		switch node := current.(type) {
		case map[string]any:
			val, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in JSON", strings.Join(parts[:i+1], "."))
			}
			current = val
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("invalid index '%s' at '%s'", part, strings.Join(parts[:i], "."))
			}
			current = node[idx]
		default:
			return nil, fmt.Errorf("cannot navigate deeper into non-object field '%s'", strings.Join(parts[:i], "."))
		}
	}
	return current, nil
}

// checkJSONField compares a field against its textual form. Strings compare
// raw, everything else as compact JSON.
func checkJSONField(data any, field, expected string) error {
	val, err := lookupJSONPath(data, field)
	if err != nil {
		return err
	}
	got, ok := val.(string)
	if !ok {
		raw, err := json.Marshal(val)
		if err != nil {
			return err
		}
		got = string(raw)
	}
	if got != expected {
		return fmt.Errorf("field '%s' is %s, expected %s", field, got, expected)
	}
	return nil
}

// theErrorShouldMention verifies the error message contains specific text.
func (testCtx *TestContext) theErrorShouldMention(errorText string) error {
	if testCtx.LastError == nil && testCtx.LastExitCode == 0 {
		return fmt.Errorf("no error occurred, but expected error containing '%s'", errorText)
	}

	fullErrorText := testCtx.LastOutput
	if testCtx.LastError != nil {
		fullErrorText += " " + testCtx.LastError.Error()
	}

	if !strings.Contains(strings.ToLower(fullErrorText), strings.ToLower(errorText)) {
		return fmt.Errorf("error does not contain '%s'\nActual error: %s", errorText, fullErrorText)
	}

	return nil
}

func (testCtx *TestContext) theEnvironmentVariableIsSetTo(name, value string) error {
	if testCtx.hasEnvVar(name) {
		return fmt.Errorf("environment variable %s already set in this scenario", name)
	}
	testCtx.AddEnvVar(name, value)
	return nil
}

// theFileShouldExist checks a file relative to the scenario temp dir.
func (testCtx *TestContext) theFileShouldExist(filename string) error {
	path := testCtx.resolvePath(filename)
	if !testutil.FileExists(path) {
		return fmt.Errorf("file %s does not exist", path)
	}
	testCtx.CreatedFiles = append(testCtx.CreatedFiles, path)
	return nil
}

// theDirectoryExists creates a directory relative to the scenario temp dir.
func (testCtx *TestContext) theDirectoryExists(dirname string) error {
	path := testCtx.resolvePath(dirname)
	if err := testutil.EnsureDir(path); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	testCtx.CreatedDirectories = append(testCtx.CreatedDirectories, path)
	return nil
}

func (testCtx *TestContext) theDirectoryShouldExist(dirname string) error {
	path := testCtx.resolvePath(dirname)
	if !testutil.DirExists(path) {
		return fmt.Errorf("directory %s does not exist", path)
	}
	return nil
}

func (testCtx *TestContext) theFileShouldContain(filename, expectedContent string) error {
	path := testCtx.resolvePath(filename)
	content, err := os.ReadFile(path) //nolint:gosec // G304: test file under temp dir
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if !strings.Contains(string(content), expectedContent) {
		return fmt.Errorf("file %s does not contain '%s'", path, expectedContent)
	}
	return nil
}

func (testCtx *TestContext) resolvePath(filename string) string {
	filename = testCtx.substituteCommandVariables(filename)
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(testCtx.TempDir, filename)
}

// substituteCommandVariables replaces variables in command strings.
func (testCtx *TestContext) substituteCommandVariables(command string) string {
	return strings.ReplaceAll(command, "{temp_dir}", testCtx.TempDir)
}

func (testCtx *TestContext) theOutputShouldListAvailableSubcommands() error {
	for _, sub := range []string{"get", "list", "dump", "preset", "hash", "serve", "config"} {
		if !strings.Contains(testCtx.LastOutput, sub) {
			return fmt.Errorf("output does not list subcommand '%s'", sub)
		}
	}
	return nil
}

func (testCtx *TestContext) theOutputShouldContainUsageInformation() error {
	return testCtx.theOutputShouldContain("Usage:")
}

// registerCommandSteps registers command execution and result verification steps.
func (testCtx *TestContext) registerCommandSteps(sc *godog.ScenarioContext) {
	sc.Step(`^I run "([^"]*)"$`, testCtx.iRunCommand)
	sc.Step(`^the command should succeed$`, testCtx.theCommandShouldSucceed)
	sc.Step(`^the command should fail$`, testCtx.theCommandShouldFail)
	sc.Step(`^the environment variable "([^"]*)" is set to "([^"]*)"$`, testCtx.theEnvironmentVariableIsSetTo)
}

// registerOutputSteps registers output verification steps.
func (testCtx *TestContext) registerOutputSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the output should contain "([^"]*)"$`, testCtx.theOutputShouldContain)
	sc.Step(`^the output should not contain "([^"]*)"$`, testCtx.theOutputShouldNotContain)
	sc.Step(`^the output should be "([^"]*)"$`, testCtx.theOutputShouldBe)
	sc.Step(`^the output should be valid JSON$`, testCtx.theOutputShouldBeValidJSON)
	sc.Step(`^the JSON should contain "([^"]*)"$`, testCtx.theJSONShouldContain)
	sc.Step(`^the JSON field "([^"]*)" should be "([^"]*)"$`, testCtx.theJSONFieldShouldBe)
}

// registerErrorSteps registers error verification steps.
func (testCtx *TestContext) registerErrorSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the error should mention "([^"]*)"$`, testCtx.theErrorShouldMention)
}

// registerFileSteps registers file verification steps.
func (testCtx *TestContext) registerFileSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the file "([^"]*)" should exist$`, testCtx.theFileShouldExist)
	sc.Step(`^the file "([^"]*)" should contain "([^"]*)"$`, testCtx.theFileShouldContain)
	sc.Step(`^the directory "([^"]*)" exists$`, testCtx.theDirectoryExists)
	sc.Step(`^the directory "([^"]*)" should exist$`, testCtx.theDirectoryShouldExist)
}

// registerHelpSteps registers help and documentation steps.
func (testCtx *TestContext) registerHelpSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the output should contain usage information$`, testCtx.theOutputShouldContainUsageInformation)
	sc.Step(`^the output should list available subcommands$`, testCtx.theOutputShouldListAvailableSubcommands)
}

// RegisterCommonSteps registers all common step definitions.
func (testCtx *TestContext) RegisterCommonSteps(sc *godog.ScenarioContext) {
	testCtx.registerCommandSteps(sc)
	testCtx.registerOutputSteps(sc)
	testCtx.registerErrorSteps(sc)
	testCtx.registerFileSteps(sc)
	testCtx.registerHelpSteps(sc)
}
