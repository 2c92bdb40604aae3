package payments

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// This file contains the logic to test the examples in the README.md file.
//
// To add a new testable example to the README.md file, you need to follow these steps:
//
// 1.  Add the command to the README.md file, wrapped in a ```bash ... ``` block.
// 2.  Add the expected output of the command, wrapped in a ```console ... ``` block.
//
// The test will automatically parse the README.md file, run the commands in a
// temporary folder seeded with the example transaction log, and compare the
// output with the expected output.

// Command holds a command and its expected output.
type Command struct {
	Cmd      string
	Expected string
}

// buildPdh builds the pdh command and returns the path to the executable.
func buildPdh(t *testing.T, tmp string) string {
	t.Helper()

	output := filepath.Join(tmp, "pdh")

	buildCmd := exec.Command("go", "build", "-o", output, "./pdh/")
	if err := buildCmd.Run(); err != nil {
		t.Fatalf("failed to build pdh command: %v", err)
	}

	return output
}

// seedTransactions writes the transaction log the README examples refer to.
func seedTransactions(t *testing.T, tmp string) {
	t.Helper()

	content, err := os.ReadFile("README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}

	// The csv block of the README is the example input.
	re := regexp.MustCompile("(?m)```csv\n((.|\n)*?)```")
	match := re.FindStringSubmatch(string(content))
	if match == nil {
		t.Fatal("README.md has no ```csv block to seed the examples with")
	}

	if err := os.WriteFile(filepath.Join(tmp, "transactions.csv"), []byte(match[1]), 0644); err != nil {
		t.Fatalf("failed to write transactions.csv: %v", err)
	}
}

// parseReadme parses the README.md file to extract commands and their expected outputs.
func parseReadme(t *testing.T) []Command {
	t.Helper()

	content, err := os.ReadFile("README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}

	repo := string(content)
	re := regexp.MustCompile("(?m)```bash\\n(pdh.*?)\n```\\n\\n```console\n((.|\\n)*?)```")
	matches := re.FindAllStringSubmatch(repo, -1)

	var commands []Command
	for _, match := range matches {
		commands = append(commands, Command{Cmd: match[1], Expected: match[2]})
	}

	return commands
}

func TestReadme(t *testing.T) {
	tmp := t.TempDir()
	pdhPath := buildPdh(t, tmp)
	seedTransactions(t, tmp)

	commands := parseReadme(t)
	if len(commands) == 0 {
		t.Fatal("README.md has no testable examples")
	}

	for _, cmd := range commands {
		args := strings.Fields(cmd.Cmd)
		t.Log("Running command:", pdhPath, args)
		command := exec.Command(pdhPath, args[1:]...)
		command.Dir = tmp
		output, err := command.CombinedOutput()
		if err != nil {
			t.Fatalf("failed to run command: %v, output: \n%s", err, output)
		}
		result := string(output)
		// replace tabs with spaces for consistent comparison
		result = strings.ReplaceAll(result, "\t", "        ")

		if cmd.Expected != result {
			t.Errorf("expected output:\n%q\nbut got:\n%q", cmd.Expected, result)
		}
	}
}
