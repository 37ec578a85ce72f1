package main

import (
	"fmt"
	"strings"
)

var commands = []string{
	"analyze",
	"classify",
	"indices",
	"import-doc",
	"ls-doc",
	"ls-labels",
	"doc",
	"query",
	"serve",
	"version",
	"bash",
	"help",
}

// completeCommand handles the autocompletion requests triggered by the bash completion script.
func completeCommand(args []string, ui UI) error {
	completions := getCompletions(args)
	for _, c := range completions {
		_, _ = fmt.Fprintln(ui.Out, c)
	}
	return nil
}

func getCompletions(args []string) []string {
	if len(args) < 1 {
		return nil
	}

	// args[0] is "cohmetrix" (binary name from COMP_WORDS[0])
	commandIndex := 1
	cursorIndex := len(args) - 1

	switch {
	case cursorIndex == commandIndex:
		return matchCommands(args[cursorIndex])
	case cursorIndex == commandIndex+1 && args[commandIndex] == "help":
		return matchCommands(args[cursorIndex])
	}

	return nil
}

func matchCommands(prefix string) []string {
	var completions []string
	for _, c := range commands {
		if strings.HasPrefix(c, prefix) {
			completions = append(completions, c)
		}
	}
	return completions
}
