package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
)

// ErrInteractiveDisabled is returned when prompts are disabled via GIT_TRUNK_NO_INTERACTIVE
var ErrInteractiveDisabled = errors.New("interactive prompts are disabled (GIT_TRUNK_NO_INTERACTIVE is set)")

// ErrPromptCanceled is returned when the user interrupts a prompt
var ErrPromptCanceled = errors.New("canceled")

// InteractiveAllowed reports whether prompts may be shown
func InteractiveAllowed() bool {
	return os.Getenv("GIT_TRUNK_NO_INTERACTIVE") == "" && IsTTY()
}

// IsTTY returns true if both stdin and stdout are terminals
func IsTTY() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

// PromptSelect asks the user to pick one of options
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	if os.Getenv("GIT_TRUNK_NO_INTERACTIVE") != "" {
		return "", ErrInteractiveDisabled
	}
	if len(options) == 0 {
		return "", fmt.Errorf("nothing to select for %q", message)
	}

	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	for _, option := range options {
		if option == defaultOption {
			prompt.Default = defaultOption
			break
		}
	}

	var answer string
	if err := survey.AskOne(prompt, &answer); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrPromptCanceled
		}
		return "", err
	}
	return answer, nil
}
