package ui

import (
	"github.com/AlecAivazis/survey/v2"
)

// PromptYesNo prompts the user for a yes/no answer
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	var result bool
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// Confirm asks a yes/no question that defaults to no. With assume-yes set it
// answers yes; in non-interactive mode it answers no without prompting.
func (u *UI) Confirm(prompt string) (bool, error) {
	if u.assumeYes {
		u.Infof("%s yes (assumed)", prompt)
		return true, nil
	}
	if u.nonInteractive {
		u.Warningf("%s no (not running interactively, pass --yes to confirm)", prompt)
		return false, nil
	}
	return u.PromptYesNo(prompt, false)
}
