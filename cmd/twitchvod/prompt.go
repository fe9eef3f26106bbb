package main

import (
	"github.com/AlecAivazis/survey/v2"
)

// prompter asks the user to pick one of labels and returns its index.
type prompter interface {
	Select(message string, labels, descriptions []string, def int) (int, error)
}

type surveyPrompt struct{}

func (surveyPrompt) Select(message string, labels, descriptions []string, def int) (int, error) {
	q := &survey.Select{
		Message: message,
		Options: labels,
		Default: labels[def],
		Description: func(_ string, index int) string {
			return descriptions[index]
		},
	}

	var idx int
	if err := survey.AskOne(q, &idx); err != nil {
		return 0, err
	}
	return idx, nil
}
