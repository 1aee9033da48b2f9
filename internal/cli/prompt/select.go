package prompt

import (
	"github.com/manifoldco/promptui"
)

// SelectOption represents an item in a selection list.
type SelectOption struct {
	Label string
	Value string
}

// Select prompts the user to pick one of options and returns its value.
func Select(label string, options []SelectOption) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: options,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   "> {{ .Label | cyan }}",
			Inactive: "  {{ .Label }}",
			Selected: "* {{ .Label | green }}",
		},
		Size: 10,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return "", wrapError(err)
	}
	return options[idx].Value, nil
}
