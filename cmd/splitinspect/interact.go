package main

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

// ErrUserAborted is returned by Interact if the user cancels the form.
var ErrUserAborted = errors.New("user aborted")

// Question to ask the user about the value of a flag.
type Question struct {
	Title string
	Flag  *flag.Flag

	// Values suggested to the user, and their optional descriptions.
	Values             []string
	ValuesDescriptions []string

	// CustomValues allows the user to enter a value not listed in Values.
	CustomValues bool

	// ValidateFn is called after the flag is set with the user's value.
	ValidateFn func() error
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// Interact asks the user for the values of the flags in the questions, and sets them.
func Interact(command string, questions []Question) error {
	values := make([]string, len(questions))
	fields := make([]huh.Field, 0, len(questions))
	for i, q := range questions {
		values[i] = q.Flag.Value.String()
		if values[i] == "" && len(q.Values) > 0 {
			values[i] = q.Values[0]
		}
		validate := func(value string) error {
			if err := q.Flag.Value.Set(value); err != nil {
				return err
			}
			if q.ValidateFn != nil {
				return q.ValidateFn()
			}
			return nil
		}
		if !q.CustomValues {
			options := make([]huh.Option[string], len(q.Values))
			for j, value := range q.Values {
				label := value
				if j < len(q.ValuesDescriptions) && q.ValuesDescriptions[j] != "" {
					label = fmt.Sprintf("%s: %s", value, q.ValuesDescriptions[j])
				}
				options[j] = huh.NewOption(label, value)
			}
			fields = append(fields, huh.NewSelect[string]().
				Title(q.Title).
				Description(q.Flag.Usage).
				Options(options...).
				Value(&values[i]).
				Validate(validate))
			continue
		}
		fields = append(fields, huh.NewInput().
			Title(q.Title).
			Description(q.Flag.Usage).
			Suggestions(q.Values).
			Value(&values[i]).
			Validate(validate))
	}

	form := huh.NewForm(huh.NewGroup(fields...).
		Title(headerStyle.Render(command)).
		Description("Describe the split to inspect (ctrl+c to abort)"))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrUserAborted
		}
		return errors.Wrap(err, "interactive form failed")
	}

	// Validation may have been skipped for fields the user didn't touch.
	for i, q := range questions {
		if err := q.Flag.Value.Set(values[i]); err != nil {
			return errors.Wrapf(err, "invalid value %q for -%s", values[i], q.Flag.Name)
		}
		if q.ValidateFn != nil {
			if err := q.ValidateFn(); err != nil {
				return errors.WithMessagef(err, "invalid value %q for -%s", values[i], q.Flag.Name)
			}
		}
	}
	return nil
}
