package setup

import (
	"fmt"
	"strconv"

	"github.com/stencil-dev/stencil-cli/internal/dotstencil"
	"github.com/stencil-dev/stencil-cli/internal/prompt"
)

// Questions returns the store questions in the order they are asked.
// Defaults come from prior, which may be nil.
func Questions(prior *dotstencil.File) []prompt.Question {
	port := dotstencil.DefaultPort
	if p, ok := prior.Port(); ok {
		port = p
	}

	return []prompt.Question{
		{
			Key:      dotstencil.KeyStoreURL,
			Message:  "What is the URL of your store's home page?",
			Default:  prior.StoreURL(),
			Validate: ValidateStoreURL,
		},
		{
			Key:      dotstencil.KeyPort,
			Message:  "What port would you like to run the server on?",
			Default:  strconv.Itoa(port),
			Validate: ValidatePort,
		},
		{
			Key:      dotstencil.KeyUsername,
			Message:  "What is your Stencil Username?",
			Default:  prior.Username(),
			Validate: ValidateUsername,
		},
		{
			Key:      dotstencil.KeyToken,
			Message:  "What is your Stencil Token?",
			Default:  prior.Token(),
			Secret:   true,
			Validate: ValidateToken,
		},
	}
}

// AnswerValues converts prompt answers into .stencil values. The port is
// stored as a number. Questions without an answer are left out so the saved
// value survives the merge.
func AnswerValues(answers prompt.Answers) (map[string]any, error) {
	values := make(map[string]any, len(answers)+1)
	for key, val := range answers {
		if key != dotstencil.KeyPort {
			values[key] = val
			continue
		}
		port, err := parsePort(val)
		if err != nil {
			return nil, fmt.Errorf("port %q: %w", val, err)
		}
		values[key] = port
	}
	return values, nil
}
