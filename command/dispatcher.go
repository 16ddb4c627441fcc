package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/pkg/errors"
	"github.com/vilic/clime-slack/slack"
)

// HandlerFunc handles one slash command invocation. The returned value may
// be a *slack.Message (or any value slack.IsMessage recognizes) to produce
// a structured chat message; any other value is stringified and relayed to
// the command issuer as plain text.
type HandlerFunc func(context.Context, slack.SlashCommand) (interface{}, error)

// Dispatcher is an interface for components that can route slash commands
// to registered handlers and serialize the handlers' results into Slack's
// expected JSON message format. Implementations of this interface are
// transport-agnostic.
type Dispatcher interface {
	// Register associates a handler with a command name. The leading slash
	// is optional. Register is not safe for use concurrently with Dispatch.
	Register(name string, handle HandlerFunc)
	// Dispatch handles a slash command and returns the JSON response body
	// to be delivered back to Slack.
	Dispatch(context.Context, slack.SlashCommand) ([]byte, error)
}

type dispatcher struct {
	handlers         map[string]HandlerFunc
	plainMsgTemplate *template.Template
}

// NewDispatcher returns an implementation of the Dispatcher interface for
// routing slash commands to registered handlers.
func NewDispatcher() (Dispatcher, error) {
	plainMsgTemplate, err :=
		template.New("template").Funcs(sprig.TxtFuncMap()).Parse(plainMsgTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing response template")
	}
	return &dispatcher{
		handlers:         map[string]HandlerFunc{},
		plainMsgTemplate: plainMsgTemplate,
	}, nil
}

func (d *dispatcher) Register(name string, handle HandlerFunc) {
	d.handlers[strings.TrimPrefix(name, "/")] = handle
}

func (d *dispatcher) Dispatch(
	ctx context.Context,
	command slack.SlashCommand,
) ([]byte, error) {
	handle, ok := d.handlers[strings.TrimPrefix(command.Command, "/")]
	if !ok {
		return d.renderPlainMessage(
			fmt.Sprintf("%s is not a recognized command", command.Command),
		)
	}
	result, err := handle(ctx, command)
	if err != nil {
		// Mention format errors describe a problem with what the command
		// issuer typed, so they go back to the issuer instead of failing the
		// invocation.
		var formatErr *slack.MentionFormatError
		if errors.As(err, &formatErr) {
			return d.renderPlainMessage(formatErr.Error())
		}
		return nil, errors.Wrapf(
			err,
			"error handling command %q",
			command.Command,
		)
	}
	if slack.IsMessage(result) {
		response, err := json.Marshal(result)
		return response, errors.Wrap(err, "error marshaling response message")
	}
	if result == nil {
		return d.renderPlainMessage("")
	}
	return d.renderPlainMessage(fmt.Sprint(result))
}

func (d *dispatcher) renderPlainMessage(text string) ([]byte, error) {
	buffer := &bytes.Buffer{}
	err := d.plainMsgTemplate.Execute(buffer, text)
	return buffer.Bytes(), errors.Wrap(err, "error rendering response")
}

var plainMsgTemplate = `{
  "response_type": "ephemeral",
  "text": {{ quote . }},
  "mrkdwn": false
}`
