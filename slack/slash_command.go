package slack

import (
	"net/url"
)

// SlashCommand encapsulates details of a single Slack slash command
// invocation. The string fields are copied verbatim from the form payload
// Slack delivers with the invocation; User and Channel are derived from
// the corresponding ID and name fields at construction time.
//
// nolint: lll
type SlashCommand struct {
	Token          string `json:"token"`          // Deprecated verification token
	TeamID         string `json:"teamID"`         // e.g. T0001
	TeamDomain     string `json:"teamDomain"`     // e.g. example
	EnterpriseID   string `json:"enterpriseID"`   // e.g. E0001
	EnterpriseName string `json:"enterpriseName"` // e.g. Globular%20Construct%20Inc
	ChannelID      string `json:"channelID"`      // e.g. C2147483705
	ChannelName    string `json:"channelName"`    // e.g. test
	UserID         string `json:"userID"`         // e.g. U2147483697
	UserName       string `json:"userName"`       // e.g. Steve
	Command        string `json:"command"`        // e.g. /weather
	Text           string `json:"text"`           // e.g. 94070
	ResponseURL    string `json:"responseURL"`    // e.g. https://hooks.slack.com/commands/1234/5678
	TriggerID      string `json:"triggerID"`      // e.g. 13345224609.738474920.8088930838d88f008e0
	APIAppID       string `json:"apiAppID"`       // e.g. A123456
	// User is the invoking user, derived from UserID and UserName.
	User Mention `json:"user"`
	// Channel is the channel the command was issued from, derived from
	// ChannelID and ChannelName.
	Channel Mention `json:"channel"`
}

// NewSlashCommand builds a SlashCommand from the form values of an inbound
// slash command request. Every recognized field is copied verbatim --
// unrecognized keys are ignored and absent keys yield empty fields, so
// construction always succeeds. The ID and name fields are raw,
// already-unescaped values supplied by Slack, so the derived User and
// Channel mentions are built from them directly rather than parsed from
// escaped mention text.
func NewSlashCommand(values url.Values) SlashCommand {
	command := SlashCommand{
		Token:          values.Get("token"),
		TeamID:         values.Get("team_id"),
		TeamDomain:     values.Get("team_domain"),
		EnterpriseID:   values.Get("enterprise_id"),
		EnterpriseName: values.Get("enterprise_name"),
		ChannelID:      values.Get("channel_id"),
		ChannelName:    values.Get("channel_name"),
		UserID:         values.Get("user_id"),
		UserName:       values.Get("user_name"),
		Command:        values.Get("command"),
		Text:           values.Get("text"),
		ResponseURL:    values.Get("response_url"),
		TriggerID:      values.Get("trigger_id"),
		APIAppID:       values.Get("api_app_id"),
	}
	command.User = Mention{
		Kind: MentionKindUser,
		ID:   command.UserID,
		Name: command.UserName,
	}
	command.Channel = Mention{
		Kind: MentionKindChannel,
		ID:   command.ChannelID,
		Name: command.ChannelName,
	}
	return command
}
