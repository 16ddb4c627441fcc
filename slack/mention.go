package slack

import (
	"fmt"
	"regexp"
)

// MentionKind discriminates the two kinds of entities Slack's escaped
// mention syntax can reference.
type MentionKind int

const (
	// MentionKindUser identifies a mention of a workspace user.
	MentionKindUser MentionKind = iota
	// MentionKindChannel identifies a mention of a channel.
	MentionKindChannel
)

func (m MentionKind) String() string {
	switch m {
	case MentionKindUser:
		return "user"
	case MentionKindChannel:
		return "channel"
	}
	return "unknown"
}

// Both patterns are anchored. The one-or-more multiplicity means a
// zero-length ID or name segment never matches.
var (
	userMentionRegex    = regexp.MustCompile(`^<@([^|]+)\|([^>]+)>$`)
	channelMentionRegex = regexp.MustCompile(`^<#([^|]+)\|([^>]+)>$`)
)

// Mention encapsulates a reference to a Slack user or channel, both of
// which share an ID + display name shape and differ only in the sigil used
// by the escaped textual syntax.
type Mention struct {
	Kind MentionKind `json:"kind"`
	ID   string      `json:"id"`   // e.g. U2147483697
	Name string      `json:"name"` // e.g. alice
}

// String renders the mention in Slack's escaped textual syntax --
// <@id|name> for users, <#id|name> for channels. No escaping is applied to
// the ID or name; callers that require a faithful round trip through
// ParseMention must ensure neither contains '<', '>', or '|'.
func (m Mention) String() string {
	switch m.Kind {
	case MentionKindChannel:
		return fmt.Sprintf("<#%s|%s>", m.ID, m.Name)
	default:
		return fmt.Sprintf("<@%s|%s>", m.ID, m.Name)
	}
}

// ParseMention parses text in Slack's escaped mention syntax into a
// Mention of the requested kind. The whole of text must be a single
// well-formed token of that kind; embedded tokens, tokens of the other
// kind, and tokens with an empty ID or name segment are all rejected with
// a *MentionFormatError.
func ParseMention(text string, kind MentionKind) (Mention, error) {
	var mentionRegex *regexp.Regexp
	switch kind {
	case MentionKindUser:
		mentionRegex = userMentionRegex
	case MentionKindChannel:
		mentionRegex = channelMentionRegex
	default:
		return Mention{}, &MentionFormatError{Text: text, Kind: kind}
	}
	matches := mentionRegex.FindStringSubmatch(text)
	if matches == nil {
		return Mention{}, &MentionFormatError{Text: text, Kind: kind}
	}
	return Mention{
		Kind: kind,
		ID:   matches[1],
		Name: matches[2],
	}, nil
}

// MentionFormatError is returned by ParseMention when input text is not a
// well-formed escaped mention of the expected kind. It is user-facing:
// it describes a problem with what the command issuer typed and is meant
// to be relayed back to them rather than logged as an internal fault.
type MentionFormatError struct {
	// Text is the offending input.
	Text string
	// Kind is the kind of mention that was expected.
	Kind MentionKind
}

func (m *MentionFormatError) Error() string {
	return fmt.Sprintf("%q is not a valid %s mention", m.Text, m.Kind)
}
