package slack

import (
	"reflect"
)

// MarkupField names an Attachment sub-field that Slack should apply
// message markup to when it appears in the attachment's MrkdwnIn list.
type MarkupField string

const (
	MarkupFieldPretext MarkupField = "pretext"
	MarkupFieldText    MarkupField = "text"
	MarkupFieldFields  MarkupField = "fields"
)

// AttachmentField encapsulates one titled value within an Attachment.
// Title is rendered as a bold heading with no markup applied; Value may
// contain markup and span multiple lines.
type AttachmentField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	// Short hints that the field is small enough to be laid out
	// side-by-side with other short fields.
	Short bool `json:"short,omitempty"`
}

// Attachment encapsulates one rich-content block of an outgoing message.
// Slack applies a few rendering rules that producers should be aware of:
// at least one of Text or Fallback should be set for the attachment to
// render correctly, AuthorLink and AuthorIcon only take effect alongside
// AuthorName, TitleLink only alongside Title, and FooterIcon only
// alongside Footer. None of this is enforced here.
//
// nolint: lll
type Attachment struct {
	Fallback   string            `json:"fallback,omitempty"`
	Color      string            `json:"color,omitempty"` // good, warning, danger, or #RRGGBB
	Pretext    string            `json:"pretext,omitempty"`
	AuthorName string            `json:"author_name,omitempty"`
	AuthorLink string            `json:"author_link,omitempty"`
	AuthorIcon string            `json:"author_icon,omitempty"`
	Title      string            `json:"title,omitempty"`
	TitleLink  string            `json:"title_link,omitempty"`
	Text       string            `json:"text,omitempty"`
	ImageURL   string            `json:"image_url,omitempty"`
	ThumbURL   string            `json:"thumb_url,omitempty"`
	Footer     string            `json:"footer,omitempty"`
	FooterIcon string            `json:"footer_icon,omitempty"`
	TS         int64             `json:"ts,omitempty"` // epoch seconds
	Fields     []AttachmentField `json:"fields,omitempty"`
	MrkdwnIn   []MarkupField     `json:"mrkdwn_in,omitempty"`
}

// Message encapsulates the structured response shape a command handler may
// return to produce a rich chat message rather than plain text. Every
// field is individually optional; nil means the field is absent from the
// wire payload entirely.
type Message struct {
	Text        *string      `json:"text,omitempty"`
	Username    *string      `json:"username,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Mrkdwn      *bool        `json:"mrkdwn,omitempty"`
}

// NewTextMessage returns a Message carrying only the given text.
func NewTextMessage(text string) *Message {
	return &Message{Text: &text}
}

// IsMessage reports whether a command handler's result should be treated
// as a structured Message and serialized with the attachment-aware wire
// shape, as opposed to opaque output for the caller to wrap some other
// way. A result qualifies if it is a non-nil Message (or a string-keyed
// map shaped like one) whose text is present as a string or whose
// attachments are present as a sequence. This is a deliberately coarse
// shape test: it does not validate attachment internals or the types of
// any other field, and an empty attachments sequence qualifies.
func IsMessage(result interface{}) bool {
	switch message := result.(type) {
	case *Message:
		return message != nil &&
			(message.Text != nil || message.Attachments != nil)
	case Message:
		return message.Text != nil || message.Attachments != nil
	case map[string]interface{}:
		if _, ok := message["text"].(string); ok {
			return true
		}
		attachments, ok := message["attachments"]
		return ok && attachments != nil &&
			reflect.TypeOf(attachments).Kind() == reflect.Slice
	}
	return false
}
