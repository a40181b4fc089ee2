package mattermost

import "github.com/go-faster/jx"

// Message is a single post delivered to an incoming webhook.
type Message struct {
	Text string // Text is the Markdown body of the post.
}

// Encode writes m to e as the JSON document incoming webhooks expect.
func (m Message) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("text")
	e.Str(m.Text)
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (m Message) MarshalJSON() ([]byte, error) {
	e := &jx.Encoder{}
	m.Encode(e)

	return e.Bytes(), nil
}

// ResponseType selects how Mattermost renders a slash-command response.
type ResponseType string

const (
	// ResponseTypeInChannel posts the response publicly into the channel.
	ResponseTypeInChannel ResponseType = "in_channel"
	// ResponseTypeEphemeral shows the response only to the invoking user.
	ResponseTypeEphemeral ResponseType = "ephemeral"
)

// SlashResponse is the JSON document returned to a slash-command request.
type SlashResponse struct {
	ResponseType ResponseType
	Text         string
}

// Encode writes s to e as a JSON object.
func (s SlashResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("response_type")
	e.Str(string(s.ResponseType))
	e.FieldStart("text")
	e.Str(s.Text)
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (s SlashResponse) MarshalJSON() ([]byte, error) {
	e := &jx.Encoder{}
	s.Encode(e)

	return e.Bytes(), nil
}
