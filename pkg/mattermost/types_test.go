package mattermost_test

import (
	"encoding/json"
	"mirrorbot/pkg/mattermost"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessage_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(mattermost.Message{Text: "#### hello\n\nworld"})
	require.NoError(t, err)
	require.JSONEq(t, `{"text":"#### hello\n\nworld"}`, string(b))
}

func TestSlashResponse_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(mattermost.SlashResponse{
		ResponseType: mattermost.ResponseTypeInChannel,
		Text:         "https://nitter.net/wezm",
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"response_type":"in_channel","text":"https://nitter.net/wezm"}`, string(b))

	b, err = json.Marshal(mattermost.SlashResponse{
		ResponseType: mattermost.ResponseTypeEphemeral,
		Text:         "You need to supply a URL",
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"response_type":"ephemeral","text":"You need to supply a URL"}`, string(b))
}
