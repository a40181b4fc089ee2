// Package mattermost defines the types and interfaces used to deliver
// messages to a Mattermost server and to answer its slash commands.
package mattermost

import "context"

// Poster is the abstraction for message delivery. Implementations post
// messages into a channel, typically through an incoming webhook.
//
//go:generate mockgen -package mockmattermost -source=interface.go -destination=mock/mockmattermost.go *
type Poster interface {
	// Post delivers the message. It blocks until the message is accepted
	// by the server, the context is cancelled, or delivery fails.
	Post(ctx context.Context, msg Message) error
}
