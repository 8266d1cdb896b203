package service

import (
	"Chirp/types"
	"context"
)

// ActivityPublisher delivers activity events. Publish never fails the caller;
// delivery problems are the publisher's to log.
type ActivityPublisher interface {
	Publish(ctx context.Context, event *types.ActivityEvent)
}
