package ports

import (
	"context"

	model "pinstack-publish-service/internal/domain/models"
)

// EventPublisher is the outbound domain event sink consumed by the
// notification collaborator.
//
//go:generate mockery --name EventPublisher --dir . --output ../../../../mocks/events --outpkg mocks --with-expecter --filename EventPublisher.go
type EventPublisher interface {
	Publish(ctx context.Context, event *model.DomainEvent) error
}
