package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/nebengjek-settlement/internal/pkg/constants"
	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	natspkg "github.com/piresc/nebengjek-settlement/internal/pkg/nats"
	"github.com/piresc/nebengjek-settlement/services/settlement"
)

// eventGW publishes settlement events to JetStream
type eventGW struct {
	natsClient *natspkg.Client
}

// NewEventGW creates a new NATS event gateway
func NewEventGW(client *natspkg.Client) settlement.EventGW {
	return &eventGW{
		natsClient: client,
	}
}

// PublishTransferFinalized announces a terminal transfer state. The message
// id is derived from the reference and status so a repeated finalize is
// dropped by the stream.
func (g *eventGW) PublishTransferFinalized(ctx context.Context, event models.TransferFinalizedEvent) error {
	msgID := fmt.Sprintf("%s:%s", event.ReferenceKey, event.Status)
	if err := g.natsClient.PublishJSON(ctx, constants.SubjectTransferFinalized, msgID, event); err != nil {
		return fmt.Errorf("failed to publish transfer finalized event: %w", err)
	}

	logger.DebugCtx(ctx, "Published transfer finalized event",
		logger.Reference(event.ReferenceKey),
		logger.String("status", string(event.Status)))
	return nil
}
