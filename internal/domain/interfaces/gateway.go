package interfaces

import (
	"context"

	domaintypes "remotesms/internal/domain/types"
)

// GatewayClient is how we talk to the SMS gateway, all with context.
type GatewayClient interface {
	SendMessage(ctx context.Context, envelope domaintypes.Envelope) error
	FetchMessages(
		ctx context.Context,
		address domaintypes.Address,
		limit int,
	) ([]domaintypes.Envelope, error)
	AckMessages(ctx context.Context, address domaintypes.Address, count int) error
}
