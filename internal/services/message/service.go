package message

import (
	"context"
	"errors"
	"fmt"
	"time"

	"remotesms/internal/domain"
	"remotesms/internal/protocol/segment"
)

// Service exchanges messages with the gateway.
//
// High-level flow:
//   - Send: split the body into segments and post each one in order.
//   - Receive: fetch envelopes, convert them in arrival order, then ack the
//     number fetched.
type Service struct {
	gateway domain.GatewayClient
	limits  segment.Limits
	now     func() time.Time
}

var (
	// ErrEmptyBody indicates an attempt to send a blank message.
	ErrEmptyBody = errors.New("message body is empty")
)

// New constructs a message Service over the given gateway client.
func New(gateway domain.GatewayClient) *Service {
	return &Service{gateway: gateway, limits: segment.SMS, now: time.Now}
}

// SendMessage posts body from one address to another.
func (s *Service) SendMessage(
	ctx context.Context,
	from domain.Address,
	to domain.Address,
	body string,
) error {
	if body == "" {
		return ErrEmptyBody
	}
	for i, part := range segment.Split(body, s.limits) {
		env := domain.Envelope{
			From:      from,
			To:        to,
			Body:      part,
			Timestamp: s.now().Unix(),
		}
		if err := s.gateway.SendMessage(ctx, env); err != nil {
			return fmt.Errorf("send segment %d to %q: %w", i+1, to, err)
		}
	}
	return nil
}

// ReceiveMessages fetches up to limit pending messages for me.
//
// Everything fetched is acknowledged before returning, so a message is
// handed out at most once. When the ack fails nothing is returned; the
// envelopes stay queued and are handed out by a later call instead.
func (s *Service) ReceiveMessages(
	ctx context.Context,
	me domain.Address,
	limit int,
) ([]domain.IncomingMessage, error) {
	envs, err := s.gateway.FetchMessages(ctx, me, limit)
	if err != nil {
		return nil, err
	}

	// Ack only what was fetched. If zero, do nothing.
	if len(envs) > 0 {
		if err := s.gateway.AckMessages(ctx, me, len(envs)); err != nil {
			return nil, fmt.Errorf("ack %d messages: %w", len(envs), err)
		}
	}

	out := make([]domain.IncomingMessage, 0, len(envs))
	for _, env := range envs {
		out = append(out, env.Incoming())
	}
	return out, nil
}

// Compile-time assertion that Service implements domain.MessageService.
var _ domain.MessageService = (*Service)(nil)
