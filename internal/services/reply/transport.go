package reply

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"remotesms/internal/domain"
	domaintypes "remotesms/internal/domain/types"
	"remotesms/internal/protocol/segment"
)

// Transport sends replies through the SMS gateway.
type Transport struct {
	client domain.GatewayClient
	from   domain.Address
	limits segment.Limits
	log    zerolog.Logger
	now    func() time.Time
}

// Option customises a Transport.
type Option func(*Transport)

// WithLimits overrides the segment limits.
func WithLimits(l segment.Limits) Option {
	return func(t *Transport) { t.limits = l }
}

// WithClock overrides the timestamp source for outgoing envelopes.
func WithClock(now func() time.Time) Option {
	return func(t *Transport) { t.now = now }
}

// New returns a Transport sending as from.
func New(client domain.GatewayClient, from domain.Address, log zerolog.Logger, opts ...Option) *Transport {
	t := &Transport{
		client: client,
		from:   from,
		limits: segment.SMS,
		log:    log.With().Str("component", "reply").Logger(),
		now:    time.Now,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Deliver splits text and sends each segment to to, in order. The returned
// Reply always carries every segment, including those not sent.
func (t *Transport) Deliver(ctx context.Context, to domain.Address, text string) domain.Reply {
	rep := domain.Reply{Text: text, Segments: segment.Split(text, t.limits)}

	for i, part := range rep.Segments {
		env := domain.Envelope{
			From:      t.from,
			To:        to,
			Body:      part,
			Timestamp: t.now().Unix(),
		}
		if err := t.client.SendMessage(ctx, env); err != nil {
			terr := domaintypes.WrapError(domaintypes.KindTransport, "send reply segment", err)
			t.log.Error().
				Err(terr).
				Str("to", to.String()).
				Int("segment", i+1).
				Int("segments", len(rep.Segments)).
				Msg("reply delivery aborted")
			return rep
		}
	}

	t.log.Debug().
		Str("to", to.String()).
		Int("segments", len(rep.Segments)).
		Msg("reply delivered")
	return rep
}

var _ domain.ReplyTransport = (*Transport)(nil)
