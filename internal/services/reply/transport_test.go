package reply_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remotesms/internal/domain"
	"remotesms/internal/services/reply"
)

type recordingGateway struct {
	sent   []domain.Envelope
	failAt int // 1-based; 0 never fails
}

func (g *recordingGateway) SendMessage(_ context.Context, env domain.Envelope) error {
	if g.failAt > 0 && len(g.sent)+1 == g.failAt {
		return errors.New("gateway down")
	}
	g.sent = append(g.sent, env)
	return nil
}

func (g *recordingGateway) FetchMessages(context.Context, domain.Address, int) ([]domain.Envelope, error) {
	return nil, nil
}

func (g *recordingGateway) AckMessages(context.Context, domain.Address, int) error { return nil }

func fixedClock() time.Time { return time.Unix(1700000000, 0) }

func TestDeliver_SingleSegment(t *testing.T) {
	gw := &recordingGateway{}
	tr := reply.New(gw, "device", zerolog.Nop(), reply.WithClock(fixedClock))

	rep := tr.Deliver(context.Background(), "+15551234", "Battery: 57%")

	assert.Equal(t, []string{"Battery: 57%"}, rep.Segments)
	require.Len(t, gw.sent, 1)
	assert.Equal(t, domain.Address("device"), gw.sent[0].From)
	assert.Equal(t, domain.Address("+15551234"), gw.sent[0].To)
	assert.Equal(t, "Battery: 57%", gw.sent[0].Body)
	assert.Equal(t, int64(1700000000), gw.sent[0].Timestamp)
}

func TestDeliver_MultipartInOrder(t *testing.T) {
	gw := &recordingGateway{}
	tr := reply.New(gw, "device", zerolog.Nop())

	text := strings.Repeat("a", 153) + strings.Repeat("b", 153) + "c"
	rep := tr.Deliver(context.Background(), "+1", text)

	require.Len(t, rep.Segments, 3)
	require.Len(t, gw.sent, 3)
	var joined strings.Builder
	for _, env := range gw.sent {
		assert.LessOrEqual(t, len([]rune(env.Body)), 153)
		joined.WriteString(env.Body)
	}
	assert.Equal(t, text, joined.String())
}

func TestDeliver_StopsAtFirstFailureAndLogs(t *testing.T) {
	var buf bytes.Buffer
	gw := &recordingGateway{failAt: 2}
	tr := reply.New(gw, "device", zerolog.New(&buf))

	rep := tr.Deliver(context.Background(), "+1", strings.Repeat("x", 400))

	assert.Len(t, rep.Segments, 3)
	assert.Len(t, gw.sent, 1, "segments after the failure are not sent")
	assert.Contains(t, buf.String(), "reply delivery aborted")
	assert.Contains(t, buf.String(), "gateway down")
	assert.Contains(t, buf.String(), `"segment":2`)
}
