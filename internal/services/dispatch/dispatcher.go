package dispatch

import (
	"context"

	"github.com/rs/zerolog"

	"remotesms/internal/crypto"
	"remotesms/internal/domain"
	domaintypes "remotesms/internal/domain/types"
	"remotesms/internal/protocol/command"
	"remotesms/internal/services/handler"
)

// AuthRejectedText is the reply to a wrong password.
const AuthRejectedText = "Incorrect password"

// Outcome records how one message was processed.
type Outcome struct {
	MessageID string
	From      domain.Address
	Path      []State
	// Result is the last state before Replied: Executed or a rejection.
	Result  State
	Command domain.Command
	Kind    domain.ErrorKind
	Reply   domain.Reply
}

// Dispatcher authenticates, authorises and executes inbound commands.
type Dispatcher struct {
	creds     domain.CredentialVerifier
	gate      domain.CapabilityGate
	registry  *handler.Registry
	env       handler.Env
	transport domain.ReplyTransport
	log       zerolog.Logger
	// fpKey keys the token fingerprints written on failed authentication.
	fpKey []byte
}

// New returns a Dispatcher. env is handed to every handler.
func New(
	creds domain.CredentialVerifier,
	gate domain.CapabilityGate,
	registry *handler.Registry,
	env handler.Env,
	transport domain.ReplyTransport,
	log zerolog.Logger,
) *Dispatcher {
	if env.Grants == nil {
		env.Grants = gate
	}
	d := &Dispatcher{
		creds:     creds,
		gate:      gate,
		registry:  registry,
		transport: transport,
		log:       log.With().Str("component", "dispatch").Logger(),
		fpKey:     crypto.NewFingerprintKey(),
	}
	if env.Log == nil {
		env.Log = &d.log
	}
	d.env = env
	return d
}

// Handle processes one message and sends exactly one reply to its sender.
func (d *Dispatcher) Handle(ctx context.Context, msg domain.IncomingMessage) Outcome {
	out := Outcome{MessageID: msg.ID, From: msg.From, Path: []State{Received}}
	text := d.run(ctx, msg, &out)
	if text == "" {
		text = "OK"
	}

	out.Reply = d.transport.Deliver(ctx, msg.From, text)
	out.Path = append(out.Path, Replied)

	ev := d.log.Info()
	if out.Result.Rejected() {
		ev = d.log.Warn()
	}
	ev.Str("id", msg.ID).
		Str("from", msg.From.String()).
		Stringer("result", out.Result).
		Stringer("command", out.Command.Kind).
		Stringer("kind", out.Kind).
		Int("segments", len(out.Reply.Segments)).
		Msg("message handled")
	return out
}

// HandleBatch processes msgs sequentially in the given order. The whole
// batch is processed even if ctx is cancelled meanwhile, since the gateway
// has already released those messages.
func (d *Dispatcher) HandleBatch(ctx context.Context, msgs []domain.IncomingMessage) []Outcome {
	outs := make([]Outcome, 0, len(msgs))
	for _, m := range msgs {
		outs = append(outs, d.Handle(context.WithoutCancel(ctx), m))
	}
	return outs
}

// run advances the machine up to Executed or a rejection and returns the
// reply text.
func (d *Dispatcher) run(ctx context.Context, msg domain.IncomingMessage, out *Outcome) string {
	parsed, err := command.Parse(msg.Body)
	if err != nil {
		return out.reject(FormatRejected, err)
	}
	out.Path = append(out.Path, FormatChecked)

	if !d.creds.Verify(parsed.Auth) {
		d.log.Warn().
			Str("id", msg.ID).
			Str("from", msg.From.String()).
			Str("token_fp", crypto.Fingerprint(d.fpKey, parsed.Auth)).
			Int("token_len", len(parsed.Auth)).
			Msg("authentication failed")
		return out.reject(AuthRejected, domaintypes.NewError(domaintypes.KindAuth, AuthRejectedText))
	}
	out.Path = append(out.Path, Authenticated)

	out.Command = d.registry.Resolve(parsed.Token)
	if err := d.gate.Check(out.Command.Kind); err != nil {
		return out.reject(CapabilityRejected, err)
	}
	out.Path = append(out.Path, CapabilityChecked)

	text, err := d.registry.Invoke(ctx, out.Command, d.env)
	out.Path = append(out.Path, Executed)
	out.Result = Executed
	if err != nil {
		out.Kind = domaintypes.KindOf(err)
		if out.Kind == domaintypes.KindInternal {
			d.log.Error().Err(err).Str("id", msg.ID).Stringer("command", out.Command.Kind).Msg("handler failed")
		}
		return err.Error()
	}
	return text
}

func (o *Outcome) reject(s State, err error) string {
	o.Path = append(o.Path, s)
	o.Result = s
	o.Kind = domaintypes.KindOf(err)
	return err.Error()
}
