package handler

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog"

	"remotesms/internal/domain"
	domaintypes "remotesms/internal/domain/types"
	"remotesms/internal/protocol/command"
)

// Env carries the system accessors a handler may use.
type Env struct {
	Battery  domain.BatteryReader
	Location domain.LocationSource
	Calls    domain.CallLogReader
	Inbox    domain.SmsInboxReader
	Grants   domain.CapabilityChecker
	Device   domain.DeviceController
	// Zone renders timestamps in replies; nil means time.Local.
	Zone *time.Location
	// Log receives failures a handler recovers from; nil discards them.
	Log *zerolog.Logger
}

func (e Env) logger() *zerolog.Logger {
	if e.Log == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return e.Log
}

func (e Env) zone() *time.Location {
	if e.Zone == nil {
		return time.Local
	}
	return e.Zone
}

// Handler executes one command.
type Handler func(ctx context.Context, env Env) (string, error)

// Registry maps keywords to command kinds and kinds to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[domain.CommandKind]Handler
	aliases  map[string]domain.CommandKind
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[domain.CommandKind]Handler),
		aliases:  make(map[string]domain.CommandKind),
	}
}

// NewDefault returns a registry with every built-in command registered under
// its accepted keywords.
func NewDefault() *Registry {
	r := NewRegistry()
	r.Register(domaintypes.CommandGetCallLogs, CallLogs, "GET_LOGS", "GET_CALLLOGS")
	r.Register(domaintypes.CommandGetSms, SmsInbox, "GET_SMS", "GET_SMSLOG", "GET_SMSLOGS")
	r.Register(domaintypes.CommandGetBattery, Battery, "GET_BATTERY")
	r.Register(domaintypes.CommandGetLocation, Location, "GET_GPS", "GET_LOCATION")
	r.Register(domaintypes.CommandLightOn, LightOn, "LIGHT_ON")
	r.Register(domaintypes.CommandLightOff, LightOff, "LIGHT_OFF")
	return r
}

// Register binds kind to h and makes each keyword resolve to kind.
func (r *Registry) Register(kind domain.CommandKind, h Handler, keywords ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[kind] = h
	for _, kw := range keywords {
		r.aliases[command.Keyword(kw)] = kind
	}
}

// Resolve maps a raw command token to a Command. Unmatched tokens resolve
// to CommandUnknown carrying the upper-cased token.
func (r *Registry) Resolve(token string) domain.Command {
	raw := strings.ToUpper(token)

	r.mu.RLock()
	kind, ok := r.aliases[command.Keyword(raw)]
	r.mu.RUnlock()

	if !ok {
		return domain.Command{Kind: domaintypes.CommandUnknown, Raw: raw}
	}
	return domain.Command{Kind: kind, Raw: raw}
}

// Invoke runs the handler for cmd. Unknown commands yield a
// KindUnknownCommand error echoing the token; a handler panic yields a
// KindInternal error.
func (r *Registry) Invoke(ctx context.Context, cmd domain.Command, env Env) (reply string, err error) {
	r.mu.RLock()
	h, ok := r.handlers[cmd.Kind]
	r.mu.RUnlock()

	if !ok || cmd.Kind == domaintypes.CommandUnknown {
		msg := "Unknown command: " + cmd.Raw
		if kw, ok := r.Suggest(cmd.Raw); ok {
			msg += " (did you mean " + kw + "?)"
		}
		return "", domaintypes.NewError(domaintypes.KindUnknownCommand, msg)
	}

	defer func() {
		if p := recover(); p != nil {
			reply = ""
			err = domaintypes.WrapError(domaintypes.KindInternal, "Error", fmt.Errorf("%s handler panicked: %v", cmd.Kind, p))
		}
	}()
	return h(ctx, env)
}

// maxSuggestDistance bounds the edit distance of a keyword suggestion.
const maxSuggestDistance = 2

// Suggest returns the registered keyword closest to token when it is within
// a small edit distance.
func (r *Registry) Suggest(token string) (string, bool) {
	key := command.Keyword(token)
	best, bestDist := "", maxSuggestDistance+1
	for _, kw := range r.Keywords() {
		if d := levenshtein.ComputeDistance(key, kw); d < bestDist {
			best, bestDist = kw, d
		}
	}
	return best, best != ""
}

// Keywords returns every registered keyword, sorted.
func (r *Registry) Keywords() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.aliases))
	for kw := range r.aliases {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}
