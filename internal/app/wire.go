package app

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"remotesms/internal/domain"
	"remotesms/internal/gateway"
	"remotesms/internal/protocol/segment"
	"remotesms/internal/services/capability"
	"remotesms/internal/services/credential"
	"remotesms/internal/services/device"
	"remotesms/internal/services/dispatch"
	"remotesms/internal/services/handler"
	"remotesms/internal/services/message"
	"remotesms/internal/services/reply"
	"remotesms/internal/store"
	"remotesms/internal/system"
	"remotesms/internal/telephony"
)

// ErrNoStoreKey indicates a command that seals or opens the credential
// record was run without store.key configured.
var ErrNoStoreKey = errors.New("store.key is empty; set it in config.toml or REMOTESMS_STORE_KEY")

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Config      Config
	Log         zerolog.Logger
	Credentials *credential.Service
	Grants      *capability.Service
	Device      *device.State
	Gateway     *gateway.HTTP
	Messages    *message.Service
	Registry    *handler.Registry
	Battery     *system.SysfsBattery
	Location    *system.FixFileSource
	Telephony   *telephony.Store
	HTTP        *http.Client

	db   *sql.DB
	zone *time.Location
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log zerolog.Logger) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}
	zone, err := cfg.ZoneLocation()
	if err != nil {
		return nil, fmt.Errorf("zone: %w", err)
	}

	// Telephony provider database
	db, err := telephony.Open(cfg.Telephony.DBPath)
	if err != nil {
		return nil, err
	}
	if err := telephony.EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	httpClient := &http.Client{Timeout: 15 * time.Second}
	gw := gateway.NewHTTP(cfg.Gateway.URL, httpClient)

	return &Wire{
		Config:      cfg,
		Log:         log,
		Credentials: credential.New(store.NewCredentialFileStore(cfg.Home, cfg.Store.Key), nil),
		Grants:      capability.New(store.NewGrantFileStore(cfg.Home)),
		Device:      device.New(domain.DeviceState{}),
		Gateway:     gw,
		Messages:    message.New(gw),
		Registry:    handler.NewDefault(),
		Battery:     system.NewSysfsBattery(cfg.System.PowerSupplyDir),
		Location:    system.NewFixFileSource(cfg.System.LocationDir),
		Telephony:   telephony.New(db),
		HTTP:        httpClient,
		db:          db,
		zone:        zone,
	}, nil
}

// RequireStoreKey fails with ErrNoStoreKey unless a credential key is set.
func (w *Wire) RequireStoreKey() error {
	if w.Config.Store.Key == "" {
		return ErrNoStoreKey
	}
	return nil
}

// Env returns the accessors handed to command handlers.
func (w *Wire) Env() handler.Env {
	return handler.Env{
		Battery:  w.Battery,
		Location: w.Location,
		Calls:    w.Telephony,
		Inbox:    w.Telephony,
		Grants:   w.Grants,
		Device:   w.Device,
		Zone:     w.zone,
	}
}

// Address is this device's mailbox on the gateway.
func (w *Wire) Address() domain.Address {
	return domain.Address(w.Config.Gateway.Address)
}

// Dispatcher builds the command dispatcher replying as this device.
func (w *Wire) Dispatcher() *dispatch.Dispatcher {
	limits := segment.Limits{Single: w.Config.Segment.Single, Multi: w.Config.Segment.Multi}
	tr := reply.New(w.Gateway, w.Address(), w.Log, reply.WithLimits(limits))
	return dispatch.New(w.Credentials, w.Grants, w.Registry, w.Env(), tr, w.Log)
}

// Poller builds the serve loop for this device's mailbox.
func (w *Wire) Poller() *dispatch.Poller {
	return dispatch.NewPoller(w.Messages, w.Dispatcher(), w.Address(), w.Config.Poll.Interval, w.Config.Poll.Limit, w.Log)
}

// Close releases the telephony database.
func (w *Wire) Close() error {
	if w.db == nil {
		return nil
	}
	return w.db.Close()
}
