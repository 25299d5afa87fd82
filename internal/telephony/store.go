package telephony

import (
	"context"
	"database/sql"
	"time"

	"remotesms/internal/domain"
)

// Store reads the call log and SMS inbox tables.
type Store struct {
	db *sql.DB
}

// New returns a Store over db.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// RecentCalls returns up to limit call-log rows, newest first.
func (s *Store) RecentCalls(ctx context.Context, limit int) ([]domain.CallEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT number, type, date, duration FROM calls ORDER BY date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CallEntry
	for rows.Next() {
		var (
			number   sql.NullString
			kind     int
			dateMs   int64
			duration sql.NullInt64
		)
		if err := rows.Scan(&number, &kind, &dateMs, &duration); err != nil {
			return nil, err
		}
		e := domain.CallEntry{
			Number:    "Unknown",
			Direction: domain.CallDirection(kind),
			At:        time.UnixMilli(dateMs),
			Duration:  time.Duration(duration.Int64) * time.Second,
		}
		if number.Valid && number.String != "" {
			e.Number = number.String
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// RecentInbox returns up to limit received messages, newest first.
func (s *Store) RecentInbox(ctx context.Context, limit int) ([]domain.SmsEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT address, body, date FROM sms WHERE type = ? ORDER BY date DESC LIMIT ?`,
		smsInboxType, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SmsEntry
	for rows.Next() {
		var (
			address sql.NullString
			body    sql.NullString
			dateMs  int64
		)
		if err := rows.Scan(&address, &body, &dateMs); err != nil {
			return nil, err
		}
		e := domain.SmsEntry{Address: "Unknown", Body: body.String, At: time.UnixMilli(dateMs)}
		if address.Valid && address.String != "" {
			e.Address = address.String
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// InsertCall appends a call-log row.
func (s *Store) InsertCall(ctx context.Context, e domain.CallEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO calls (number, type, date, duration) VALUES (?, ?, ?, ?)`,
		e.Number, int(e.Direction), e.At.UnixMilli(), int64(e.Duration/time.Second))
	return err
}

// InsertInbox appends a received SMS row.
func (s *Store) InsertInbox(ctx context.Context, e domain.SmsEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sms (address, body, date, type) VALUES (?, ?, ?, ?)`,
		e.Address, e.Body, e.At.UnixMilli(), smsInboxType)
	return err
}

var (
	_ domain.CallLogReader  = (*Store)(nil)
	_ domain.SmsInboxReader = (*Store)(nil)
)
