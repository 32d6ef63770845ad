// Package repository implements the appointment ledger on SQLite.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/marcaguilaar/automax-whatsapp-bot/internal/domain"
)

// AppointmentLedger stores appointments for the lifetime of the process.
// The default DSN is ":memory:"; the same code works against a file DSN.
type AppointmentLedger struct {
	db *sql.DB
}

// NewAppointmentLedger opens the ledger database and runs migrations.
func NewAppointmentLedger(dsn string) (*AppointmentLedger, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	ledger := &AppointmentLedger{db: db}
	if err := ledger.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return ledger, nil
}

// migrate runs database migrations.
func (l *AppointmentLedger) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS appointments (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			appointment_id TEXT UNIQUE,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			type TEXT NOT NULL,
			customer_name TEXT NOT NULL,
			customer_phone TEXT NOT NULL,
			customer_email TEXT NOT NULL DEFAULT '',
			car_id TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'scheduled',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		// One non-cancelled appointment per (date, time). The index makes the
		// conflict-check-then-append sequence atomic at the database.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_slot
			ON appointments(date, time) WHERE status != 'cancelled'`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_date ON appointments(date)`,
	}

	for _, m := range migrations {
		if _, err := l.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Create books the appointment, assigning the next sequential id and the
// scheduled status. Returns domain.ErrSlotTaken when a non-cancelled
// appointment already holds the same (date, time).
func (l *AppointmentLedger) Create(ctx context.Context, a *domain.Appointment) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO appointments (date, time, type, customer_name, customer_phone, customer_email, car_id, notes, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Date, a.Time, string(a.Type), a.CustomerName, a.CustomerPhone,
		a.CustomerEmail, a.CarID, a.Notes, string(domain.AppointmentScheduled))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("failed to insert appointment: %w", err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read appointment seq: %w", err)
	}
	id := fmt.Sprintf("apt-%d", seq)

	if _, err := tx.ExecContext(ctx,
		`UPDATE appointments SET appointment_id = ? WHERE seq = ?`, id, seq); err != nil {
		return fmt.Errorf("failed to set appointment id: %w", err)
	}
	if err := tx.QueryRowContext(ctx,
		`SELECT created_at FROM appointments WHERE seq = ?`, seq).Scan(&a.CreatedAt); err != nil {
		return fmt.Errorf("failed to read appointment: %w", err)
	}
	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("failed to commit appointment: %w", err)
	}

	a.ID = id
	a.Status = domain.AppointmentScheduled
	return nil
}

// Get returns the appointment with the given id, or nil when absent.
func (l *AppointmentLedger) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	row := l.db.QueryRowContext(ctx,
		`SELECT appointment_id, date, time, type, customer_name, customer_phone, customer_email, car_id, notes, status, created_at
		 FROM appointments WHERE appointment_id = ?`, id)

	a, err := scanAppointment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return a, nil
}

// BookedTimes returns the times consumed by non-cancelled appointments on the
// given date, regardless of appointment type.
func (l *AppointmentLedger) BookedTimes(ctx context.Context, date string) ([]string, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT time FROM appointments WHERE date = ? AND status != ? ORDER BY seq`,
		date, string(domain.AppointmentCancelled))
	if err != nil {
		return nil, fmt.Errorf("failed to query booked times: %w", err)
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan booked time: %w", err)
		}
		times = append(times, t)
	}
	return times, rows.Err()
}

// Cancel marks the appointment cancelled, freeing its slot.
func (l *AppointmentLedger) Cancel(ctx context.Context, id string) error {
	res, err := l.db.ExecContext(ctx,
		`UPDATE appointments SET status = ? WHERE appointment_id = ? AND status != ?`,
		string(domain.AppointmentCancelled), id, string(domain.AppointmentCancelled))
	if err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}
	if n == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

// Close closes the underlying database.
func (l *AppointmentLedger) Close() error {
	return l.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var a domain.Appointment
	var typ, status string
	if err := row.Scan(&a.ID, &a.Date, &a.Time, &typ, &a.CustomerName, &a.CustomerPhone,
		&a.CustomerEmail, &a.CarID, &a.Notes, &status, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.Type = domain.AppointmentType(typ)
	a.Status = domain.AppointmentStatus(status)
	return &a, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
