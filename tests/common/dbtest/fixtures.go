//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultPassword matches TestPasswordHash.
const DefaultPassword = "password123"

// TestPasswordHash is a bcrypt hash of DefaultPassword.
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) int64 {
	t.Helper()

	ctx := context.Background()
	var userID int64
	err := db.QueryRow(ctx, `
		INSERT INTO accounts (name, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, true)
		ON CONFLICT ((LOWER(email))) DO UPDATE SET updated_at = NOW()
		RETURNING id`,
		strings.Split(email, "@")[0], email, TestPasswordHash, role,
	).Scan(&userID)
	require.NoError(t, err)

	return userID
}

type SalonFixture struct {
	OwnerID     int64
	Name        string
	WorkingDays []string
	StartTime   string
	EndTime     string
	SlotMinutes int
	Capacity    int
}

// DefaultSalon is open every day from 09:00 to 12:00 with hourly slots.
func DefaultSalon(ownerID int64) SalonFixture {
	return SalonFixture{
		OwnerID:     ownerID,
		Name:        "Blue Lotus Spa",
		WorkingDays: []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
		StartTime:   "09:00",
		EndTime:     "12:00",
		SlotMinutes: 60,
		Capacity:    2,
	}
}

func CreateTestSalon(t *testing.T, db DBLike, f SalonFixture) int64 {
	t.Helper()

	var salonID int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO salons (owner_id, name, city, working_days, start_time, end_time, slot_duration, max_bookings_per_slot)
		VALUES ($1, $2, 'Springfield', $3, $4, $5, $6, $7)
		RETURNING id`,
		f.OwnerID, f.Name, f.WorkingDays, f.StartTime, f.EndTime, f.SlotMinutes, f.Capacity,
	).Scan(&salonID)
	require.NoError(t, err)

	return salonID
}

func CreateTestAppointment(t *testing.T, db DBLike, customerID, salonID, ownerID int64, date, slot, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO appointments (user_id, salon_id, owner_id, date, time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		customerID, salonID, ownerID, date, slot, status,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func SetMaintenanceMode(t *testing.T, db DBLike, on bool) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO system_settings (id, site_name, timezone, language, maintenance_mode)
		VALUES (1, 'Salon Booking', 'Asia/Shanghai', 'zh-CN', $1)
		ON CONFLICT (id) DO UPDATE SET maintenance_mode = EXCLUDED.maintenance_mode, updated_at = NOW()`,
		on,
	)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table and restarts identities.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
