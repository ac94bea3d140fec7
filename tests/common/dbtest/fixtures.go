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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Well-known fixture IDs, mirroring the development seed.
var (
	ServiceHaircut  = uuid.MustParse("11111111-1111-1111-1111-111111111101")
	ServiceManicure = uuid.MustParse("11111111-1111-1111-1111-111111111102")
	ServiceFacial   = uuid.MustParse("11111111-1111-1111-1111-111111111103")
	ServiceEyebrow  = uuid.MustParse("11111111-1111-1111-1111-111111111104")
	ServiceMassage  = uuid.MustParse("11111111-1111-1111-1111-111111111105")

	ProfessionalMaria = uuid.MustParse("22222222-2222-2222-2222-222222222201")
	ProfessionalAna   = uuid.MustParse("22222222-2222-2222-2222-222222222202")
	ProfessionalJoao  = uuid.MustParse("22222222-2222-2222-2222-222222222203")

	UserSofia  = uuid.MustParse("33333333-3333-3333-3333-333333333301")
	UserCarlos = uuid.MustParse("33333333-3333-3333-3333-333333333302")
)

// inserts the reference catalog needed by tests: services, professionals,
// their offerings, Mon-Sat 09:00-18:00 working hours, and two users
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO services (id, name, description, duration_minutes, price_cents, active) VALUES
		    ($1, 'Haircut & Styling', 'Professional haircut with styling', 45, 3500, TRUE),
		    ($2, 'Manicure', 'Complete nail care and polish', 60, 2500, TRUE),
		    ($3, 'Facial Treatment', 'Deep cleansing and moisturizing facial', 90, 6500, TRUE),
		    ($4, 'Eyebrow Shaping', 'Professional eyebrow shaping and tinting', 30, 1800, TRUE),
		    ($5, 'Massage Therapy', 'Relaxing full body massage', 75, 5500, TRUE)
		ON CONFLICT (id) DO NOTHING;
	`, ServiceHaircut, ServiceManicure, ServiceFacial, ServiceEyebrow, ServiceMassage)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO professionals (id, name, email, phone, bio, avatar_url) VALUES
		    ($1, 'Maria Silva', 'maria@beauty.com', '+351 912 345 678', 'Experienced hairstylist with 10+ years in the industry', '/avatars/maria.jpg'),
		    ($2, 'Ana Costa', 'ana@beauty.com', '+351 912 345 679', 'Specialized in nail art and beauty treatments', '/avatars/ana.jpg'),
		    ($3, 'João Santos', 'joao@beauty.com', '+351 912 345 680', 'Certified massage therapist and wellness expert', '/avatars/joao.jpg')
		ON CONFLICT (id) DO NOTHING;
	`, ProfessionalMaria, ProfessionalAna, ProfessionalJoao)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO professional_services (professional_id, service_id) VALUES
		    ($1, $4), ($1, $5), ($1, $6), ($1, $7),
		    ($2, $5), ($2, $6), ($2, $7),
		    ($3, $8)
		ON CONFLICT DO NOTHING;
	`, ProfessionalMaria, ProfessionalAna, ProfessionalJoao,
		ServiceHaircut, ServiceManicure, ServiceFacial, ServiceEyebrow, ServiceMassage)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO working_hours (professional_id, weekday, start_minutes, end_minutes)
		SELECT p.id, w.weekday, 540, 1080
		FROM (VALUES ($1::uuid), ($2::uuid), ($3::uuid)) AS p(id)
		CROSS JOIN generate_series(1, 6) AS w(weekday)
		ON CONFLICT (professional_id, weekday) DO NOTHING;
	`, ProfessionalMaria, ProfessionalAna, ProfessionalJoao)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, email, phone) VALUES
		    ($1, 'Sofia Oliveira', 'sofia@example.com', '+351 912 345 681'),
		    ($2, 'Carlos Ferreira', 'carlos@example.com', '+351 912 345 682')
		ON CONFLICT (id) DO NOTHING;
	`, UserSofia, UserCarlos)
	return err
}

func CreateTestBreak(t *testing.T, db DBLike, professionalID uuid.UUID, startsAt, endsAt time.Time, reason string) uuid.UUID {
	t.Helper()

	breakID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO breaks (id, professional_id, starts_at, ends_at, reason)
		VALUES ($1, $2, $3, $4, $5)
	`, breakID, professionalID, startsAt, endsAt, reason)
	require.NoError(t, err)

	return breakID
}

func CreateTestAppointment(t *testing.T, db DBLike, userID, professionalID, serviceID uuid.UUID, startsAt, endsAt time.Time, status string) uuid.UUID {
	t.Helper()

	apptID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO appointments (id, user_id, professional_id, service_id, starts_at, ends_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, apptID, userID, professionalID, serviceID, startsAt, endsAt, status)
	require.NoError(t, err)

	return apptID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
