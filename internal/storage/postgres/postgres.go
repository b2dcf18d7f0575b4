// Package postgres provides a PostgreSQL-backed implementation of the
// storage.Storage interface using a pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aanand-mishra/students-service/internal/types"
)

// uniqueViolation is the SQLSTATE Postgres reports for a UNIQUE conflict.
const uniqueViolation = "23505"

const schema = `
	CREATE TABLE IF NOT EXISTS students (
		id     BIGSERIAL PRIMARY KEY,
		name   TEXT NOT NULL,
		email  TEXT NOT NULL UNIQUE,
		gender TEXT NOT NULL CHECK (gender IN ('MALE', 'FEMALE'))
	)
`

// Postgres is the concrete implementation of storage.Storage.
// *pgxpool.Pool is safe for concurrent use.
type Postgres struct {
	pool *pgxpool.Pool
}

// New connects to databaseURL, verifies the connection and creates the
// students table if it does not already exist.
func New(ctx context.Context, databaseURL string) (*Postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: parse database url: %w", err)
	}

	if poolConfig.MaxConns == 0 {
		poolConfig.MaxConns = 10
	}
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres.New: ping: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres.New: create table: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// IsUniqueViolation reports whether err came from a UNIQUE constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (p *Postgres) SaveStudent(ctx context.Context, student types.Student) (types.Student, error) {
	err := p.pool.QueryRow(ctx,
		"INSERT INTO students (name, email, gender) VALUES ($1, $2, $3) RETURNING id",
		student.Name, student.Email, string(student.Gender),
	).Scan(&student.ID)
	if IsUniqueViolation(err) {
		return types.Student{}, fmt.Errorf("SaveStudent: email %q already stored: %w", student.Email, err)
	}
	if err != nil {
		return types.Student{}, fmt.Errorf("SaveStudent: insert: %w", err)
	}
	return student, nil
}

func (p *Postgres) GetStudentByID(ctx context.Context, id int64) (types.Student, bool, error) {
	var (
		student types.Student
		gender  string
	)
	err := p.pool.QueryRow(ctx,
		"SELECT id, name, email, gender FROM students WHERE id = $1", id,
	).Scan(&student.ID, &student.Name, &student.Email, &gender)
	if errors.Is(err, pgx.ErrNoRows) {
		return types.Student{}, false, nil
	}
	if err != nil {
		return types.Student{}, false, fmt.Errorf("GetStudentByID: scan: %w", err)
	}

	student.Gender = types.Gender(gender)
	return student, true, nil
}

func (p *Postgres) ListStudents(ctx context.Context) ([]types.Student, error) {
	rows, err := p.pool.Query(ctx, "SELECT id, name, email, gender FROM students ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("ListStudents: query: %w", err)
	}
	defer rows.Close()

	students := make([]types.Student, 0)
	for rows.Next() {
		var (
			student types.Student
			gender  string
		)
		if err := rows.Scan(&student.ID, &student.Name, &student.Email, &gender); err != nil {
			return nil, fmt.Errorf("ListStudents: scan row: %w", err)
		}
		student.Gender = types.Gender(gender)
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListStudents: rows iteration: %w", err)
	}

	return students, nil
}

func (p *Postgres) DeleteStudentByID(ctx context.Context, id int64) error {
	if _, err := p.pool.Exec(ctx, "DELETE FROM students WHERE id = $1", id); err != nil {
		return fmt.Errorf("DeleteStudentByID: exec: %w", err)
	}
	return nil
}

func (p *Postgres) ExistsStudentByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)", id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ExistsStudentByID: scan: %w", err)
	}
	return exists, nil
}

func (p *Postgres) ExistsStudentByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)", email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ExistsStudentByEmail: scan: %w", err)
	}
	return exists, nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	if err := p.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres.Ping: %w", err)
	}
	return nil
}

// Close waits for acquired connections to be released and closes the pool.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
