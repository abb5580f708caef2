// Package testutil provides Postgres and Redis scaffolding for integration
// tests. Tests skip automatically when the backing services are unreachable,
// unless TEST_REQUIRE_DB / TEST_REQUIRE_REDIS force a failure instead.
package testutil

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/seopulse/seopulse-api/internal/migrate"
)

// TestingTB covers the subset of *testing.T and *testing.B the helpers need.
type TestingTB interface {
	Helper()
	Skip(args ...interface{})
	Skipf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

func requireDB() bool    { return envBool("TEST_REQUIRE_DB") || envBool("TEST_REQUIRE_INFRA") }
func requireRedis() bool { return envBool("TEST_REQUIRE_REDIS") || envBool("TEST_REQUIRE_INFRA") }

// testDSN builds the test database DSN. An optional schema puts that schema
// first on the search_path so ephemeral-schema tests stay isolated.
func testDSN(schema string) string {
	hostPort := net.JoinHostPort(envOr("TEST_DB_HOST", "localhost"), envOr("TEST_DB_PORT", "55432"))
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(envOr("TEST_DB_USER", "seopulse"), envOr("TEST_DB_PASSWORD", "seopulse")),
		Host:   hostPort,
		Path:   envOr("TEST_DB_NAME", "seopulse"),
	}
	q := u.Query()
	q.Set("sslmode", envOr("DB_SSL_MODE", "disable"))
	if schema != "" {
		q.Set("search_path", schema+",public")
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// SkipIfNoTestDB skips (or fails, when required) if the test database does
// not answer a ping. The default port 55432 matches the compose test profile.
func SkipIfNoTestDB(t TestingTB) {
	t.Helper()

	db, err := sql.Open("pgx", testDSN(""))
	if err == nil {
		defer func() { _ = db.Close() }()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		err = db.PingContext(ctx)
	}
	if err != nil {
		if requireDB() {
			t.Fatal("Test database not available:", err)
		}
		t.Skip("Test database not available:", err)
	}
}

// WithAutoDB runs fn against a migrated test database. With
// TEST_DB_EPHEMERAL set, each call gets its own schema that is dropped
// afterwards; otherwise the shared database is wiped before and after fn.
func WithAutoDB(t TestingTB, fn func(*sql.DB)) {
	t.Helper()
	SkipIfNoTestDB(t)

	if envBool("TEST_DB_EPHEMERAL") {
		fn(setupEphemeralSchemaDB(t))
		return
	}

	db := setupSharedDB(t)
	defer func() {
		CleanupTestDB(t, db)
		_ = db.Close()
	}()
	fn(db)
}

func setupSharedDB(t TestingTB) *sql.DB {
	t.Helper()

	db := openAndPing(t, testDSN(""), "test database")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := migrate.Run(ctx, db); err != nil {
		t.Fatal("Failed to run migrations:", err)
	}
	CleanupTestDB(t, db)
	return db
}

func openAndPing(t TestingTB, dsn, what string) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", what, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		t.Fatalf("Failed to connect to %s: %v", what, err)
	}
	return db
}

// CleanupTestDB wipes all rows, children before parents so foreign keys
// never block the deletes.
func CleanupTestDB(t TestingTB, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tables := []string{
		"keyword_positions",
		"keywords",
		"backlinks",
		"content_items",
		"roadmap_tasks",
		"audits",
		"google_credentials",
		"listings",
		"clients",
		"users",
	}
	for _, table := range tables {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			t.Fatalf("Failed to clean up table %s: %v", table, err)
		}
	}
}

// setupEphemeralSchemaDB creates a throwaway schema, migrates it, and
// registers a cleanup that drops it when the test ends.
func setupEphemeralSchemaDB(t TestingTB) *sql.DB {
	t.Helper()

	adminDB := openAndPing(t, testDSN(""), "admin database")

	schema := newSchemaName()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := adminDB.ExecContext(ctx, "CREATE SCHEMA IF NOT EXISTS "+schema); err != nil {
		_ = adminDB.Close()
		t.Fatalf("Failed to create schema %s: %v", schema, err)
	}

	db := openAndPing(t, testDSN(schema), "schema-scoped database")
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	// Cleanup registered before migrating so the schema is dropped even
	// when migrations fail.
	t.Logf("Using ephemeral schema: %s", schema)
	if tc, ok := any(t).(interface{ Cleanup(func()) }); ok {
		tc.Cleanup(func() {
			dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer dropCancel()
			_ = db.Close()
			if _, err := adminDB.ExecContext(dropCtx, "DROP SCHEMA IF EXISTS "+schema+" CASCADE"); err != nil {
				t.Logf("Warning: failed to drop schema %s: %v", schema, err)
			}
			_ = adminDB.Close()
		})
	}

	migCtx, migCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer migCancel()
	if err := migrate.Run(migCtx, db); err != nil {
		t.Fatal("Failed to run migrations in ephemeral schema:", err)
	}
	return db
}

func newSchemaName() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("t_%d", time.Now().UnixNano())
	}
	return "t_" + hex.EncodeToString(b)
}

// TestTime returns the fixed reference time used across tests.
func TestTime() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

// TestTimeProvider is a settable clock for repositories under test.
type TestTimeProvider struct {
	currentTime time.Time
}

func NewTestTimeProvider(startTime time.Time) *TestTimeProvider {
	return &TestTimeProvider{currentTime: startTime}
}

func (p *TestTimeProvider) Now() time.Time {
	return p.currentTime
}

// SetTime moves the clock to an absolute point.
func (p *TestTimeProvider) SetTime(t time.Time) {
	p.currentTime = t
}

// AddTime advances the clock by d.
func (p *TestTimeProvider) AddTime(d time.Duration) {
	p.currentTime = p.currentTime.Add(d)
}

// ConcurrentTestRunner races several operations and collects their errors.
type ConcurrentTestRunner struct {
	t TestingTB
}

func NewConcurrentTestRunner(t TestingTB) *ConcurrentTestRunner {
	return &ConcurrentTestRunner{t: t}
}

// RunConcurrent starts every function at once and waits for all of them.
// Errors come back positionally.
func (r *ConcurrentTestRunner) RunConcurrent(funcs ...func() error) []error {
	r.t.Helper()

	results := make(chan error, len(funcs))
	for _, fn := range funcs {
		go func() { results <- fn() }()
	}

	errs := make([]error, len(funcs))
	for i := range funcs {
		errs[i] = <-results
	}
	return errs
}

// AssertNoErrors fails the test on the first non-nil error.
func (r *ConcurrentTestRunner) AssertNoErrors(errs []error) {
	r.t.Helper()
	for i, err := range errs {
		if err != nil {
			r.t.Fatalf("Concurrent operation %d failed: %v", i, err)
		}
	}
}

// SetupTestRedis returns a flushed Redis client on a private DB index.
// The address comes from REDIS_ADDR, common CI addresses, or the compose
// test port 56379, in that order.
func SetupTestRedis(t TestingTB) *redis.Client {
	t.Helper()

	addr, ok := findTestRedis(t)
	if !ok {
		if requireRedis() {
			t.Fatal("Redis not available for testing")
		}
		t.Skip("Redis not available for testing")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: reserveRedisDB(t, addr)})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		if requireRedis() {
			t.Fatalf("Redis not available for testing at %s: %v", addr, err)
		}
		t.Skipf("Redis not available for testing at %s: %v", addr, err)
	}

	client.FlushDB(ctx)
	return client
}

func findTestRedis(t TestingTB) (string, bool) {
	t.Helper()

	candidates := []string{"redis:6379", "localhost:6379", "localhost:56379"}
	if ciAddr := os.Getenv("REDIS_ADDR"); ciAddr != "" {
		candidates = []string{ciAddr}
	}

	for _, addr := range candidates {
		if pingRedis(t, addr) {
			return addr, true
		}
	}
	return "", false
}

func pingRedis(t TestingTB, addr string) bool {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer func() { _ = client.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Logf("Redis not available at %s: %v", addr, err)
		return false
	}
	return true
}

// reserveRedisDB picks a Redis DB index for this test package. The lock key
// lives in DB 0 so FlushDB on the reserved DB cannot erase the reservation.
// TEST_REDIS_DB overrides the selection.
func reserveRedisDB(t TestingTB, addr string) int {
	if v := os.Getenv("TEST_REDIS_DB"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			return i
		}
		t.Logf("Invalid TEST_REDIS_DB=%q, falling back to auto-select", v)
	}

	meta := redis.NewClient(&redis.Options{Addr: addr, DB: 0})
	defer func() { _ = meta.Close() }()

	for i := 1; i <= 15; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		lockKey := fmt.Sprintf("seopulse:testutil:db_lock:%d", i)
		lockVal := fmt.Sprintf("%d:%d", os.Getpid(), time.Now().UnixNano())
		ok, err := meta.SetNX(ctx, lockKey, lockVal, 30*time.Minute).Result()
		cancel()
		if err != nil || !ok {
			continue
		}

		releaseRedisLockOnCleanup(t, addr, lockKey)
		t.Logf("Using Redis DB=%d for tests at %s", i, addr)
		return i
	}

	t.Logf("Falling back to Redis DB=1 for tests at %s", addr)
	return 1
}

func releaseRedisLockOnCleanup(t TestingTB, addr, lockKey string) {
	tc, ok := any(t).(interface{ Cleanup(func()) })
	if !ok {
		return
	}
	tc.Cleanup(func() {
		c := redis.NewClient(&redis.Options{Addr: addr, DB: 0})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := c.Del(ctx, lockKey).Err(); err != nil {
			t.Logf("warning: failed to release redis db lock %s: %v", lockKey, err)
		}
		_ = c.Close()
	})
}

// StringPtr returns a pointer to s. Handy for optional request fields.
func StringPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to i.
func IntPtr(i int) *int {
	return &i
}
