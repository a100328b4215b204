package testutils

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"testing"
	"time"

	"project-tracker-backend/internal/config"
	"project-tracker-backend/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	testDBUser     = "tracker"
	testDBPassword = "tracker"
	testDBName     = "project_tracker_test"
)

// truncation order, children first
var trackerTables = []string{
	"comments",
	"tasks",
	"features",
	"projects",
	"team_memberships",
	"teams",
	"users",
	"types",
	"statuses",
	"roles",
}

// One postgres container per test binary, shared by every suite in it
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// BaseTestSuite hands a migrated database to repository integration tests
type BaseTestSuite struct {
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container on first use and returns a handle to it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = startPostgres() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// Main runs the tests of an integration package and always removes the container,
// also when the run is interrupted.
func Main(m *testing.M) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		logrus.Warn("integration tests interrupted, removing postgres container")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	CleanupSharedContainer()
	os.Exit(code)
}

// CleanupSharedContainer closes the pool and purges the container
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool == nil || sharedResource == nil {
		return
	}
	if err := sharedPool.Purge(sharedResource); err != nil {
		logrus.WithError(err).Warn("could not purge postgres container")
	}
	sharedResource = nil
	sharedPool = nil
}

// SetupTest empties every tracker table
func (s *BaseTestSuite) SetupTest() { s.CleanTestDB() }

// TearDownTest empties every tracker table
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite leaves the container running for the next suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates the tracker tables and resets their sequences
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	for _, table := range trackerTables {
		if m.HasTable(table) {
			s.DB.Exec(`TRUNCATE TABLE "` + table + `" RESTART IDENTITY CASCADE`)
		}
	}
}

// SeedLookups inserts the default roles, statuses and types that users, features and tasks reference
func (s *BaseTestSuite) SeedLookups() error {
	data := database.DefaultSeedData()
	data.Users = nil
	_, err := database.Seed(s.DB, data, nil)
	return err
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + testDBUser,
			"POSTGRES_PASSWORD=" + testDBPassword,
			"POSTGRES_DB=" + testDBName,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		testDBUser, testDBPassword, resource.GetPort("5432/tcp"), testDBName)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		if err := ping(dsn); err != nil {
			return err
		}
		db, err := database.Initialize(dsn, &database.Options{LogLevel: gormlogger.Silent})
		if err != nil {
			return err
		}
		sharedDB = db
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to docker database: %w", err)
	}

	sharedConfig = &config.Config{
		Environment:     "test",
		Port:            "8080",
		LogLevel:        "debug",
		DatabaseURL:     dsn,
		DatabaseName:    testDBName,
		TokenTTLMinutes: 60,
	}

	logrus.WithField("dsn", dsn).Info("postgres test container ready")
	return nil
}

// ping opens a plain pgx connection, cheaper to retry than a full gorm setup
func ping(dsn string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)
	return conn.Ping(ctx)
}
