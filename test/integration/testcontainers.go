package integration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hostbay/console/pkg/keymaster"
	"github.com/hostbay/console/pkg/lifecycle"
	"github.com/hostbay/console/pkg/model"
	"github.com/hostbay/console/pkg/owner"
)

// TestContext holds all the resources needed for integration tests
type TestContext struct {
	DB          *gorm.DB
	RawDB       *sql.DB
	Container   testcontainers.Container
	DatabaseURL string
	Signer      *keymaster.Signer
	Resolver    *owner.Resolver
	KeyMaster   *keymaster.KeyMaster
	Hooks       *lifecycle.Hooks
}

// NewTestContext starts a PostgreSQL testcontainer, migrates the schema and
// wires the full key issuance stack against it.
func NewTestContext(ctx context.Context) (*TestContext, error) {
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("console_test"),
		tcpostgres.WithUsername("console"),
		tcpostgres.WithPassword("console"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}
	connStr := fmt.Sprintf("postgres://console:console@%s:%s/console_test?sslmode=disable", host, port.Port())

	signer, err := keymaster.NewSigner("sha256", "integration-test-secret")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Use(keymaster.NewPlugin(keymaster.WithSigner(signer))); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to install keymaster plugin: %w", err)
	}

	rawDB, err := db.DB()
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get raw db: %w", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.ServiceUser{},
		&model.Instance{},
		&model.ArchivedInstance{},
		&model.Server{},
		&model.Cluster{},
		&model.ClusterServer{},
		&model.Snapshot{},
		&model.Mount{},
		&model.OwnerHash{},
		&model.AppKey{},
	); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	resolver := owner.NewResolver(db, owner.Default())
	km := keymaster.New(db, resolver, signer)

	return &TestContext{
		DB:          db,
		RawDB:       rawDB,
		Container:   pgContainer,
		DatabaseURL: connStr,
		Signer:      signer,
		Resolver:    resolver,
		KeyMaster:   km,
		Hooks:       lifecycle.NewHooks(km),
	}, nil
}

// Close cleans up all test resources
func (tc *TestContext) Close(ctx context.Context) {
	if tc.RawDB != nil {
		_ = tc.RawDB.Close()
	}
	if tc.Container != nil {
		_ = tc.Container.Terminate(ctx)
	}
}
