package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/saeidalz13/battleship-setup/db/sqlc"
)

// One fleet setup run writes a handful of rows, a small pool is plenty.
const (
	maxOpenConns = 4
	maxIdleConns = 2
	connMaxLife  = time.Minute * 15
)

const defaultDatabaseName = "battleship"

// Analytics is the placement analytics store of one process: the pool,
// its migrated schema and the managers bound to this server's ip.
type Analytics struct {
	db        *sql.DB
	DbManager sqlc.DbManager
}

// MustOpenAnalytics connects, migrates the analytics tables and binds the
// managers to serverIpNet. Any failure panics; analytics is only opened
// when a database url was configured.
func MustOpenAnalytics(ctx context.Context, psqlUrl, migrationDir string, serverIpNet net.IPNet) *Analytics {
	db := MustConnectToDb(ctx, psqlUrl)
	MustMigrate(db, databaseName(psqlUrl), migrationSource(migrationDir))

	return &Analytics{
		db:        db,
		DbManager: sqlc.NewDbManager(sqlc.New(db), serverIpNet),
	}
}

func (a *Analytics) Close() error {
	return a.db.Close()
}

// migrationSource turns a bare directory into a file source url. Values
// that already carry a scheme are used as they are.
func migrationSource(migrationDir string) string {
	if strings.Contains(migrationDir, "://") {
		return migrationDir
	}
	return "file://" + strings.TrimPrefix(migrationDir, "./")
}

// databaseName is the database named in a postgres url, used to label
// the migrate driver. Key/value connection strings fall back to the
// default name.
func databaseName(psqlUrl string) string {
	u, err := url.Parse(psqlUrl)
	if err != nil || u.Scheme == "" {
		return defaultDatabaseName
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return defaultDatabaseName
}

func MustMigrate(db *sql.DB, dbName, sourceUrl string) {
	driver, err := postgres.WithInstance(db, &postgres.Config{
		DatabaseName: dbName,
	})
	if err != nil {
		panic(err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceUrl, dbName, driver)
	if err != nil {
		panic(err)
	}

	// a fresh database has no version yet
	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		panic(err)
	}
	if dirty {
		panic(fmt.Sprintf("analytics schema is dirty at version %d", version))
	}
	log.Printf("analytics schema\tdb: %s\tversion: %d\n", dbName, version)

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return
		}
		panic(err)
	}

	version, _, _ = m.Version()
	log.Printf("analytics schema migrated\tdb: %s\tversion: %d\n", dbName, version)
}

func MustConnectToDb(ctx context.Context, psqlUrl string) *sql.DB {
	db, err := sql.Open("postgres", psqlUrl)
	if err != nil {
		panic(err)
	}

	// Open may only validate its arguments
	pingCtx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		panic(err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLife)
	return db
}
