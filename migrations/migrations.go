package migrations

import (
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
)

// Postgres holds the goose migrations of the relational store
//
//go:embed postgres/*.sql
var Postgres embed.FS

// PostgresDir is the folder inside Postgres goose reads from
const PostgresDir = "postgres"

// Commands understood by Run
const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandStatus  = "status"
	CommandVersion = "version"
)

// gooseLogger routes goose output through the application logger
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.log.Infof(format, v...)
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.log.Fatalf(format, v...)
}

// Run applies command to the database using the embedded migrations
func Run(db *sql.DB, command string, log *logger.Logger) error {
	goose.SetBaseFS(Postgres)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect("postgres"); err != nil {
		return ierr.WithError(err).
			WithHint("Unsupported migration dialect").
			Mark(ierr.ErrSystem)
	}

	var err error
	switch command {
	case CommandUp:
		err = goose.Up(db, PostgresDir)
	case CommandDown:
		err = goose.Down(db, PostgresDir)
	case CommandStatus:
		err = goose.Status(db, PostgresDir)
	case CommandVersion:
		err = goose.Version(db, PostgresDir)
	default:
		return ierr.NewErrorf("unknown migration command %q", command).
			WithHintf("Use one of: %s, %s, %s, %s", CommandUp, CommandDown, CommandStatus, CommandVersion).
			Mark(ierr.ErrValidation)
	}
	if err != nil {
		return ierr.WithError(err).
			WithHintf("Migration %s failed", command).
			Mark(ierr.ErrDatabase)
	}
	return nil
}
