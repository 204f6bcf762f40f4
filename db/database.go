package db

import (
	"errors"
	"log"

	"github.com/captainblair/movie-recommendation-api/configs"
	"github.com/captainblair/movie-recommendation-api/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Database struct {
	db *gorm.DB
}

func NewDatabase() (*Database, error) {
	db, err := gorm.Open(
		postgres.Open(configs.GetConfigs().DbUrl),
		&gorm.Config{
			SkipDefaultTransaction: true,
			PrepareStmt:            true,
			TranslateError:         true,
		},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SetMaxIdleConns sets the maximum number of connections in the idle connection pool.
	sqlDB.SetMaxIdleConns(10)
	// SetMaxOpenConns sets the maximum number of open connections to the database.
	sqlDB.SetMaxOpenConns(100)

	return &Database{db: db}, nil
}

// NewDatabaseFromGorm wraps an already opened connection.
func NewDatabaseFromGorm(db *gorm.DB) *Database {
	return &Database{db: db}
}

// Close releases the connection pool. Call it once on shutdown.
func (d *Database) Close() {
	sqlDB, err := d.db.DB()
	if err != nil {
		log.Printf("could not get database pool: %s", err)
		return
	}
	if err = sqlDB.Close(); err != nil {
		log.Printf("could not close database pool: %s", err)
	}
}

func (d *Database) GetDB() *gorm.DB {
	return d.db
}

// Migrate creates or updates the tables in dependency order.
func (d *Database) Migrate() error {
	return d.db.AutoMigrate(
		&model.User{},
		&model.Movie{},
		&model.UserFavoriteMovie{},
		&model.MovieRating{},
	)
}

//------------------------------------------
//------------------------------------------

// IsConnectionNotAcceptingError matches postgres refusing connections while it
// starts up or shuts down.
func IsConnectionNotAcceptingError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "57P03"
	}
	return false
}

func IsUniqueViolationError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
