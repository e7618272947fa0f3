package main

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/apex/log"
	uuid "github.com/satori/go.uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gameStore persists games. Missing games are reported as
// gorm.ErrRecordNotFound by every implementation.
type gameStore interface {
	create(game *Game) error
	get(id uuid.UUID) (*Game, error)
	list() ([]Game, error)
	save(game *Game) error
	// stale lists running games where an agent is to move and nothing
	// happened since before.
	stale(before time.Time) ([]Game, error)
	// purge deletes finished games no user took part in.
	purge() error
	close() error
}

var store gameStore

func openStore(cfg config) (gameStore, error) {
	if cfg.store == "memory" {
		return newMemoryStore(), nil
	}
	return openPostgres(cfg.dbname)
}

type gormStore struct {
	db *gorm.DB
}

func openPostgres(dbname string) (*gormStore, error) {
	connStr := strings.Join([]string{"dbname", dbname}, "=")

	database, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Silent),
		QueryFields: true,
	})
	if err != nil {
		log.WithError(err).WithField("connStr", connStr).Error("failed to connect database")
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}

	// SetMaxIdleConns sets the maximum number of connections in the idle connection pool.
	sqlDB.SetMaxIdleConns(10)
	// SetMaxOpenConns sets the maximum number of open connections to the database.
	sqlDB.SetMaxOpenConns(100)
	// SetConnMaxLifetime sets the maximum amount of time a connection may be reused.
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := database.AutoMigrate(&Game{}); err != nil {
		return nil, err
	}
	return &gormStore{db: database}, nil
}

func (s *gormStore) create(game *Game) error {
	return s.db.Create(game).Error
}

func (s *gormStore) get(id uuid.UUID) (*Game, error) {
	var game Game
	if err := s.db.First(&game, Game{GameID: id}).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *gormStore) list() ([]Game, error) {
	var games []Game
	if err := s.db.Order("id").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (s *gormStore) save(game *Game) error {
	return s.db.Save(game).Error
}

func (s *gormStore) stale(before time.Time) ([]Game, error) {
	var games []Game
	if err := s.db.Where("updated_at < ?", before).Where(Game{ActiveAgentType: agentType}).Not(Game{End: true}).Order("id").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (s *gormStore) purge() error {
	return s.db.Where(Game{End: true}).Not(Game{WhiteType: userType}).Not(Game{BlackType: userType}).Delete(&Game{}).Error
}

func (s *gormStore) close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func idleError(message string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if errors.Is(err, http.ErrServerClosed) {
		return
	}
	e := err
	for errors.Unwrap(e) != nil {
		e = errors.Unwrap(e)
	}
	if e.Error() == "sql: database is closed" {
		time.Sleep(1 * time.Second)
		return
	}
	log.WithField("type", reflect.TypeOf(err)).WithError(err).Error(message)
	panic(err)
}
