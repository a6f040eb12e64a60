package database

import (
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/affaneka/portal/config"
	"github.com/affaneka/portal/database/model"
	"github.com/affaneka/portal/util/crypto"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// Content table names. Both hold model.ContentItem rows.
const (
	AchievementTable = "achievements"
	WorkTable        = "works"
)

type defaultAccount struct {
	username string
	password string
	role     string
}

var defaultAccounts = []defaultAccount{
	{username: "affan", password: "affaneka1412", role: "admin"},
	{username: "mod", password: "mod123", role: "moderator"},
}

func initModels() error {
	if err := db.AutoMigrate(&model.Account{}); err != nil {
		log.Printf("Error auto migrating accounts: %v", err)
		return err
	}
	for _, table := range []string{AchievementTable, WorkTable} {
		if err := db.Table(table).AutoMigrate(&model.ContentItem{}); err != nil {
			log.Printf("Error auto migrating %s: %v", table, err)
			return err
		}
	}
	return nil
}

func countAccounts() (int64, error) {
	// deleted rows count too: seeding must not run again after a soft delete
	var count int64
	err := db.Model(&model.Account{}).Count(&count).Error
	return count, err
}

// initDefaultAccounts seeds the admin and moderator accounts when the table
// is empty. A failing count forces migration once more and retries, covering
// a store that lost its tables.
func initDefaultAccounts() error {
	count, err := countAccounts()
	if err != nil {
		log.Printf("Error counting accounts, forcing migration: %v", err)
		if err := initModels(); err != nil {
			return err
		}
		if count, err = countAccounts(); err != nil {
			return err
		}
	}
	if count > 0 {
		return nil
	}
	for _, account := range defaultAccounts {
		hash, err := crypto.HashPasswordAsBcrypt(account.password)
		if err != nil {
			return err
		}
		record := &model.Account{
			Username:     account.username,
			PasswordHash: hash,
			Role:         account.role,
			Active:       true,
		}
		if err := db.Create(record).Error; err != nil {
			return err
		}
	}
	log.Printf("Default accounts inserted.")
	return nil
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	// a failed seed must never prevent the server from starting
	if err := initDefaultAccounts(); err != nil {
		log.Printf("Error seeding default accounts: %v", err)
	}

	return nil
}

func CloseDB() error {
	if db != nil {
		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

func Checkpoint() error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
