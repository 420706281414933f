package storage

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const (
	ledgerFileName = "worktick.db"

	// sessionHistoryLimit bounds the resume history, matching the
	// five-entry list users can pick a previous total from.
	sessionHistoryLimit = 5
)

type ledgerRow struct {
	ID           uint      `gorm:"primaryKey"`
	TotalSeconds int64     `gorm:"not null;default:0"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (ledgerRow) TableName() string { return "ledger" }

type sessionRow struct {
	ID           uint      `gorm:"primaryKey"`
	TotalSeconds int64     `gorm:"not null"`
	EndedAt      time.Time `gorm:"not null;index"`
}

func (sessionRow) TableName() string { return "sessions" }

// LedgerDB persists the running total and the bounded session history
// in a sqlite file. The single snapshot row is rewritten on every
// ledger mutation so a crash loses at most one poll interval.
type LedgerDB struct {
	mu sync.Mutex
	db *gorm.DB
}

// OpenLedger opens (or creates) the ledger database under dir.
func OpenLedger(dir string) (*LedgerDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create state directory")
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, ledgerFileName)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open ledger database")
	}

	if err := db.AutoMigrate(&ledgerRow{}, &sessionRow{}); err != nil {
		return nil, errors.Wrap(err, "migrate ledger schema")
	}

	return &LedgerDB{db: db}, nil
}

// Load returns the persisted running total, or zero when none exists.
func (ledger *LedgerDB) Load() (time.Duration, error) {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	var row ledgerRow
	result := ledger.db.First(&row, 1)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, errors.Wrap(result.Error, "load ledger snapshot")
	}
	return time.Duration(row.TotalSeconds) * time.Second, nil
}

// Save upserts the single snapshot row with the current total.
func (ledger *LedgerDB) Save(total time.Duration) error {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	row := ledgerRow{ID: 1, TotalSeconds: int64(total / time.Second)}
	result := ledger.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row)
	return errors.Wrap(result.Error, "save ledger snapshot")
}

// RecordSession appends a finished total to the history, dropping an
// identical earlier entry and trimming to the newest entries.
func (ledger *LedgerDB) RecordSession(total time.Duration) error {
	seconds := int64(total / time.Second)
	if seconds <= 0 {
		return nil
	}

	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	return ledger.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("total_seconds = ?", seconds).Delete(&sessionRow{}).Error; err != nil {
			return errors.Wrap(err, "dedupe session history")
		}
		if err := tx.Create(&sessionRow{TotalSeconds: seconds, EndedAt: time.Now()}).Error; err != nil {
			return errors.Wrap(err, "record session")
		}

		var keep []uint
		if err := tx.Model(&sessionRow{}).
			Order("ended_at DESC, id DESC").
			Limit(sessionHistoryLimit).
			Pluck("id", &keep).Error; err != nil {
			return errors.Wrap(err, "list newest sessions")
		}
		if err := tx.Where("id NOT IN ?", keep).Delete(&sessionRow{}).Error; err != nil {
			return errors.Wrap(err, "trim session history")
		}
		return nil
	})
}

// LastSession returns the most recently recorded total, or zero when
// the history is empty.
func (ledger *LedgerDB) LastSession() (time.Duration, error) {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	var row sessionRow
	result := ledger.db.Order("ended_at DESC, id DESC").First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, errors.Wrap(result.Error, "load last session")
	}
	return time.Duration(row.TotalSeconds) * time.Second, nil
}

// History returns recorded totals, newest first.
func (ledger *LedgerDB) History() ([]time.Duration, error) {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	var rows []sessionRow
	result := ledger.db.Order("ended_at DESC, id DESC").Limit(sessionHistoryLimit).Find(&rows)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "load session history")
	}

	totals := make([]time.Duration, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, time.Duration(row.TotalSeconds)*time.Second)
	}
	return totals, nil
}

// Close releases the underlying connection.
func (ledger *LedgerDB) Close() error {
	sqlDB, err := ledger.db.DB()
	if err != nil {
		return errors.Wrap(err, "get underlying sql.DB")
	}
	return sqlDB.Close()
}
