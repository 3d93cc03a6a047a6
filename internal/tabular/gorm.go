package tabular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// collectionModel stores one collection's header row.
type collectionModel struct {
	Name    string         `gorm:"primaryKey;size:64"`
	Headers datatypes.JSON `gorm:"not null"`
}

func (collectionModel) TableName() string { return "tabular_collections" }

// rowModel stores one positional data row. Position is the 0-based data row
// index; deletes close the gap so positions stay dense.
type rowModel struct {
	ID         uint           `gorm:"primaryKey"`
	Collection string         `gorm:"size:64;not null;index:idx_rows_collection_position,priority:1"`
	Position   int            `gorm:"not null;index:idx_rows_collection_position,priority:2"`
	Cells      datatypes.JSON `gorm:"not null"`
}

func (rowModel) TableName() string { return "tabular_rows" }

// GormStore keeps the positional-row contract but persists in Postgres, for
// deployments that have outgrown the workbook file. Keyed mutations run in
// transactions, which is what makes UpdateByKey and DeleteByKey safe against
// concurrent writers.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore connects to Postgres and migrates the two backing tables.
func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: connect: %v", ErrUnavailable, err)
	}
	if err := db.AutoMigrate(&collectionModel{}, &rowModel{}); err != nil {
		return nil, fmt.Errorf("%w: migrate: %v", ErrUnavailable, err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) EnsureCollections(ctx context.Context, schemas []Schema) error {
	for _, schema := range schemas {
		headers, err := json.Marshal(schema.Headers)
		if err != nil {
			return fmt.Errorf("%w: marshal headers: %v", ErrUnavailable, err)
		}
		record := collectionModel{Name: schema.Name, Headers: headers}
		err = s.db.WithContext(ctx).
			Where(collectionModel{Name: schema.Name}).
			FirstOrCreate(&record).Error
		if err != nil {
			return fmt.Errorf("%w: ensure %s: %v", ErrUnavailable, schema.Name, err)
		}
	}
	return nil
}

func (s *GormStore) headers(ctx context.Context, tx *gorm.DB, collection string) ([]string, error) {
	var record collectionModel
	err := tx.WithContext(ctx).First(&record, "name = ?", collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load headers %s: %v", ErrUnavailable, collection, err)
	}
	var headers []string
	if err := json.Unmarshal(record.Headers, &headers); err != nil {
		return nil, fmt.Errorf("%w: decode headers %s: %v", ErrUnavailable, collection, err)
	}
	return headers, nil
}

func (s *GormStore) dataRows(ctx context.Context, tx *gorm.DB, collection string) ([][]string, []rowModel, error) {
	var stored []rowModel
	err := tx.WithContext(ctx).
		Where("collection = ?", collection).
		Order("position").
		Find(&stored).Error
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, collection, err)
	}
	rows := make([][]string, 0, len(stored))
	for _, r := range stored {
		var row []string
		if err := json.Unmarshal(r.Cells, &row); err != nil {
			return nil, nil, fmt.Errorf("%w: decode row %s/%d: %v", ErrUnavailable, collection, r.Position, err)
		}
		rows = append(rows, row)
	}
	return rows, stored, nil
}

func (s *GormStore) Append(ctx context.Context, collection string, row []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.headers(ctx, tx, collection); err != nil {
			return err
		}
		var count int64
		if err := tx.WithContext(ctx).Model(&rowModel{}).
			Where("collection = ?", collection).
			Count(&count).Error; err != nil {
			return fmt.Errorf("%w: count %s: %v", ErrUnavailable, collection, err)
		}
		cells, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("%w: marshal row: %v", ErrUnavailable, err)
		}
		record := rowModel{Collection: collection, Position: int(count), Cells: cells}
		if err := tx.WithContext(ctx).Create(&record).Error; err != nil {
			return fmt.Errorf("%w: append to %s: %v", ErrUnavailable, collection, err)
		}
		return nil
	})
}

func (s *GormStore) FindRowByKey(ctx context.Context, collection string, keyCol int, value string) (int, error) {
	if _, err := s.headers(ctx, s.db, collection); err != nil {
		return -1, err
	}
	rows, _, err := s.dataRows(ctx, s.db, collection)
	if err != nil {
		return -1, err
	}
	return findInRows(rows, keyCol, value)
}

func (s *GormStore) ReadAll(ctx context.Context, collection string) ([]Record, error) {
	headers, err := s.headers(ctx, s.db, collection)
	if err != nil {
		return nil, err
	}
	rows, _, err := s.dataRows(ctx, s.db, collection)
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, rowToRecord(headers, row))
	}
	return records, nil
}

func (s *GormStore) UpdateFields(ctx context.Context, collection string, index int, fields map[string]string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.updateInTx(ctx, tx, collection, index, fields)
	})
}

func (s *GormStore) UpdateByKey(ctx context.Context, collection string, keyCol int, value string, fields map[string]string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		rows, _, err := s.dataRows(ctx, tx, collection)
		if err != nil {
			return err
		}
		index, err := findInRows(rows, keyCol, value)
		if err != nil {
			return err
		}
		return s.updateInTx(ctx, tx, collection, index, fields)
	})
}

func (s *GormStore) updateInTx(ctx context.Context, tx *gorm.DB, collection string, index int, fields map[string]string) error {
	headers, err := s.headers(ctx, tx, collection)
	if err != nil {
		return err
	}

	var record rowModel
	err = tx.WithContext(ctx).
		Where("collection = ? AND position = ?", collection, index).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s row %d", ErrRowNotFound, collection, index)
	}
	if err != nil {
		return fmt.Errorf("%w: load %s/%d: %v", ErrUnavailable, collection, index, err)
	}

	var row []string
	if err := json.Unmarshal(record.Cells, &row); err != nil {
		return fmt.Errorf("%w: decode row %s/%d: %v", ErrUnavailable, collection, index, err)
	}
	for len(row) < len(headers) {
		row = append(row, "")
	}
	for col, value := range resolveFields(headers, fields) {
		row[col] = value
	}

	cells, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("%w: marshal row: %v", ErrUnavailable, err)
	}
	record.Cells = cells
	if err := tx.WithContext(ctx).Save(&record).Error; err != nil {
		return fmt.Errorf("%w: update %s/%d: %v", ErrUnavailable, collection, index, err)
	}
	return nil
}

func (s *GormStore) DeleteRow(ctx context.Context, collection string, index int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.deleteInTx(ctx, tx, collection, index)
	})
}

func (s *GormStore) DeleteByKey(ctx context.Context, collection string, keyCol int, value string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		rows, _, err := s.dataRows(ctx, tx, collection)
		if err != nil {
			return err
		}
		index, err := findInRows(rows, keyCol, value)
		if err != nil {
			return err
		}
		return s.deleteInTx(ctx, tx, collection, index)
	})
}

func (s *GormStore) deleteInTx(ctx context.Context, tx *gorm.DB, collection string, index int) error {
	result := tx.WithContext(ctx).
		Where("collection = ? AND position = ?", collection, index).
		Delete(&rowModel{})
	if result.Error != nil {
		return fmt.Errorf("%w: delete %s/%d: %v", ErrUnavailable, collection, index, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s row %d", ErrRowNotFound, collection, index)
	}
	// Shift subsequent rows up so positions stay dense.
	err := tx.WithContext(ctx).Model(&rowModel{}).
		Where("collection = ? AND position > ?", collection, index).
		UpdateColumn("position", gorm.Expr("position - 1")).Error
	if err != nil {
		return fmt.Errorf("%w: reindex %s: %v", ErrUnavailable, collection, err)
	}
	return nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
