package tabular

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"
)

// ExcelStore persists collections as sheets of an xlsx workbook, one sheet
// per collection with the header in row 1. This is the wire format the
// system has always used; the workbook stays readable in any spreadsheet
// application. The process owns the workbook file: every mutation is written
// through to disk before the call returns.
type ExcelStore struct {
	mu   sync.Mutex
	file *excelize.File
	path string
}

// NewExcelStore opens the workbook at path, creating it if absent.
func NewExcelStore(path string) (*ExcelStore, error) {
	if _, err := os.Stat(path); err == nil {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: open workbook %s: %v", ErrUnavailable, path, err)
		}
		return &ExcelStore{file: f, path: path}, nil
	}

	f := excelize.NewFile()
	s := &ExcelStore{file: f, path: path}
	if err := s.save(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ExcelStore) save() error {
	if err := s.file.SaveAs(s.path); err != nil {
		return fmt.Errorf("%w: save workbook %s: %v", ErrUnavailable, s.path, err)
	}
	return nil
}

func (s *ExcelStore) EnsureCollections(_ context.Context, schemas []Schema) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := false
	for _, schema := range schemas {
		idx, err := s.file.GetSheetIndex(schema.Name)
		if err != nil {
			return fmt.Errorf("%w: sheet index %s: %v", ErrUnavailable, schema.Name, err)
		}
		if idx >= 0 {
			continue
		}
		if _, err := s.file.NewSheet(schema.Name); err != nil {
			return fmt.Errorf("%w: create sheet %s: %v", ErrUnavailable, schema.Name, err)
		}
		header := make([]interface{}, len(schema.Headers))
		for i, h := range schema.Headers {
			header[i] = h
		}
		if err := s.file.SetSheetRow(schema.Name, "A1", &header); err != nil {
			return fmt.Errorf("%w: write header %s: %v", ErrUnavailable, schema.Name, err)
		}
		created = true
	}

	if created {
		// Drop the workbook's default sheet once real collections exist.
		if idx, err := s.file.GetSheetIndex("Sheet1"); err == nil && idx >= 0 {
			_ = s.file.DeleteSheet("Sheet1")
		}
		return s.save()
	}
	return nil
}

// rows returns the header and data rows of a collection.
func (s *ExcelStore) rows(collection string) ([]string, [][]string, error) {
	idx, err := s.file.GetSheetIndex(collection)
	if err != nil || idx < 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	all, err := s.file.GetRows(collection)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, collection, err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}

func (s *ExcelStore) Append(_ context.Context, collection string, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, data, err := s.rows(collection)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	cell, _ := excelize.CoordinatesToCellName(1, len(data)+2)
	if err := s.file.SetSheetRow(collection, cell, &cells); err != nil {
		return fmt.Errorf("%w: append to %s: %v", ErrUnavailable, collection, err)
	}
	return s.save()
}

func (s *ExcelStore) FindRowByKey(_ context.Context, collection string, keyCol int, value string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, data, err := s.rows(collection)
	if err != nil {
		return -1, err
	}
	return findInRows(data, keyCol, value)
}

func (s *ExcelStore) ReadAll(_ context.Context, collection string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	headers, data, err := s.rows(collection)
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(data))
	for _, row := range data {
		records = append(records, rowToRecord(headers, row))
	}
	return records, nil
}

func (s *ExcelStore) UpdateFields(_ context.Context, collection string, index int, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateLocked(collection, index, fields)
}

func (s *ExcelStore) UpdateByKey(_ context.Context, collection string, keyCol int, value string, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, data, err := s.rows(collection)
	if err != nil {
		return err
	}
	index, err := findInRows(data, keyCol, value)
	if err != nil {
		return err
	}
	return s.updateLocked(collection, index, fields)
}

func (s *ExcelStore) updateLocked(collection string, index int, fields map[string]string) error {
	headers, data, err := s.rows(collection)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(data) {
		return fmt.Errorf("%w: %s row %d", ErrRowNotFound, collection, index)
	}
	for col, value := range resolveFields(headers, fields) {
		cell, _ := excelize.CoordinatesToCellName(col+1, index+2)
		if err := s.file.SetCellStr(collection, cell, value); err != nil {
			return fmt.Errorf("%w: update %s: %v", ErrUnavailable, collection, err)
		}
	}
	return s.save()
}

func (s *ExcelStore) DeleteRow(_ context.Context, collection string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteLocked(collection, index)
}

func (s *ExcelStore) DeleteByKey(_ context.Context, collection string, keyCol int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, data, err := s.rows(collection)
	if err != nil {
		return err
	}
	index, err := findInRows(data, keyCol, value)
	if err != nil {
		return err
	}
	return s.deleteLocked(collection, index)
}

func (s *ExcelStore) deleteLocked(collection string, index int) error {
	_, data, err := s.rows(collection)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(data) {
		return fmt.Errorf("%w: %s row %d", ErrRowNotFound, collection, index)
	}
	if err := s.file.RemoveRow(collection, index+2); err != nil {
		return fmt.Errorf("%w: delete from %s: %v", ErrUnavailable, collection, err)
	}
	return s.save()
}

func (s *ExcelStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
