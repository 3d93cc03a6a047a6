package tabular

import "fmt"

// Backend names accepted by NewStore.
const (
	BackendExcel    = "excel"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// NewStore builds a Store for the configured backend. workbookPath is used
// by the excel backend, databaseURL by the postgres backend.
func NewStore(backend, workbookPath, databaseURL string) (Store, error) {
	switch backend {
	case BackendExcel, "":
		return NewExcelStore(workbookPath)
	case BackendPostgres:
		return NewGormStore(databaseURL)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
