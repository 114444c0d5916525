// Package source defines the contract record loaders implement and the
// error kinds they report.
package source

import (
	"context"

	"github.com/okian/execap/internal/domain/model"
)

// Source loads every fact table for one reporting year. Implementations
// collect malformed rows and missing files into the record set instead of
// failing the load; only infrastructure outages return an error.
type Source interface {
	Name() string
	Load(ctx context.Context, year int) (*model.RecordSet, error)
}
