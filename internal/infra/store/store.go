// Package store defines the proposal storage port and its implementations.
// The core only needs get-by-id / put-by-id / list; durability is the
// implementation's concern.
package store

import (
	"context"

	"github.com/atharva-sardesai/proposal/internal/domain/proposal"
)

type Store interface {
	Get(ctx context.Context, id string) (proposal.Record, bool, error)
	Put(ctx context.Context, rec proposal.Record) error
	List(ctx context.Context) ([]proposal.Record, error)
}
