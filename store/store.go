package store

import (
	"github.com/celer-network/cosmos-sidecar/store/models"
	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when no record exists under the requested key
	ErrNotFound = errors.New("not found")
)

// Store maps transaction hashes to origin and result records. Hash arguments
// are always the lowercase, unprefixed hex form.
type Store interface {
	PutOrigin(hash string, origin *models.OriginRecord) error
	GetOrigin(hash string) (*models.OriginRecord, error)

	PutResult(hash string, result *models.ResultRecord) error
	GetResult(hash string) (*models.ResultRecord, error)

	// InsertHead records the latest finalized head whose transactions have
	// been resolved.
	InsertHead(head *models.Header) error

	// LastHead returns the head stored by InsertHead, nil if none exists.
	LastHead() (*models.Header, error)

	Close() error
}
