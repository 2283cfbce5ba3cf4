package tendermint

import (
	esStore "github.com/celer-network/cosmos-sidecar/store"
	"github.com/celer-network/cosmos-sidecar/store/models"

	"github.com/pkg/errors"
)

var (
	prefixHead  = []byte("head::")
	keyLastHead = []byte("last")
)

// InsertHead stores head as the last resolved head if it is not lower than the
// one already stored.
func (store *TMStore) InsertHead(head *models.Header) error {
	lastHead, err := store.LastHead()
	if err != nil {
		return err
	}
	if lastHead != nil && head.Number < lastHead.Number {
		return nil
	}
	return errors.Wrap(set(store.nsHead, keyLastHead, head), "error updating last head")
}

// LastHead returns the last resolved head, nil if none has been stored yet.
func (store *TMStore) LastHead() (*models.Header, error) {
	var head models.Header
	err := get(store.nsHead, keyLastHead, &head)
	if err != nil {
		if errors.Is(err, esStore.ErrNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "could not get last head")
	}
	return &head, nil
}
