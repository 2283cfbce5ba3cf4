package tendermint

import (
	"github.com/celer-network/cosmos-sidecar/store/models"
	"github.com/pkg/errors"
)

var (
	prefixOrigin = []byte("tx::origin::")
	prefixResult = []byte("tx::result::")
)

func (store *TMStore) PutOrigin(hash string, origin *models.OriginRecord) error {
	if hash == "" {
		return errors.New("empty origin hash")
	}
	return set(store.nsOrigin, []byte(hash), origin)
}

func (store *TMStore) GetOrigin(hash string) (*models.OriginRecord, error) {
	var origin models.OriginRecord
	err := get(store.nsOrigin, []byte(hash), &origin)
	if err != nil {
		return nil, err
	}
	return &origin, nil
}

func (store *TMStore) PutResult(hash string, result *models.ResultRecord) error {
	if hash == "" {
		return errors.New("empty result hash")
	}
	return set(store.nsResult, []byte(hash), result)
}

func (store *TMStore) GetResult(hash string) (*models.ResultRecord, error) {
	var result models.ResultRecord
	err := get(store.nsResult, []byte(hash), &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
