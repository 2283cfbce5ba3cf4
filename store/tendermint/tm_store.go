package tendermint

import (
	"github.com/celer-network/cosmos-sidecar/store"
	"github.com/pkg/errors"
	tmdb "github.com/tendermint/tm-db"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	errStrOpenDB = "could not open db"
)

// TMStore is a Store implementation using Tendermint tm-db
type TMStore struct {
	db       tmdb.DB
	nsOrigin *tmdb.PrefixDB
	nsResult *tmdb.PrefixDB
	nsHead   *tmdb.PrefixDB
}

var _ store.Store = (*TMStore)(nil)

// NewTMStore creates a new TMStore
func NewTMStore(db tmdb.DB) *TMStore {
	return &TMStore{
		db:       db,
		nsOrigin: tmdb.NewPrefixDB(db, prefixOrigin),
		nsResult: tmdb.NewPrefixDB(db, prefixResult),
		nsHead:   tmdb.NewPrefixDB(db, prefixHead),
	}
}

// OpenTMStore opens, or creates, an on-disk database of the given backend
// ("goleveldb", "cleveldb", "boltdb", "rocksdb", "badgerdb" or "memdb").
func OpenTMStore(name string, backend string, dir string) (*TMStore, error) {
	db, err := tmdb.NewDB(name, tmdb.BackendType(backend), dir)
	if err != nil {
		return nil, errors.Wrap(err, errStrOpenDB)
	}
	return NewTMStore(db), nil
}

func (store *TMStore) Close() error {
	return store.db.Close()
}

// get will retrieve the binary data under the given key from the DB and decode it into the given
// entity. The provided entity needs to be a pointer to an initialized entity of the correct type.
func get(db tmdb.DB, key []byte, entity interface{}) error {
	value, err := db.Get(key)
	if err != nil {
		return errors.Wrap(err, "could not get data")
	}
	if value == nil {
		return store.ErrNotFound
	}
	err = msgpack.Unmarshal(value, entity)
	if err != nil {
		return errors.Wrap(err, "could not decode data")
	}
	return nil
}

// set will encode the given entity using MessagePack and synchronously write the resulting
// binary data under the provided key, so it is durable once set returns.
func set(db tmdb.DB, key []byte, entity interface{}) error {
	val, err := msgpack.Marshal(entity)
	if err != nil {
		return errors.Wrap(err, "could not encode entity")
	}
	err = db.SetSync(key, val)
	if err != nil {
		return errors.Wrap(err, "could not store data")
	}
	return nil
}
