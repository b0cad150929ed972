package cache

import (
	"github.com/dgraph-io/ristretto"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
)

var (
	// B is the raw ristretto backend; writes are buffered, call
	// B.Wait() when a set must be visible before the next read.
	B *ristretto.Cache
	S *ristretto_store.RistrettoStore
)

func NewStore() error {
	backend, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 27,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	B = backend
	S = ristretto_store.NewRistretto(backend)
	return nil
}
