package token

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
)

// FindAssociatedTokenAddress derives owner's token account for mint
func FindAssociatedTokenAddress(owner, mint ledger.PublicKey) (ledger.PublicKey, error) {
	addr, _, err := ledger.FindProgramAddress(
		[][]byte{owner[:], ProgramID[:], mint[:]},
		AssociatedTokenProgramID,
	)
	if err != nil {
		return ledger.PublicKey{}, fmt.Errorf("derive associated account for %s: %w", owner, err)
	}
	return addr, nil
}

const defaultDeriverCacheSize = 4096

type derivationKey struct {
	owner ledger.PublicKey
	mint  ledger.PublicKey
}

// Deriver memoises associated account derivation in an LRU
type Deriver struct {
	cache *lru.Cache
}

func NewDeriver(size int) (*Deriver, error) {
	if size <= 0 {
		size = defaultDeriverCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Deriver{cache: cache}, nil
}

func (d *Deriver) Associated(owner, mint ledger.PublicKey) (ledger.PublicKey, error) {
	key := derivationKey{owner: owner, mint: mint}
	if v, ok := d.cache.Get(key); ok {
		return v.(ledger.PublicKey), nil
	}
	addr, err := FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return ledger.PublicKey{}, err
	}
	d.cache.Add(key, addr)
	return addr, nil
}

func (d *Deriver) Len() int {
	return d.cache.Len()
}
