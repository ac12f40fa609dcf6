package indexer

import (
	"context"
	"fmt"

	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/rpc"
	"github.com/piresc/nebengjek-settlement/services/settlement"
)

const (
	DefaultPageLimit = 1000
	DefaultMaxPages  = 10
)

// Searcher pages through the signatures of a reference account
type Searcher struct {
	ledgerGW  settlement.LedgerGW
	pageLimit int
	maxPages  int
}

func NewSearcher(ledgerGW settlement.LedgerGW, pageLimit, maxPages int) *Searcher {
	if pageLimit <= 0 {
		pageLimit = DefaultPageLimit
	}
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &Searcher{ledgerGW: ledgerGW, pageLimit: pageLimit, maxPages: maxPages}
}

// FindReference returns the signature that the reference account was
// included in. Pages are newest first and walked backwards with a before
// cursor:
//   - a page shorter than the limit ends the search at its newest entry
//   - an empty page after a full one ends it at the previous page's newest entry
//   - an empty first page is ErrReferenceNotFound
//
// More than maxPages full pages is ErrSearchDepthExceeded.
func (s *Searcher) FindReference(ctx context.Context, reference ledger.PublicKey) (rpc.SignatureInfo, error) {
	var (
		before string
		prev   []rpc.SignatureInfo
	)

	for page := 0; page < s.maxPages; page++ {
		infos, err := s.ledgerGW.GetSignaturesForAddress(ctx, reference, before, s.pageLimit)
		if err != nil {
			return rpc.SignatureInfo{}, err
		}

		switch {
		case len(infos) == 0 && prev == nil:
			return rpc.SignatureInfo{}, settlement.ErrReferenceNotFound
		case len(infos) == 0:
			return prev[0], nil
		case len(infos) < s.pageLimit:
			return infos[0], nil
		}

		prev = infos
		before = infos[len(infos)-1].Signature
	}

	return rpc.SignatureInfo{}, fmt.Errorf("%w: %d pages of %d", settlement.ErrSearchDepthExceeded, s.maxPages, s.pageLimit)
}
