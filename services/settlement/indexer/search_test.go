package indexer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/rpc"
	"github.com/piresc/nebengjek-settlement/services/settlement"
	"github.com/piresc/nebengjek-settlement/services/settlement/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(prefix string, n int) []rpc.SignatureInfo {
	infos := make([]rpc.SignatureInfo, n)
	for i := range infos {
		infos[i] = rpc.SignatureInfo{Signature: fmt.Sprintf("%s-%d", prefix, i)}
	}
	return infos
}

func newReference(t *testing.T) ledger.PublicKey {
	t.Helper()
	ref, err := ledger.NewReference()
	require.NoError(t, err)
	return ref
}

func TestFindReference(t *testing.T) {
	ref := ledger.MustPublicKey("7SMfVRrJw75vPzHCQ3ckUCT9igMRre8VHmodTbaVv4R")

	tests := []struct {
		name     string
		pages    [][]rpc.SignatureInfo
		expected string
		err      error
	}{
		{
			name:     "short first page returns its newest entry",
			pages:    [][]rpc.SignatureInfo{page("a", 2)},
			expected: "a-0",
		},
		{
			name:     "short page after full page",
			pages:    [][]rpc.SignatureInfo{page("a", 3), page("b", 1)},
			expected: "b-0",
		},
		{
			name:     "empty page after full page returns previous newest",
			pages:    [][]rpc.SignatureInfo{page("a", 3), page("b", 3), {}},
			expected: "b-0",
		},
		{
			name:  "empty first page",
			pages: [][]rpc.SignatureInfo{{}},
			err:   settlement.ErrReferenceNotFound,
		},
		{
			name:  "too many full pages",
			pages: [][]rpc.SignatureInfo{page("a", 3), page("b", 3), page("c", 3), page("d", 3)},
			err:   settlement.ErrSearchDepthExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gw := mocks.NewMockLedgerGW(ctrl)

			before := ""
			calls := make([]*gomock.Call, 0, len(tt.pages))
			for i, p := range tt.pages {
				if i == 3 {
					break
				}
				calls = append(calls, gw.EXPECT().GetSignaturesForAddress(gomock.Any(), ref, before, 3).Return(p, nil))
				if len(p) > 0 {
					before = p[len(p)-1].Signature
				}
			}
			gomock.InOrder(calls...)

			s := NewSearcher(gw, 3, 3)

			// Act
			info, err := s.FindReference(context.Background(), ref)

			// Assert
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, info.Signature)
		})
	}
}

func TestFindReference_PropagatesLedgerErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mocks.NewMockLedgerGW(ctrl)
	ref := newReference(t)

	gw.EXPECT().GetSignaturesForAddress(gomock.Any(), ref, "", DefaultPageLimit).Return(nil, rpc.ErrNetworkUnavailable)

	_, err := NewSearcher(gw, 0, 0).FindReference(context.Background(), ref)
	assert.True(t, errors.Is(err, rpc.ErrNetworkUnavailable))
}
