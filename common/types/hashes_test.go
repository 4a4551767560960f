package types

import (
	"testing"

	"github.com/spacemeshos/go-scale/tester"
	"github.com/stretchr/testify/require"
)

func TestHexToHash32(t *testing.T) {
	h := CalcHash32([]byte("abcdefghijk"))

	parsed, err := HexToHash32(h.Hex())
	require.NoError(t, err)
	require.Equal(t, h, parsed)

	parsed, err = HexToHash32(h.Hex()[2:])
	require.NoError(t, err)
	require.Equal(t, h, parsed)

	short, err := HexToHash32("0x0102")
	require.NoError(t, err)
	require.Equal(t, byte(1), short[30])
	require.Equal(t, byte(2), short[31])

	_, err = HexToHash32("zz")
	require.Error(t, err)
}

func TestTransactionIDCompare(t *testing.T) {
	a := TransactionID{1}
	b := TransactionID{2}
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))
	require.Len(t, a.ShortString(), 5)
}

func FuzzHash32Consistency(f *testing.F) {
	tester.FuzzConsistency[Hash32](f)
}

func FuzzHash32Safety(f *testing.F) {
	tester.FuzzSafety[Hash32](f)
}

func FuzzEntryConsistency(f *testing.F) {
	tester.FuzzConsistency[Entry](f)
}
