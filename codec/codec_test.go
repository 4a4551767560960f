package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-txview/common/types"
)

func TestDecodeNew(t *testing.T) {
	tx := &types.Transaction{
		ID:      types.TransactionID{1, 2},
		Final:   true,
		Time:    time.Unix(1_700_000_000, 0),
		Raw:     []byte{0xbe, 0xef},
		Entries: []types.Entry{{Kind: types.EntryReceive, Address: "to", Amount: 5}},
	}
	first, err := Encode(tx)
	require.NoError(t, err)
	second, err := Encode(tx)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// the returned slice does not alias the pooled buffer
	first[0] ^= 0xff
	third, err := Encode(tx)
	require.NoError(t, err)
	require.Equal(t, second, third)

	decoded, err := DecodeNew[types.Transaction](second)
	require.NoError(t, err)
	require.Equal(t, tx.ID, decoded.ID)
	require.Equal(t, tx.Raw, decoded.Raw)
	require.Equal(t, tx.Entries, decoded.Entries)
}

func TestDecode_Truncated(t *testing.T) {
	buf, err := Encode(&types.Transaction{ID: types.TransactionID{3}, Raw: []byte{1, 2, 3}})
	require.NoError(t, err)

	_, err = DecodeNew[types.Transaction](buf[:len(buf)/2])
	require.ErrorContains(t, err, "decode *types.Transaction")
}
