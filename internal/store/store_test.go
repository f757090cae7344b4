package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

const (
	testIssuer = "HeyRMRK7L7APXSJ6L4zoH9cNN1vBxAKEbUAn8Bzw9rqjWnA"
	testBuyer  = "FqCJeGcPidYSsvvmT17fHVaYdE2nXMYgPsBn3CP9gugvZR5"
)

func buildTestCollection(id string) *schema.Collection {
	return &schema.Collection{
		ID:           id,
		Name:         "Kanaria Founders",
		Symbol:       "KANF",
		Max:          100,
		Metadata:     "ipfs://ipfs/QmYcWFQCY1bAzN5PNRKxnH2Ud5JCuHZESLWZSMEzHd9dU3",
		Issuer:       testIssuer,
		CurrentOwner: testIssuer,
		BlockNumber:  4892201,
		Events: datatypes.JSONSlice[schema.Event]{
			{Interaction: domain.RemarkEventMint.String(), Caller: testIssuer, BlockNumber: 4892201, Timestamp: time.Unix(1600000000, 0).UTC()},
		},
	}
}

func buildTestNFT(id, collectionID string) *schema.NFT {
	return &schema.NFT{
		ID:           id,
		Name:         "Founder #1",
		Instance:     "KANF",
		Transferable: true,
		CollectionID: collectionID,
		SN:           "0000000000000001",
		Metadata:     "ipfs://ipfs/QmavoTVbVHnGEUztnBT2p3rif3qBPeCfyyUE5v4Z7oFvs4",
		Price:        "0",
		Issuer:       testIssuer,
		CurrentOwner: testIssuer,
		BlockNumber:  4892300,
		Events: datatypes.JSONSlice[schema.Event]{
			{Interaction: domain.RemarkEventMintNFT.String(), Caller: testIssuer, BlockNumber: 4892300, Timestamp: time.Unix(1600000600, 0).UTC()},
		},
	}
}

// =============================================================================
// Test: Collections
// =============================================================================

func testCollections(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get non-existent collection returns nil", func(t *testing.T) {
		collection, err := store.GetCollection(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, collection)
	})

	t.Run("create and get collection", func(t *testing.T) {
		input := buildTestCollection("0aff6865bed3a66b-KANF")
		require.NoError(t, store.CreateCollection(ctx, input))

		collection, err := store.GetCollection(ctx, input.ID)
		require.NoError(t, err)
		require.NotNil(t, collection)
		assert.Equal(t, input.Name, collection.Name)
		assert.Equal(t, input.Symbol, collection.Symbol)
		assert.Equal(t, uint64(100), collection.Max)
		assert.Equal(t, testIssuer, collection.Issuer)
		assert.Equal(t, testIssuer, collection.CurrentOwner)
		require.Len(t, collection.Events, 1)
		assert.Equal(t, "MINT", collection.Events[0].Interaction)
		assert.Equal(t, uint64(4892201), collection.Events[0].BlockNumber)
	})

	t.Run("create duplicate collection fails", func(t *testing.T) {
		input := buildTestCollection("dup-KANF")
		require.NoError(t, store.CreateCollection(ctx, input))

		err := store.CreateCollection(ctx, buildTestCollection("dup-KANF"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCollectionAlreadyExists)
	})

	t.Run("save updates owner and history", func(t *testing.T) {
		input := buildTestCollection("save-KANF")
		require.NoError(t, store.CreateCollection(ctx, input))

		collection, err := store.GetCollection(ctx, input.ID)
		require.NoError(t, err)
		collection.CurrentOwner = testBuyer
		collection.Events = append(collection.Events, schema.Event{
			Interaction: domain.RemarkEventChangeIssuer.String(),
			Caller:      testIssuer,
			BlockNumber: 4892400,
			Meta:        testBuyer,
		})
		require.NoError(t, store.SaveCollection(ctx, collection))

		saved, err := store.GetCollection(ctx, input.ID)
		require.NoError(t, err)
		assert.Equal(t, testBuyer, saved.CurrentOwner)
		assert.Equal(t, testIssuer, saved.Issuer)
		require.Len(t, saved.Events, 2)
		assert.Equal(t, testBuyer, saved.Events[1].Meta)
	})
}

// =============================================================================
// Test: NFTs
// =============================================================================

func testNFTs(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get non-existent nft returns nil", func(t *testing.T) {
		nft, err := store.GetNFT(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, nft)
	})

	t.Run("create and get nft", func(t *testing.T) {
		input := buildTestNFT("4892300-KANF-KANF-0000000000000001", "KANF")
		require.NoError(t, store.CreateNFT(ctx, input))

		nft, err := store.GetNFT(ctx, input.ID)
		require.NoError(t, err)
		require.NotNil(t, nft)
		assert.Equal(t, "KANF", nft.CollectionID)
		assert.Equal(t, "0", nft.Price)
		assert.True(t, nft.Transferable)
		assert.False(t, nft.Burned)
		require.Len(t, nft.Events, 1)
	})

	t.Run("create duplicate nft fails", func(t *testing.T) {
		input := buildTestNFT("dup-nft", "KANF")
		require.NoError(t, store.CreateNFT(ctx, input))

		err := store.CreateNFT(ctx, buildTestNFT("dup-nft", "KANF"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNFTAlreadyExists)
	})

	t.Run("save stores u128 prices", func(t *testing.T) {
		input := buildTestNFT("price-nft", "KANF")
		require.NoError(t, store.CreateNFT(ctx, input))

		nft, err := store.GetNFT(ctx, input.ID)
		require.NoError(t, err)
		nft.Price = "340282366920938463463374607431768211455"
		require.NoError(t, store.SaveNFT(ctx, nft))

		saved, err := store.GetNFT(ctx, input.ID)
		require.NoError(t, err)
		assert.Equal(t, "340282366920938463463374607431768211455", saved.Price)
	})

	t.Run("save updates owner and burned flag", func(t *testing.T) {
		input := buildTestNFT("burn-nft", "KANF")
		require.NoError(t, store.CreateNFT(ctx, input))

		nft, err := store.GetNFT(ctx, input.ID)
		require.NoError(t, err)
		nft.CurrentOwner = testBuyer
		nft.Burned = true
		nft.Price = "0"
		require.NoError(t, store.SaveNFT(ctx, nft))

		saved, err := store.GetNFT(ctx, input.ID)
		require.NoError(t, err)
		assert.Equal(t, testBuyer, saved.CurrentOwner)
		assert.True(t, saved.Burned)
		assert.Equal(t, testIssuer, saved.Issuer)
	})
}

// =============================================================================
// Test: Emotes
// =============================================================================

func testEmotes(t *testing.T, store Store) {
	ctx := context.Background()
	nftID := "4892300-KANF-KANF-0000000000000001"

	t.Run("get non-existent emote returns nil", func(t *testing.T) {
		emote, err := store.GetEmote(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, emote)
	})

	t.Run("create, get and remove emote", func(t *testing.T) {
		id := domain.EmoteID(nftID, testBuyer, "1F389")
		require.NoError(t, store.CreateEmote(ctx, &schema.Emote{ID: id, NFTID: nftID, Caller: testBuyer, Value: "1F389"}))

		emote, err := store.GetEmote(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, emote)
		assert.Equal(t, "1F389", emote.Value)

		require.NoError(t, store.RemoveEmote(ctx, id))

		emote, err = store.GetEmote(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, emote)
	})

	t.Run("create duplicate emote fails", func(t *testing.T) {
		id := domain.EmoteID(nftID, testBuyer, "1F600")
		require.NoError(t, store.CreateEmote(ctx, &schema.Emote{ID: id, NFTID: nftID, Caller: testBuyer, Value: "1F600"}))

		err := store.CreateEmote(ctx, &schema.Emote{ID: id, NFTID: nftID, Caller: testBuyer, Value: "1F600"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmoteAlreadyExists)
	})

	t.Run("remove non-existent emote fails", func(t *testing.T) {
		err := store.RemoveEmote(ctx, "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	})
}

// =============================================================================
// Test: Failed entities and remark archive
// =============================================================================

func testFailedEntities(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create failed entities", func(t *testing.T) {
		for _, id := range []string{"01J0000000000000000000000A", "01J0000000000000000000000B"} {
			err := store.CreateFailedEntity(ctx, &schema.FailedEntity{
				ID:          id,
				Value:       "rmrk::SEND::1.0.0::missing::dest",
				Reason:      "[SEND] NFT missing not found",
				Interaction: domain.RemarkEventSend.String(),
				Caller:      testIssuer,
				BlockNumber: "4892500",
				CreatedAt:   time.Now(),
			})
			require.NoError(t, err)
		}
	})
}

func testRemarks(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("save remark is idempotent", func(t *testing.T) {
		remark := &schema.Remark{
			ID:          domain.RemarkID(domain.Position{Block: 4892600, Extrinsic: 2}, 0),
			Value:       "rmrk::BUY::1.0.0::4892300-KANF-KANF-0000000000000001",
			Caller:      testBuyer,
			BlockNumber: "4892600",
			Interaction: domain.RemarkEventBuy.String(),
			Extra: datatypes.JSONSlice[domain.ExtraCall]{
				{Section: "balances", Method: "transfer", Args: []string{testIssuer, "1000"}},
			},
			Timestamp: time.Unix(1600003000, 0).UTC(),
		}
		require.NoError(t, store.SaveRemark(ctx, remark))
		require.NoError(t, store.SaveRemark(ctx, remark))
	})
}

// =============================================================================
// Test: Remark cursor
// =============================================================================

func testRemarkCursor(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get non-existent cursor returns zero position", func(t *testing.T) {
		position, err := store.GetRemarkCursor(ctx, domain.ChainWestend)
		require.NoError(t, err)
		assert.True(t, position.IsZero())
	})

	t.Run("set and get cursor", func(t *testing.T) {
		want := domain.Position{Block: 12345, Extrinsic: 3}
		require.NoError(t, store.SetRemarkCursor(ctx, domain.ChainKusama, want))

		position, err := store.GetRemarkCursor(ctx, domain.ChainKusama)
		require.NoError(t, err)
		assert.Equal(t, want, position)
	})

	t.Run("update existing cursor", func(t *testing.T) {
		require.NoError(t, store.SetRemarkCursor(ctx, domain.ChainPolkadot, domain.Position{Block: 100}))
		require.NoError(t, store.SetRemarkCursor(ctx, domain.ChainPolkadot, domain.Position{Block: 200, Extrinsic: 1}))

		position, err := store.GetRemarkCursor(ctx, domain.ChainPolkadot)
		require.NoError(t, err)
		assert.Equal(t, domain.Position{Block: 200, Extrinsic: 1}, position)
	})
}

func testTransaction(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("commits writes and cursor together", func(t *testing.T) {
		err := store.Transaction(ctx, func(ctx context.Context) error {
			if err := store.CreateCollection(ctx, buildTestCollection("tx-commit")); err != nil {
				return err
			}
			return store.SetRemarkCursor(ctx, domain.ChainKusama, domain.Position{Block: 10, Extrinsic: 2})
		})
		require.NoError(t, err)

		collection, err := store.GetCollection(ctx, "tx-commit")
		require.NoError(t, err)
		assert.NotNil(t, collection)

		position, err := store.GetRemarkCursor(ctx, domain.ChainKusama)
		require.NoError(t, err)
		assert.Equal(t, domain.Position{Block: 10, Extrinsic: 2}, position)
	})

	t.Run("rolls back every write on error", func(t *testing.T) {
		require.NoError(t, store.CreateEmote(ctx, &schema.Emote{ID: "tx-emote", NFTID: "tx-nft", Caller: testBuyer, Value: "1F600"}))

		errAbort := errors.New("abort")
		err := store.Transaction(ctx, func(ctx context.Context) error {
			require.NoError(t, store.CreateCollection(ctx, buildTestCollection("tx-rollback")))
			require.NoError(t, store.RemoveEmote(ctx, "tx-emote"))
			require.NoError(t, store.CreateFailedEntity(ctx, &schema.FailedEntity{ID: "tx-failed", Value: "rmrk::SEND::1.0.0::tx::dest", Reason: "rejected", Interaction: domain.RemarkEventSend.String()}))
			require.NoError(t, store.SetRemarkCursor(ctx, domain.ChainPolkadot, domain.Position{Block: 20}))
			return errAbort
		})
		require.ErrorIs(t, err, errAbort)

		collection, err := store.GetCollection(ctx, "tx-rollback")
		require.NoError(t, err)
		assert.Nil(t, collection)

		emote, err := store.GetEmote(ctx, "tx-emote")
		require.NoError(t, err)
		assert.NotNil(t, emote)

		position, err := store.GetRemarkCursor(ctx, domain.ChainPolkadot)
		require.NoError(t, err)
		assert.True(t, position.IsZero())
	})
}

func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Collections", testCollections},
		{"NFTs", testNFTs},
		{"Emotes", testEmotes},
		{"FailedEntities", testFailedEntities},
		{"Remarks", testRemarks},
		{"RemarkCursor", testRemarkCursor},
		{"Transaction", testTransaction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
