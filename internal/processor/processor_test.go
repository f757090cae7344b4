package processor_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	mockspkg "github.com/feral-file/ff-rmrk-indexer/internal/mocks"
	"github.com/feral-file/ff-rmrk-indexer/internal/processor"
	"github.com/feral-file/ff-rmrk-indexer/internal/rmrk"
	"github.com/feral-file/ff-rmrk-indexer/internal/store"
	"github.com/feral-file/ff-rmrk-indexer/internal/store/schema"
	"github.com/feral-file/ff-rmrk-indexer/internal/validation"
)

const (
	alice = "HeyRMRK7L7APXSJ6L4zoH9cNN1vBxAKEbUAn8Bzw9rqjWnA"
	bob   = "FqCJeGcPidYSsvvmT17fHVaYdE2nXMYgPsBn3CP9gugvZR5"
	carol = "DhvRNnnsyykGpmaa9GMjK9H4DeeQojd5V5qCTWd1GoYwnWc"

	mintC1    = "rmrk::MINT::1.0.0::C1:: Kanaria ::100:: KAN ::ipfs://ipfs/collection"
	mintNFTC1 = "rmrk::MINTNFT::1.0.0::C1::KAN::1::0001::ipfs://ipfs/nft::Founder"
	// nftID is the id of mintNFTC1 minted at block 11
	nftID = "11-C1-KAN-0001"
)

// testProcessor wires a processor to an in-memory store
type testProcessor struct {
	processor processor.Processor
	store     *store.MemoryStore
}

func setupTestProcessor(t *testing.T) *testProcessor {
	st := store.NewMemoryStore()
	return &testProcessor{
		processor: processor.New(st, validation.NewTransferPolicy(), zaptest.NewLogger(t)),
		store:     st,
	}
}

// apply decodes payload and processes it as if caller submitted it in block
func (tp *testProcessor) apply(t *testing.T, caller string, block string, payload string, extra ...domain.ExtraCall) error {
	t.Helper()
	msg, err := rmrk.Decode(payload)
	require.NoError(t, err, payload)

	remark := domain.Remark{
		Value:       payload,
		Caller:      caller,
		BlockNumber: block,
		Timestamp:   time.Unix(1600000000, 0).UTC(),
		Extra:       extra,
	}
	return tp.processor.Process(context.Background(), remark, msg)
}

func (tp *testProcessor) mustApply(t *testing.T, caller string, block string, payload string, extra ...domain.ExtraCall) {
	t.Helper()
	require.NoError(t, tp.apply(t, caller, block, payload, extra...), payload)
}

func (tp *testProcessor) nft(t *testing.T, id string) *schema.NFT {
	t.Helper()
	nft, err := tp.store.GetNFT(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, nft, id)
	return nft
}

func (tp *testProcessor) collection(t *testing.T, id string) *schema.Collection {
	t.Helper()
	collection, err := tp.store.GetCollection(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, collection, id)
	return collection
}

// seed mints C1 by alice in block 10 and its nft in block 11
func (tp *testProcessor) seed(t *testing.T) {
	t.Helper()
	tp.mustApply(t, alice, "10", mintC1)
	tp.mustApply(t, alice, "11", mintNFTC1)
}

func payment(to string, amount string) domain.ExtraCall {
	return domain.ExtraCall{Section: "balances", Method: "transfer", Args: []string{to, amount}}
}

func assertRejected(t *testing.T, err error, reason validation.Reason) {
	t.Helper()
	require.Error(t, err)
	rejection, ok := validation.AsRejection(err)
	require.True(t, ok, "expected a rejection, got %v", err)
	assert.Equal(t, reason, rejection.Reason, rejection.Message)
}

func TestProcessor_MintCollection(t *testing.T) {
	tp := setupTestProcessor(t)
	tp.mustApply(t, alice, "10", mintC1)

	collection := tp.collection(t, "C1")
	assert.Equal(t, "Kanaria", collection.Name)
	assert.Equal(t, "KAN", collection.Symbol)
	assert.Equal(t, uint64(100), collection.Max)
	assert.Equal(t, alice, collection.Issuer)
	assert.Equal(t, alice, collection.CurrentOwner)
	assert.Equal(t, uint64(10), collection.BlockNumber)
	require.Len(t, collection.Events, 1)
	assert.Equal(t, "MINT", collection.Events[0].Interaction)
	assert.Equal(t, alice, collection.Events[0].Caller)
	assert.Equal(t, uint64(10), collection.Events[0].BlockNumber)
}

func TestProcessor_MintCollection_Rejections(t *testing.T) {
	tp := setupTestProcessor(t)
	tp.mustApply(t, alice, "10", mintC1)

	t.Run("collection id taken", func(t *testing.T) {
		err := tp.apply(t, bob, "12", "rmrk::MINT::1.0.0::C1::Other::0::OTH::")
		assertRejected(t, err, validation.ReasonAlreadyExists)
		assert.Equal(t, alice, tp.collection(t, "C1").CurrentOwner)
	})

	t.Run("empty collection id", func(t *testing.T) {
		err := tp.apply(t, bob, "12", "rmrk::MINT::1.0.0:: ::Other::0::OTH::")
		assertRejected(t, err, validation.ReasonEmptyID)
	})
}

func TestProcessor_MintNFT(t *testing.T) {
	tp := setupTestProcessor(t)
	tp.seed(t)

	nft := tp.nft(t, nftID)
	assert.Equal(t, "Founder", nft.Name)
	assert.Equal(t, "KAN", nft.Instance)
	assert.Equal(t, "C1", nft.CollectionID)
	assert.Equal(t, "0001", nft.SN)
	assert.True(t, nft.Transferable)
	assert.Equal(t, "0", nft.Price)
	assert.False(t, nft.Burned)
	assert.Equal(t, alice, nft.Issuer)
	assert.Equal(t, alice, nft.CurrentOwner)
	require.Len(t, nft.Events, 1)
	assert.Equal(t, "MINTNFT", nft.Events[0].Interaction)
}

func TestProcessor_MintNFT_Rejections(t *testing.T) {
	tp := setupTestProcessor(t)
	tp.seed(t)

	tests := []struct {
		name    string
		caller  string
		payload string
		reason  validation.Reason
	}{
		{
			name:    "empty collection id",
			caller:  alice,
			payload: "rmrk::MINTNFT::1.0.0::::KAN::1::0002::ipfs://ipfs/nft::Founder",
			reason:  validation.ReasonEmptyID,
		},
		{
			name:    "unknown collection",
			caller:  alice,
			payload: "rmrk::MINTNFT::1.0.0::C9::KAN::1::0002::ipfs://ipfs/nft::Founder",
			reason:  validation.ReasonNotFound,
		},
		{
			name:    "caller does not own the collection",
			caller:  bob,
			payload: "rmrk::MINTNFT::1.0.0::C1::KAN::1::0002::ipfs://ipfs/nft::Founder",
			reason:  validation.ReasonNotOwner,
		},
		{
			name:    "same nft minted twice in one block",
			caller:  alice,
			payload: mintNFTC1,
			reason:  validation.ReasonAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tp.apply(t, tt.caller, "11", tt.payload)
			assertRejected(t, err, tt.reason)
		})
	}

	assert.Len(t, tp.store.NFTs(), 1)
}

func TestProcessor_Send(t *testing.T) {
	tp := setupTestProcessor(t)
	tp.seed(t)
	tp.mustApply(t, alice, "12", "rmrk::LIST::1.0.0::"+nftID+"::500")

	tp.mustApply(t, alice, "13", "rmrk::SEND::1.0.0::"+nftID+"::"+bob)

	nft := tp.nft(t, nftID)
	assert.Equal(t, bob, nft.CurrentOwner)
	assert.Equal(t, "0", nft.Price)
	assert.Equal(t, alice, nft.Issuer)
	require.Len(t, nft.Events, 3)
	assert.Equal(t, "SEND", nft.Events[2].Interaction)
	assert.Equal(t, bob, nft.Events[2].Meta)
}

func TestProcessor_Send_Rejections(t *testing.T) {
	tp := setupTestProcessor(t)
	tp.seed(t)
	tp.mustApply(t, alice, "11", "rmrk::MINTNFT::1.0.0::C1::KAN::0::0002::ipfs://ipfs/nft::Soulbound")
	soulbound := "11-C1-KAN-0002"

	tests := []struct {
		name    string
		caller  string
		payload string
		reason  validation.Reason
	}{
		{"unknown nft", alice, "rmrk::SEND::1.0.0::11-C1-KAN-9999::" + bob, validation.ReasonNotFound},
		{"not transferable", alice, "rmrk::SEND::1.0.0::" + soulbound + "::" + bob, validation.ReasonNotTransferable},
		{"not owner", bob, "rmrk::SEND::1.0.0::" + nftID + "::" + carol, validation.ReasonNotOwner},
		{"missing recipient", alice, "rmrk::SEND::1.0.0::" + nftID, validation.ReasonMissingMetadata},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tp.apply(t, tt.caller, "12", tt.payload)
			assertRejected(t, err, tt.reason)
		})
	}

	assert.Equal(t, alice, tp.nft(t, nftID).CurrentOwner)
	assert.Equal(t, alice, tp.nft(t, soulbound).CurrentOwner)
}

func TestProcessor_List(t *testing.T) {
	tp := setupTestProcessor(t)
	tp.seed(t)

	tp.mustApply(t, alice, "12", "rmrk::LIST::1.0.0::"+nftID+"::340282366920938463463374607431768211455")

	nft := tp.nft(t, nftID)
	assert.Equal(t, "340282366920938463463374607431768211455", nft.Price)
	assert.Equal(t, alice, nft.CurrentOwner)
	assert.Equal(t, "LIST", nft.Events[1].Interaction)
	assert.Equal(t, nft.Price, nft.Events[1].Meta)

	t.Run("zero price", func(t *testing.T) {
		err := tp.apply(t, alice, "13", "rmrk::LIST::1.0.0::"+nftID+"::0")
		assertRejected(t, err, validation.ReasonNonPositivePrice)
	})

	t.Run("not a number", func(t *testing.T) {
		err := tp.apply(t, alice, "13", "rmrk::LIST::1.0.0::"+nftID+"::-5")
		assertRejected(t, err, validation.ReasonInvalidPrice)
	})

	t.Run("missing price", func(t *testing.T) {
		err := tp.apply(t, alice, "13", "rmrk::LIST::1.0.0::"+nftID)
		assertRejected(t, err, validation.ReasonMissingMetadata)
	})

	t.Run("not owner", func(t *testing.T) {
		err := tp.apply(t, bob, "13", "rmrk::LIST::1.0.0::"+nftID+"::1")
		assertRejected(t, err, validation.ReasonNotOwner)
	})

	assert.Equal(t, "340282366920938463463374607431768211455", tp.nft(t, nftID).Price)
}

// Scenarios 1 to 3: mint, list for 100, buy with a sufficient payment
func TestProcessor_ListThenBuy(t *testing.T) {
	tp := setupTestProcessor(t)
	tp.seed(t)
	tp.mustApply(t, alice, "12", "rmrk::LIST::1.0.0::"+nftID+"::100")

	tp.mustApply(t, bob, "13", "rmrk::BUY::1.0.0::"+nftID, payment(alice, "100"))

	nft := tp.nft(t, nftID)
	assert.Equal(t, bob, nft.CurrentOwner)
	assert.Equal(t, "0", nft.Price)
	require.Len(t, nft.Events, 3)
	assert.Equal(t, "BUY", nft.Events[2].Interaction)
	assert.Equal(t, bob, nft.Events[2].Caller)
}

// Scenario 4: a purchase without a payment is rejected
func TestProcessor_Buy_Rejections(t *testing.T) {
	tp := setupTestProcessor(t)
	tp.seed(t)

	t.Run("not for sale", func(t *testing.T) {
		err := tp.apply(t, bob, "12", "rmrk::BUY::1.0.0::"+nftID, payment(alice, "100"))
		assertRejected(t, err, validation.ReasonNonPositivePrice)
	})

	tp.mustApply(t, alice, "12", "rmrk::LIST::1.0.0::"+nftID+"::100")

	tests := []struct {
		name  string
		extra []domain.ExtraCall
	}{
		{"no payment", nil},
		{"payment too small", []domain.ExtraCall{payment(alice, "99")}},
		{"payment to someone else", []domain.ExtraCall{payment(carol, "100")}},
		{"not a transfer", []domain.ExtraCall{{Section: "system", Method: "remark", Args: []string{alice, "100"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tp.apply(t, bob, "13", "rmrk::BUY::1.0.0::"+nftID, tt.extra...)
			assertRejected(t, err, validation.ReasonIllegalBuy)
		})
	}

	t.Run("unknown nft", func(t *testing.T) {
		err := tp.apply(t, bob, "13", "rmrk::BUY::1.0.0::11-C1-KAN-9999", payment(alice, "100"))
		assertRejected(t, err, validation.ReasonNotFound)
	})

	nft := tp.nft(t, nftID)
	assert.Equal(t, alice, nft.CurrentOwner)
	assert.Equal(t, "100", nft.Price)
}

// Scenario 5: a consumed nft absorbs every later interaction
func TestProcessor_Consume(t *testing.T) {
	tp := setupTestProcessor(t)
	tp.seed(t)
	tp.mustApply(t, alice, "12", "rmrk::LIST::1.0.0::"+nftID+"::100")

	t.Run("not owner", func(t *testing.T) {
		err := tp.apply(t, bob, "13", "rmrk::CONSUME::1.0.0::"+nftID)
		assertRejected(t, err, validation.ReasonNotOwner)
	})

	tp.mustApply(t, alice, "13", "rmrk::CONSUME::1.0.0::"+nftID)

	nft := tp.nft(t, nftID)
	assert.True(t, nft.Burned)
	assert.Equal(t, "0", nft.Price)

	tests := []struct {
		name    string
		caller  string
		payload string
		extra   []domain.ExtraCall
	}{
		{"list", alice, "rmrk::LIST::1.0.0::" + nftID + "::100", nil},
		{"send", alice, "rmrk::SEND::1.0.0::" + nftID + "::" + bob, nil},
		{"buy", bob, "rmrk::BUY::1.0.0::" + nftID, []domain.ExtraCall{payment(alice, "100")}},
		{"consume", alice, "rmrk::CONSUME::1.0.0::" + nftID, nil},
		{"emote", bob, "rmrk::EMOTE::1.0.0::" + nftID + "::1F389", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tp.apply(t, tt.caller, "14", tt.payload, tt.extra...)
			assertRejected(t, err, validation.ReasonBurned)
		})
	}

	after := tp.nft(t, nftID)
	assert.Equal(t, nft.CurrentOwner, after.CurrentOwner)
	assert.Equal(t, "0", after.Price)
	assert.Len(t, after.Events, 3)
	assert.Empty(t, tp.store.Emotes())
}

func TestProcessor_ChangeIssuer(t *testing.T) {
	tp := setupTestProcessor(t)
	tp.seed(t)

	t.Run("missing new issuer", func(t *testing.T) {
		err := tp.apply(t, alice, "12", "rmrk::CHANGEISSUER::1.0.0::C1")
		assertRejected(t, err, validation.ReasonMissingMetadata)
	})

	t.Run("unknown collection", func(t *testing.T) {
		err := tp.apply(t, alice, "12", "rmrk::CHANGEISSUER::1.0.0::C9::"+bob)
		assertRejected(t, err, validation.ReasonNotFound)
	})

	t.Run("not owner", func(t *testing.T) {
		err := tp.apply(t, bob, "12", "rmrk::CHANGEISSUER::1.0.0::C1::"+bob)
		assertRejected(t, err, validation.ReasonNotOwner)
	})

	tp.mustApply(t, alice, "12", "rmrk::CHANGEISSUER::1.0.0::C1::"+bob)

	collection := tp.collection(t, "C1")
	assert.Equal(t, bob, collection.CurrentOwner)
	assert.Equal(t, alice, collection.Issuer)
	require.Len(t, collection.Events, 2)
	assert.Equal(t, "CHANGEISSUER", collection.Events[1].Interaction)
	assert.Equal(t, bob, collection.Events[1].Meta)

	// The new owner mints into the collection, the former one no longer can
	tp.mustApply(t, bob, "13", "rmrk::MINTNFT::1.0.0::C1::KAN::1::0002::ipfs://ipfs/nft::Founder")
	err := tp.apply(t, alice, "13", "rmrk::MINTNFT::1.0.0::C1::KAN::1::0003::ipfs://ipfs/nft::Founder")
	assertRejected(t, err, validation.ReasonNotOwner)

	// Nft ownership is untouched by a collection issuer change
	assert.Equal(t, alice, tp.nft(t, nftID).CurrentOwner)
}

func TestProcessor_EmoteToggle(t *testing.T) {
	tp := setupTestProcessor(t)
	tp.seed(t)
	emote := "rmrk::EMOTE::1.0.0::" + nftID + "::1F389"

	tp.mustApply(t, bob, "12", emote)
	emotes := tp.store.Emotes()
	require.Len(t, emotes, 1)
	assert.Equal(t, domain.EmoteID(nftID, bob, "1F389"), emotes[0].ID)
	assert.Equal(t, nftID, emotes[0].NFTID)
	assert.Equal(t, bob, emotes[0].Caller)
	assert.Equal(t, "1F389", emotes[0].Value)

	// A different caller or value is a different emote
	tp.mustApply(t, carol, "12", emote)
	tp.mustApply(t, bob, "12", "rmrk::EMOTE::1.0.0::"+nftID+"::1F600")
	assert.Len(t, tp.store.Emotes(), 3)

	tp.mustApply(t, bob, "13", emote)
	tp.mustApply(t, carol, "13", emote)
	tp.mustApply(t, bob, "13", "rmrk::EMOTE::1.0.0::"+nftID+"::1F600")
	assert.Empty(t, tp.store.Emotes())

	t.Run("missing value", func(t *testing.T) {
		err := tp.apply(t, bob, "14", "rmrk::EMOTE::1.0.0::"+nftID)
		assertRejected(t, err, validation.ReasonMissingMetadata)
	})

	t.Run("unknown nft", func(t *testing.T) {
		err := tp.apply(t, bob, "14", "rmrk::EMOTE::1.0.0::11-C1-KAN-9999::1F389")
		assertRejected(t, err, validation.ReasonNotFound)
	})
}

// replaySequence is a chain history touching every event kind, including rejected remarks
var replaySequence = []struct {
	caller  string
	block   string
	payload string
	extra   []domain.ExtraCall
}{
	{alice, "10", mintC1, nil},
	{alice, "11", mintNFTC1, nil},
	{alice, "11", "rmrk::MINTNFT::1.0.0::C1::KAN::1::0002::ipfs://ipfs/nft::Founder", nil},
	{bob, "12", "rmrk::EMOTE::1.0.0::" + nftID + "::1F389", nil},
	{alice, "12", "rmrk::LIST::1.0.0::" + nftID + "::100", nil},
	{bob, "13", "rmrk::BUY::1.0.0::" + nftID, nil},
	{bob, "13", "rmrk::BUY::1.0.0::" + nftID, []domain.ExtraCall{payment(alice, "100")}},
	{bob, "14", "rmrk::SEND::1.0.0::" + nftID + "::" + carol, nil},
	{alice, "14", "rmrk::CONSUME::1.0.0::11-C1-KAN-0002", nil},
	{alice, "15", "rmrk::LIST::1.0.0::11-C1-KAN-0002::5", nil},
	{alice, "15", "rmrk::CHANGEISSUER::1.0.0::C1::" + carol, nil},
	{carol, "16", "rmrk::EMOTE::1.0.0::" + nftID + "::1F389", nil},
	{bob, "16", "rmrk::EMOTE::1.0.0::" + nftID + "::1F389", nil},
}

func replay(t *testing.T) *testProcessor {
	tp := setupTestProcessor(t)
	for _, r := range replaySequence {
		// Rejections are part of the history and must replay identically too
		_ = tp.apply(t, r.caller, r.block, r.payload, r.extra...)
	}
	return tp
}

// withoutTimestamps drops the bookkeeping timestamps set by the store
func withoutTimestamps(st *store.MemoryStore) ([]schema.Collection, []schema.NFT, []schema.Emote) {
	collections := st.Collections()
	for i := range collections {
		collections[i].CreatedAt, collections[i].UpdatedAt = time.Time{}, time.Time{}
	}
	nfts := st.NFTs()
	for i := range nfts {
		nfts[i].CreatedAt, nfts[i].UpdatedAt = time.Time{}, time.Time{}
	}
	emotes := st.Emotes()
	for i := range emotes {
		emotes[i].CreatedAt = time.Time{}
	}
	return collections, nfts, emotes
}

func TestProcessor_IdempotentReplay(t *testing.T) {
	first := replay(t)
	second := replay(t)

	c1, n1, e1 := withoutTimestamps(first.store)
	c2, n2, e2 := withoutTimestamps(second.store)
	assert.Equal(t, c1, c2)
	assert.Equal(t, n1, n2)
	assert.Equal(t, e1, e2)

	nft := first.nft(t, nftID)
	assert.Equal(t, carol, nft.CurrentOwner)
	assert.Equal(t, "0", nft.Price)
	assert.True(t, first.nft(t, "11-C1-KAN-0002").Burned)
	assert.Equal(t, carol, first.collection(t, "C1").CurrentOwner)
	assert.Len(t, e1, 1)
}

func TestProcessor_UnsupportedMessages(t *testing.T) {
	tp := setupTestProcessor(t)
	remark := domain.Remark{Caller: alice, BlockNumber: "10"}

	err := tp.processor.Process(context.Background(), remark, nil)
	assert.ErrorIs(t, err, processor.ErrUnsupportedEvent)

	err = tp.processor.Process(context.Background(), remark, &rmrk.Message{Event: domain.RemarkEventUnknown})
	assert.ErrorIs(t, err, processor.ErrUnsupportedEvent)

	err = tp.processor.Process(context.Background(), remark, &rmrk.Message{Event: domain.RemarkEventSend})
	assert.ErrorIs(t, err, processor.ErrMissingPayload)

	err = tp.processor.Process(context.Background(), remark, &rmrk.Message{Event: domain.RemarkEventMint})
	assert.ErrorIs(t, err, processor.ErrMissingPayload)

	msg, decodeErr := rmrk.Decode(mintC1)
	require.NoError(t, decodeErr)
	err = tp.processor.Process(context.Background(), domain.Remark{Caller: alice, BlockNumber: "ten"}, msg)
	assert.Error(t, err)
	assert.Empty(t, tp.store.Collections())
}

func TestProcessor_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockspkg.NewMockStore(ctrl)
	p := processor.New(st, validation.NewTransferPolicy(), zaptest.NewLogger(t))
	ctx := context.Background()
	remark := domain.Remark{Caller: alice, BlockNumber: "12"}

	t.Run("lookup failure is not a rejection", func(t *testing.T) {
		st.EXPECT().GetNFT(gomock.Any(), nftID).Return(nil, assert.AnError)

		err := p.Process(ctx, remark, &rmrk.Message{
			Event:       domain.RemarkEventSend,
			Interaction: &rmrk.Interaction{ID: nftID, Metadata: bob},
		})
		assert.ErrorIs(t, err, assert.AnError)
		_, isRejection := validation.AsRejection(err)
		assert.False(t, isRejection)
	})

	t.Run("write failure", func(t *testing.T) {
		st.EXPECT().GetNFT(gomock.Any(), nftID).Return(&schema.NFT{
			ID:           nftID,
			Transferable: true,
			Price:        "0",
			CurrentOwner: alice,
		}, nil)
		st.EXPECT().SaveNFT(gomock.Any(), gomock.Any()).Return(assert.AnError)

		err := p.Process(ctx, remark, &rmrk.Message{
			Event:       domain.RemarkEventSend,
			Interaction: &rmrk.Interaction{ID: nftID, Metadata: bob},
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "failed to save nft")
	})

	t.Run("rejection stops before any write", func(t *testing.T) {
		st.EXPECT().GetNFT(gomock.Any(), nftID).Return(&schema.NFT{
			ID:           nftID,
			Transferable: true,
			Price:        "0",
			CurrentOwner: bob,
		}, nil)

		err := p.Process(ctx, remark, &rmrk.Message{
			Event:       domain.RemarkEventSend,
			Interaction: &rmrk.Interaction{ID: nftID, Metadata: carol},
		})
		assertRejected(t, err, validation.ReasonNotOwner)
	})
}
