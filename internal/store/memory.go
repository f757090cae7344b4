package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/store/schema"
)

// MemoryStore is an in-process Store used for dry-run replays and tests.
// Entities are copied on the way in and out so callers never share state with the store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]schema.Collection
	nfts        map[string]schema.NFT
	emotes      map[string]schema.Emote
	failed      []schema.FailedEntity
	remarks     map[string]schema.Remark
	cursors     map[domain.Chain]domain.Position
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]schema.Collection),
		nfts:        make(map[string]schema.NFT),
		emotes:      make(map[string]schema.Emote),
		remarks:     make(map[string]schema.Remark),
		cursors:     make(map[domain.Chain]domain.Position),
	}
}

func copyCollection(c schema.Collection) schema.Collection {
	c.Events = slices.Clone(c.Events)
	return c
}

func copyNFT(n schema.NFT) schema.NFT {
	n.Events = slices.Clone(n.Events)
	return n
}

func (s *MemoryStore) GetCollection(_ context.Context, id string) (*schema.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[id]
	if !ok {
		return nil, nil
	}
	c = copyCollection(c)
	return &c, nil
}

func (s *MemoryStore) CreateCollection(_ context.Context, collection *schema.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection.ID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrCollectionAlreadyExists, collection.ID)
	}
	now := time.Now()
	collection.CreatedAt = now
	collection.UpdatedAt = now
	s.collections[collection.ID] = copyCollection(*collection)
	return nil
}

func (s *MemoryStore) SaveCollection(_ context.Context, collection *schema.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if existing, ok := s.collections[collection.ID]; ok {
		collection.CreatedAt = existing.CreatedAt
	} else {
		collection.CreatedAt = now
	}
	collection.UpdatedAt = now
	s.collections[collection.ID] = copyCollection(*collection)
	return nil
}

func (s *MemoryStore) GetNFT(_ context.Context, id string) (*schema.NFT, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nfts[id]
	if !ok {
		return nil, nil
	}
	n = copyNFT(n)
	return &n, nil
}

func (s *MemoryStore) CreateNFT(_ context.Context, nft *schema.NFT) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nfts[nft.ID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrNFTAlreadyExists, nft.ID)
	}
	now := time.Now()
	nft.CreatedAt = now
	nft.UpdatedAt = now
	s.nfts[nft.ID] = copyNFT(*nft)
	return nil
}

func (s *MemoryStore) SaveNFT(_ context.Context, nft *schema.NFT) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if existing, ok := s.nfts[nft.ID]; ok {
		nft.CreatedAt = existing.CreatedAt
	} else {
		nft.CreatedAt = now
	}
	nft.UpdatedAt = now
	s.nfts[nft.ID] = copyNFT(*nft)
	return nil
}

func (s *MemoryStore) GetEmote(_ context.Context, id string) (*schema.Emote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.emotes[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *MemoryStore) CreateEmote(_ context.Context, emote *schema.Emote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.emotes[emote.ID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrEmoteAlreadyExists, emote.ID)
	}
	emote.CreatedAt = time.Now()
	s.emotes[emote.ID] = *emote
	return nil
}

func (s *MemoryStore) RemoveEmote(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.emotes[id]; !ok {
		return fmt.Errorf("%w: emote %s", domain.ErrEntityNotFound, id)
	}
	delete(s.emotes, id)
	return nil
}

func (s *MemoryStore) CreateFailedEntity(_ context.Context, failed *schema.FailedEntity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failed = append(s.failed, *failed)
	return nil
}

func (s *MemoryStore) SaveRemark(_ context.Context, remark *schema.Remark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := *remark
	r.Extra = slices.Clone(r.Extra)
	s.remarks[r.ID] = r
	return nil
}

func (s *MemoryStore) GetRemarkCursor(_ context.Context, chain domain.Chain) (domain.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cursors[chain], nil
}

func (s *MemoryStore) SetRemarkCursor(_ context.Context, chain domain.Chain, position domain.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursors[chain] = position
	return nil
}

type memorySnapshot struct {
	collections map[string]schema.Collection
	nfts        map[string]schema.NFT
	emotes      map[string]schema.Emote
	failed      []schema.FailedEntity
	remarks     map[string]schema.Remark
	cursors     map[domain.Chain]domain.Position
}

// Transaction runs fn and restores the previous state when it returns an error.
// It does not isolate fn from concurrent writers.
func (s *MemoryStore) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.RLock()
	snapshot := memorySnapshot{
		collections: maps.Clone(s.collections),
		nfts:        maps.Clone(s.nfts),
		emotes:      maps.Clone(s.emotes),
		failed:      slices.Clone(s.failed),
		remarks:     maps.Clone(s.remarks),
		cursors:     maps.Clone(s.cursors),
	}
	s.mu.RUnlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.collections = snapshot.collections
		s.nfts = snapshot.nfts
		s.emotes = snapshot.emotes
		s.failed = snapshot.failed
		s.remarks = snapshot.remarks
		s.cursors = snapshot.cursors
		s.mu.Unlock()
		return err
	}
	return nil
}

// Collections returns a snapshot of all collections ordered by id
func (s *MemoryStore) Collections() []schema.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schema.Collection, 0, len(s.collections))
	for _, c := range s.collections {
		out = append(out, copyCollection(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NFTs returns a snapshot of all nfts ordered by id
func (s *MemoryStore) NFTs() []schema.NFT {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schema.NFT, 0, len(s.nfts))
	for _, n := range s.nfts {
		out = append(out, copyNFT(n))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Emotes returns a snapshot of all active emotes ordered by id
func (s *MemoryStore) Emotes() []schema.Emote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schema.Emote, 0, len(s.emotes))
	for _, e := range s.emotes {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FailedEntities returns the recorded failures in insertion order
func (s *MemoryStore) FailedEntities() []schema.FailedEntity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.failed)
}

// Remarks returns the archived remarks ordered by id
func (s *MemoryStore) Remarks() []schema.Remark {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schema.Remark, 0, len(s.remarks))
	for _, r := range s.remarks {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
