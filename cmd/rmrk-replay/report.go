package main

import (
	"fmt"

	"github.com/feral-file/ff-rmrk-indexer/internal/adapter"
	"github.com/feral-file/ff-rmrk-indexer/internal/dispatcher"
	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/emitter"
	"github.com/feral-file/ff-rmrk-indexer/internal/store"
	"github.com/feral-file/ff-rmrk-indexer/internal/store/schema"
)

// report is the entity state produced by a dry run
type report struct {
	Chain       domain.Chain          `json:"chain"`
	Cursor      string                `json:"cursor"`
	Extrinsics  int                   `json:"extrinsics"`
	Batches     int                   `json:"batches"`
	Applied     int                   `json:"applied"`
	Rejected    int                   `json:"rejected"`
	Skipped     int                   `json:"skipped"`
	Collections []schema.Collection   `json:"collections"`
	NFTs        []schema.NFT          `json:"nfts"`
	Emotes      []schema.Emote        `json:"emotes"`
	Failures    []schema.FailedEntity `json:"failures"`
}

func buildReport(chain domain.Chain, cursor domain.Position, stats emitter.Stats, summary dispatcher.Summary, st *store.MemoryStore) report {
	return report{
		Chain:       chain,
		Cursor:      cursor.String(),
		Extrinsics:  stats.Extrinsics,
		Batches:     stats.Batches,
		Applied:     summary.Applied,
		Rejected:    summary.Rejected,
		Skipped:     summary.Skipped,
		Collections: st.Collections(),
		NFTs:        st.NFTs(),
		Emotes:      st.Emotes(),
		Failures:    st.FailedEntities(),
	}
}

func writeReport(fs adapter.FileSystem, json adapter.JSON, path string, r report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	w, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}

	return w.Close()
}
