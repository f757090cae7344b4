package dispatcher

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/store"
)

// ApplyBatch dispatches a batch and advances the remark cursor of its chain in one store transaction,
// so a batch is either applied together with its cursor or not at all.
// It reports applied=false without dispatching when the batch is at or before the cursor.
//
// The work runs detached from ctx cancellation so a shutdown never commits half a batch.
func ApplyBatch(ctx context.Context, st store.Store, d Dispatcher, batch domain.RemarkBatch) (summary Summary, applied bool, err error) {
	err = st.Transaction(context.WithoutCancel(ctx), func(ctx context.Context) error {
		cursor, err := st.GetRemarkCursor(ctx, batch.Chain)
		if err != nil {
			return fmt.Errorf("failed to get remark cursor: %w", err)
		}
		if !cursor.IsZero() && !cursor.Less(batch.Position) {
			return nil
		}

		summary = d.Dispatch(ctx, batch)

		if err := st.SetRemarkCursor(ctx, batch.Chain, batch.Position); err != nil {
			return fmt.Errorf("failed to set remark cursor: %w", err)
		}
		applied = true
		return nil
	})
	if err != nil {
		return Summary{}, false, err
	}
	return summary, applied, nil
}
