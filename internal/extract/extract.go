package extract

import (
	"strconv"
	"strings"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
)

var remarkPrefixes = []string{
	domain.RMRK_HEX_PREFIX_LOWER,
	domain.RMRK_HEX_PREFIX_UPPER,
}

// IsSystemRemark reports whether the call is a system.remark carrying an RMRK payload
func IsSystemRemark(call domain.Call) bool {
	if call.Section != "system" || call.Method != "remark" {
		return false
	}
	arg := strings.Join(call.Args, ",")
	for _, prefix := range remarkPrefixes {
		if strings.HasPrefix(arg, prefix) {
			return true
		}
	}
	return false
}

// IsUtilityBatch reports whether the call is a utility.batch or utility.batchAll
func IsUtilityBatch(call domain.Call) bool {
	return call.Section == "utility" && (call.Method == "batch" || call.Method == "batchAll")
}

// IsBatchInterrupted reports whether any inner call of the extrinsic failed
func IsBatchInterrupted(events []domain.ExtrinsicEvent) bool {
	for _, event := range events {
		if event.Method == "BatchInterrupted" || event.Method == "ExtrinsicFailed" {
			return true
		}
	}
	return false
}

// RemarksFrom returns the RMRK remarks submitted by a successful extrinsic, in call order.
// Every remark of a batch carries all non RMRK sibling calls as extra calls.
func RemarksFrom(extrinsic domain.Extrinsic) []domain.Remark {
	if !extrinsic.Success {
		return nil
	}

	blockNumber := strconv.FormatUint(extrinsic.BlockNumber, 10)
	newRemark := func(call domain.Call) domain.Remark {
		return domain.Remark{
			Value:       strings.Join(call.Args, ","),
			Caller:      extrinsic.Signer,
			BlockNumber: blockNumber,
			Timestamp:   extrinsic.Timestamp,
		}
	}

	switch {
	case IsSystemRemark(extrinsic.Call):
		return []domain.Remark{newRemark(extrinsic.Call)}
	case IsUtilityBatch(extrinsic.Call):
		if IsBatchInterrupted(extrinsic.Events) {
			return nil
		}
	default:
		return nil
	}

	var remarks []domain.Remark
	var extra []domain.ExtraCall
	for _, call := range extrinsic.Call.Calls {
		if IsSystemRemark(call) {
			remarks = append(remarks, newRemark(call))
			continue
		}
		extra = append(extra, domain.ExtraCall{
			Section: call.Section,
			Method:  call.Method,
			Args:    strings.Split(strings.Join(call.Args, ","), ","),
		})
	}

	for i := range remarks {
		remarks[i].Extra = extra
	}
	return remarks
}

// Batch builds the stream message for an extrinsic, or returns nil when it carries no remark
func Batch(chain domain.Chain, extrinsic domain.Extrinsic) *domain.RemarkBatch {
	remarks := RemarksFrom(extrinsic)
	if len(remarks) == 0 {
		return nil
	}
	return &domain.RemarkBatch{
		Chain:    chain,
		Position: extrinsic.Position(),
		Remarks:  remarks,
	}
}
