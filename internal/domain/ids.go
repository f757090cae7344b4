package domain

import "fmt"

// NFTID derives the identifier of an nft minted at blockNumber.
// Format: "<block>-<collection>-<instance>-<sn>"; instance falls back to name when empty.
func NFTID(blockNumber uint64, collection, instance, name, sn string) string {
	if instance == "" {
		instance = name
	}
	return fmt.Sprintf("%d-%s-%s-%s", blockNumber, collection, instance, sn)
}

// EmoteID derives the identifier of an emote.
// Format: "<nftId>-<caller>-<value>"
func EmoteID(nftID, caller, value string) string {
	return fmt.Sprintf("%s-%s-%s", nftID, caller, value)
}

// RemarkID derives the identifier of an archived remark from the extrinsic position
// and its index among the remarks of that extrinsic.
// Format: "<block>-<extrinsic>-<index>"
func RemarkID(position Position, index int) string {
	return fmt.Sprintf("%s-%d", position, index)
}
