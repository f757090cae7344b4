package rmrk

import (
	"encoding/json"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
)

// Collection is the payload of a MINT remark
type Collection struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Max      uint64 `json:"max"`
	Issuer   string `json:"issuer,omitempty"`
	Symbol   string `json:"symbol"`
	Metadata string `json:"metadata"`
}

// NFT is the payload of a MINTNFT remark
type NFT struct {
	Collection   string `json:"collection"`
	Name         string `json:"name"`
	Instance     string `json:"instance"`
	Transferable bool   `json:"transferable"`
	SN           string `json:"sn"`
	Metadata     string `json:"metadata"`
}

// Interaction is the payload of every remark acting on an existing entity
type Interaction struct {
	// ID is the nft id, or the collection id for CHANGEISSUER
	ID       string `json:"id"`
	Metadata string `json:"metadata,omitempty"`
}

// Message is a decoded RMRK remark. Exactly one of Collection, NFT or Interaction
// is set for a known event; none is set for RemarkEventUnknown.
type Message struct {
	Event       domain.RemarkEvent
	Version     string
	Raw         string
	Collection  *Collection
	NFT         *NFT
	Interaction *Interaction
}

// Payload returns the decoded payload as JSON, or the raw text when nothing was decoded
func (m *Message) Payload() string {
	var v any
	switch {
	case m.Collection != nil:
		v = m.Collection
	case m.NFT != nil:
		v = m.NFT
	case m.Interaction != nil:
		v = m.Interaction
	default:
		return m.Raw
	}

	data, err := json.Marshal(v)
	if err != nil {
		return m.Raw
	}
	return string(data)
}
