package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Chain represents the substrate network identifier using CAIP-2 format
type Chain string

const (
	ChainKusama   Chain = "polkadot:b0a8d493285c2df73290dfb7e61f870f"
	ChainPolkadot Chain = "polkadot:91b171bb158e2d3848fa23a9f1c25182"
	ChainWestend  Chain = "polkadot:e143f23803ac50e8f6f8e62695d1ce9e"
)

// IsValidChain checks if a chain is valid
func IsValidChain(chain Chain) bool {
	return chain == ChainKusama ||
		chain == ChainPolkadot ||
		chain == ChainWestend
}

// Name returns the short network name used in stream subjects
func (c Chain) Name() string {
	switch c {
	case ChainKusama:
		return "kusama"
	case ChainPolkadot:
		return "polkadot"
	case ChainWestend:
		return "westend"
	default:
		return "unknown"
	}
}

// RemarkEvent represents the kind of RMRK interaction carried by a remark
type RemarkEvent int

const (
	RemarkEventUnknown RemarkEvent = iota
	RemarkEventMint
	RemarkEventMintNFT
	RemarkEventSend
	RemarkEventBuy
	RemarkEventConsume
	RemarkEventList
	RemarkEventChangeIssuer
	RemarkEventEmote
)

var remarkEventNames = map[RemarkEvent]string{
	RemarkEventMint:         "MINT",
	RemarkEventMintNFT:      "MINTNFT",
	RemarkEventSend:         "SEND",
	RemarkEventBuy:          "BUY",
	RemarkEventConsume:      "CONSUME",
	RemarkEventList:         "LIST",
	RemarkEventChangeIssuer: "CHANGEISSUER",
	RemarkEventEmote:        "EMOTE",
}

// ParseRemarkEvent maps an event-kind token to its RemarkEvent.
// Unknown tokens map to RemarkEventUnknown.
func ParseRemarkEvent(token string) RemarkEvent {
	for event, name := range remarkEventNames {
		if name == token {
			return event
		}
	}
	return RemarkEventUnknown
}

// String returns the protocol token of the event
func (e RemarkEvent) String() string {
	if name, ok := remarkEventNames[e]; ok {
		return name
	}
	return "UNKNOWN"
}

// Known reports whether the event is one of the protocol interactions
func (e RemarkEvent) Known() bool {
	_, ok := remarkEventNames[e]
	return ok
}

// ExtraCall is a sibling call submitted in the same batch as a remark
type ExtraCall struct {
	Section string   `json:"section"`
	Method  string   `json:"method"`
	Args    []string `json:"args"`
}

// Is reports whether the call matches the given "section.method" name
func (c ExtraCall) Is(name string) bool {
	return strings.EqualFold(c.Section+"."+c.Method, name)
}

// Remark is a single remark payload together with the context it was submitted under
type Remark struct {
	Value       string      `json:"value"`
	Caller      string      `json:"caller"`
	BlockNumber string      `json:"block_number"`
	Timestamp   time.Time   `json:"timestamp"`
	Extra       []ExtraCall `json:"extra,omitempty"`
}

// Block parses the block number of the remark
func (r Remark) Block() (uint64, error) {
	n, err := strconv.ParseUint(r.BlockNumber, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid block number %q: %w", r.BlockNumber, err)
	}
	return n, nil
}

// Position identifies an extrinsic on chain. Positions are totally ordered by block then extrinsic index.
type Position struct {
	Block     uint64 `json:"block"`
	Extrinsic uint32 `json:"extrinsic"`
}

// Less reports whether p comes strictly before o
func (p Position) Less(o Position) bool {
	if p.Block != o.Block {
		return p.Block < o.Block
	}
	return p.Extrinsic < o.Extrinsic
}

// IsZero reports whether the position is unset
func (p Position) IsZero() bool {
	return p.Block == 0 && p.Extrinsic == 0
}

// String returns the "<block>-<extrinsic>" representation of the position
func (p Position) String() string {
	return fmt.Sprintf("%d-%d", p.Block, p.Extrinsic)
}

// ParsePosition parses a position produced by Position.String
func ParsePosition(s string) (Position, error) {
	block, extrinsic, ok := strings.Cut(s, "-")
	if !ok {
		return Position{}, fmt.Errorf("invalid position %q", s)
	}
	b, err := strconv.ParseUint(block, 10, 64)
	if err != nil {
		return Position{}, fmt.Errorf("invalid position block %q: %w", s, err)
	}
	x, err := strconv.ParseUint(extrinsic, 10, 32)
	if err != nil {
		return Position{}, fmt.Errorf("invalid position extrinsic %q: %w", s, err)
	}
	return Position{Block: b, Extrinsic: uint32(x)}, nil
}

// RemarkBatch is the ordered list of remarks extracted from one extrinsic.
// This is the message format published to NATS.
type RemarkBatch struct {
	Chain    Chain    `json:"chain"`
	Position Position `json:"position"`
	Remarks  []Remark `json:"remarks"`
}

// Call is a decoded extrinsic call
type Call struct {
	Section string   `json:"section"`
	Method  string   `json:"method"`
	Args    []string `json:"args"`
	// Calls holds the inner calls of a utility batch
	Calls []Call `json:"calls,omitempty"`
}

// ExtrinsicEvent is a runtime event emitted while applying an extrinsic
type ExtrinsicEvent struct {
	Section string `json:"section"`
	Method  string `json:"method"`
}

// Extrinsic is a signed extrinsic as delivered by the chain reader
type Extrinsic struct {
	BlockNumber uint64           `json:"block_number"`
	Index       uint32           `json:"index"`
	Timestamp   time.Time        `json:"timestamp"`
	Signer      string           `json:"signer"`
	Success     bool             `json:"success"`
	Call        Call             `json:"call"`
	Events      []ExtrinsicEvent `json:"events,omitempty"`
}

// Position returns the on-chain position of the extrinsic
func (e *Extrinsic) Position() Position {
	return Position{Block: e.BlockNumber, Extrinsic: e.Index}
}
