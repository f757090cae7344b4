package validation

import (
	"strings"

	"github.com/holiman/uint256"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/store/schema"
)

// DefaultAcceptedCalls lists the calls recognized as payments by default
var DefaultAcceptedCalls = []string{
	"balances.transfer",
	"balances.transferKeepAlive",
	"balances.transferAllowDeath",
}

// PaymentPolicy decides whether the calls batched with a BUY pay for the nft
//
//go:generate mockgen -source=payment.go -destination=../mocks/payment_policy.go -package=mocks -mock_names=PaymentPolicy=MockPaymentPolicy
type PaymentPolicy interface {
	// Covers reports whether any of the calls settles price to the nft owner
	Covers(nft *schema.NFT, price *uint256.Int, extra []domain.ExtraCall) bool
}

type transferPolicy struct {
	accepted []string
}

// NewTransferPolicy creates a policy accepting a transfer call whose first argument is the
// current owner and whose second argument is an amount of at least the price.
// When no calls are given DefaultAcceptedCalls is used.
func NewTransferPolicy(acceptedCalls ...string) PaymentPolicy {
	if len(acceptedCalls) == 0 {
		acceptedCalls = DefaultAcceptedCalls
	}
	return &transferPolicy{accepted: acceptedCalls}
}

func (p *transferPolicy) Covers(nft *schema.NFT, price *uint256.Int, extra []domain.ExtraCall) bool {
	for _, call := range extra {
		if !p.accepts(call) || len(call.Args) < 2 {
			continue
		}
		if strings.TrimSpace(call.Args[0]) != nft.CurrentOwner {
			continue
		}
		amount, err := ParsePrice(call.Args[1])
		if err != nil {
			continue
		}
		if !amount.Lt(price) {
			return true
		}
	}
	return false
}

func (p *transferPolicy) accepts(call domain.ExtraCall) bool {
	for _, name := range p.accepted {
		if call.Is(name) {
			return true
		}
	}
	return false
}
