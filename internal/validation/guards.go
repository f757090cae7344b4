package validation

import (
	"regexp"
	"strings"

	"github.com/holiman/uint256"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/rmrk"
	"github.com/feral-file/ff-rmrk-indexer/internal/store/schema"
)

var decimalRegex = regexp.MustCompile(`^[0-9]+$`)

// NotEmpty fails when an identifier is empty
func NotEmpty(kind string, id string) Check {
	return func() error {
		if strings.TrimSpace(id) == "" {
			return reject(ReasonEmptyID, "%s id is empty", kind)
		}
		return nil
	}
}

// Existence fails when whether the entity was found differs from want
func Existence(kind string, id string, found bool, want bool) Check {
	return func() error {
		switch {
		case want && !found:
			return reject(ReasonNotFound, "%s %s does not exist", kind, id)
		case !want && found:
			return reject(ReasonAlreadyExists, "%s %s already exists", kind, id)
		}
		return nil
	}
}

// Exists fails when the entity was not found
func Exists(kind string, id string, found bool) Check {
	return Existence(kind, id, found, true)
}

// NotExists fails when the entity was found
func NotExists(kind string, id string, found bool) Check {
	return Existence(kind, id, found, false)
}

// IsNFTOwner fails when caller is not the current owner of the nft
func IsNFTOwner(nft *schema.NFT, caller string) Check {
	return func() error {
		if nft.CurrentOwner != caller {
			return reject(ReasonNotOwner, "%s is not the owner of nft %s (owner: %s)", caller, nft.ID, nft.CurrentOwner)
		}
		return nil
	}
}

// IsCollectionOwner fails when caller is not the current owner of the collection
func IsCollectionOwner(collection *schema.Collection, caller string) Check {
	return func() error {
		if collection.CurrentOwner != caller {
			return reject(ReasonNotOwner, "%s is not the owner of collection %s (owner: %s)", caller, collection.ID, collection.CurrentOwner)
		}
		return nil
	}
}

// NotBurned fails when the nft was consumed
func NotBurned(nft *schema.NFT) Check {
	return func() error {
		if nft.Burned {
			return reject(ReasonBurned, "nft %s is burned", nft.ID)
		}
		return nil
	}
}

// Transferable fails when the nft is not transferable
func Transferable(nft *schema.NFT) Check {
	return func() error {
		if !nft.Transferable {
			return reject(ReasonNotTransferable, "nft %s is not transferable", nft.ID)
		}
		return nil
	}
}

// HasMetadata fails when the interaction carries no metadata
func HasMetadata(interaction *rmrk.Interaction) Check {
	return func() error {
		if interaction == nil || strings.TrimSpace(interaction.Metadata) == "" {
			return reject(ReasonMissingMetadata, "interaction has no metadata")
		}
		return nil
	}
}

// ParsePrice parses an unsigned decimal price
func ParsePrice(raw string) (*uint256.Int, error) {
	raw = strings.TrimSpace(raw)
	if !decimalRegex.MatchString(raw) {
		return nil, reject(ReasonInvalidPrice, "price %q is not an unsigned integer", raw)
	}
	price, err := uint256.FromDecimal(raw)
	if err != nil {
		return nil, reject(ReasonInvalidPrice, "price %q is out of range", raw)
	}
	return price, nil
}

// Price parses raw and fails unless the price is strictly positive, or zero when allowZero is set.
// The parsed value is written to out when out is not nil.
func Price(raw string, allowZero bool, out *uint256.Int) Check {
	return func() error {
		price, err := ParsePrice(raw)
		if err != nil {
			return err
		}
		if price.IsZero() && !allowZero {
			return reject(ReasonNonPositivePrice, "price must be greater than zero")
		}
		if out != nil {
			out.Set(price)
		}
		return nil
	}
}

// NFTPrice applies Price to the stored price of the nft
func NFTPrice(nft *schema.NFT, allowZero bool) Check {
	return func() error {
		return Price(nft.Price, allowZero, nil)()
	}
}

// BuyIsLegal fails unless the nft is for sale and one of the extra calls pays for it
func BuyIsLegal(nft *schema.NFT, extra []domain.ExtraCall, policy PaymentPolicy) Check {
	return func() error {
		price, err := ParsePrice(nft.Price)
		if err != nil {
			return err
		}
		if price.IsZero() {
			return reject(ReasonNonPositivePrice, "nft %s is not for sale", nft.ID)
		}
		if len(extra) == 0 {
			return reject(ReasonIllegalBuy, "no payment accompanies the purchase of nft %s", nft.ID)
		}
		if !policy.Covers(nft, price, extra) {
			return reject(ReasonIllegalBuy, "no payment covers the price %s of nft %s", price.Dec(), nft.ID)
		}
		return nil
	}
}
