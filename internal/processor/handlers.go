package processor

import (
	"context"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/rmrk"
	"github.com/feral-file/ff-rmrk-indexer/internal/store/schema"
	"github.com/feral-file/ff-rmrk-indexer/internal/validation"
)

const zeroPrice = "0"

func (p *processor) mint(ctx context.Context, c call, payload *rmrk.Collection) error {
	err := validation.Run(
		validation.NotEmpty("collection", payload.ID),
		p.collectionAvailable(ctx, payload.ID),
	)
	if err != nil {
		return err
	}

	collection := &schema.Collection{
		ID:           payload.ID,
		Name:         strings.TrimSpace(payload.Name),
		Symbol:       strings.TrimSpace(payload.Symbol),
		Max:          payload.Max,
		Metadata:     payload.Metadata,
		Issuer:       c.Caller,
		CurrentOwner: c.Caller,
		BlockNumber:  c.block,
		Events:       datatypes.JSONSlice[schema.Event]{c.event(domain.RemarkEventMint, "")},
	}
	if err := p.store.CreateCollection(ctx, collection); err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	p.logger.Info("Collection minted",
		zap.String("collection", collection.ID),
		zap.String("issuer", collection.Issuer),
		zap.Uint64("block", c.block),
	)
	return nil
}

func (p *processor) mintNFT(ctx context.Context, c call, payload *rmrk.NFT) error {
	id := domain.NFTID(c.block, payload.Collection, payload.Instance, payload.Name, payload.SN)

	var collection *schema.Collection
	err := validation.Run(
		validation.NotEmpty("collection", payload.Collection),
		p.loadCollection(ctx, payload.Collection, &collection),
		func() error { return validation.IsCollectionOwner(collection, c.Caller)() },
		p.nftAvailable(ctx, id),
	)
	if err != nil {
		return err
	}

	nft := &schema.NFT{
		ID:           id,
		Name:         payload.Name,
		Instance:     payload.Instance,
		Transferable: payload.Transferable,
		CollectionID: payload.Collection,
		SN:           payload.SN,
		Metadata:     payload.Metadata,
		Price:        zeroPrice,
		Burned:       false,
		Issuer:       c.Caller,
		CurrentOwner: c.Caller,
		BlockNumber:  c.block,
		Events:       datatypes.JSONSlice[schema.Event]{c.event(domain.RemarkEventMintNFT, "")},
	}
	if err := p.store.CreateNFT(ctx, nft); err != nil {
		return fmt.Errorf("failed to create nft: %w", err)
	}

	p.logger.Info("NFT minted",
		zap.String("nft", nft.ID),
		zap.String("collection", nft.CollectionID),
		zap.String("owner", nft.CurrentOwner),
	)
	return nil
}

func (p *processor) send(ctx context.Context, c call, interaction *rmrk.Interaction) error {
	var nft *schema.NFT
	err := validation.Run(
		p.loadNFT(ctx, interaction.ID, &nft),
		func() error { return validation.NotBurned(nft)() },
		func() error { return validation.Transferable(nft)() },
		func() error { return validation.IsNFTOwner(nft, c.Caller)() },
		validation.HasMetadata(interaction),
	)
	if err != nil {
		return err
	}

	recipient := strings.TrimSpace(interaction.Metadata)
	nft.CurrentOwner = recipient
	nft.Price = zeroPrice
	nft.Events = append(nft.Events, c.event(domain.RemarkEventSend, recipient))
	if err := p.store.SaveNFT(ctx, nft); err != nil {
		return fmt.Errorf("failed to save nft: %w", err)
	}

	p.logger.Info("NFT sent", zap.String("nft", nft.ID), zap.String("from", c.Caller), zap.String("to", recipient))
	return nil
}

func (p *processor) buy(ctx context.Context, c call, interaction *rmrk.Interaction) error {
	var nft *schema.NFT
	err := validation.Run(
		p.loadNFT(ctx, interaction.ID, &nft),
		func() error { return validation.NotBurned(nft)() },
		func() error { return validation.Transferable(nft)() },
		func() error { return validation.NFTPrice(nft, false)() },
		func() error { return validation.BuyIsLegal(nft, c.Extra, p.policy)() },
	)
	if err != nil {
		return err
	}

	seller := nft.CurrentOwner
	price := nft.Price
	nft.CurrentOwner = c.Caller
	nft.Price = zeroPrice
	nft.Events = append(nft.Events, c.event(domain.RemarkEventBuy, c.Caller))
	if err := p.store.SaveNFT(ctx, nft); err != nil {
		return fmt.Errorf("failed to save nft: %w", err)
	}

	p.logger.Info("NFT bought",
		zap.String("nft", nft.ID),
		zap.String("seller", seller),
		zap.String("buyer", c.Caller),
		zap.String("price", price),
	)
	return nil
}

func (p *processor) consume(ctx context.Context, c call, interaction *rmrk.Interaction) error {
	var nft *schema.NFT
	err := validation.Run(
		p.loadNFT(ctx, interaction.ID, &nft),
		func() error { return validation.NotBurned(nft)() },
		func() error { return validation.IsNFTOwner(nft, c.Caller)() },
	)
	if err != nil {
		return err
	}

	nft.Price = zeroPrice
	nft.Burned = true
	nft.Events = append(nft.Events, c.event(domain.RemarkEventConsume, ""))
	if err := p.store.SaveNFT(ctx, nft); err != nil {
		return fmt.Errorf("failed to save nft: %w", err)
	}

	p.logger.Info("NFT consumed", zap.String("nft", nft.ID), zap.String("owner", c.Caller))
	return nil
}

func (p *processor) list(ctx context.Context, c call, interaction *rmrk.Interaction) error {
	var nft *schema.NFT
	price := new(uint256.Int)
	err := validation.Run(
		p.loadNFT(ctx, interaction.ID, &nft),
		func() error { return validation.NotBurned(nft)() },
		func() error { return validation.Transferable(nft)() },
		func() error { return validation.IsNFTOwner(nft, c.Caller)() },
		validation.HasMetadata(interaction),
		validation.Price(interaction.Metadata, false, price),
	)
	if err != nil {
		return err
	}

	nft.Price = price.Dec()
	nft.Events = append(nft.Events, c.event(domain.RemarkEventList, nft.Price))
	if err := p.store.SaveNFT(ctx, nft); err != nil {
		return fmt.Errorf("failed to save nft: %w", err)
	}

	p.logger.Info("NFT listed", zap.String("nft", nft.ID), zap.String("price", nft.Price))
	return nil
}

func (p *processor) changeIssuer(ctx context.Context, c call, interaction *rmrk.Interaction) error {
	var collection *schema.Collection
	err := validation.Run(
		validation.HasMetadata(interaction),
		p.loadCollection(ctx, interaction.ID, &collection),
		func() error { return validation.IsCollectionOwner(collection, c.Caller)() },
	)
	if err != nil {
		return err
	}

	owner := strings.TrimSpace(interaction.Metadata)
	collection.CurrentOwner = owner
	collection.Events = append(collection.Events, c.event(domain.RemarkEventChangeIssuer, owner))
	if err := p.store.SaveCollection(ctx, collection); err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}

	p.logger.Info("Collection issuer changed",
		zap.String("collection", collection.ID),
		zap.String("from", c.Caller),
		zap.String("to", owner),
	)
	return nil
}

func (p *processor) emote(ctx context.Context, c call, interaction *rmrk.Interaction) error {
	var nft *schema.NFT
	err := validation.Run(
		validation.HasMetadata(interaction),
		p.loadNFT(ctx, interaction.ID, &nft),
		func() error { return validation.NotBurned(nft)() },
	)
	if err != nil {
		return err
	}

	value := strings.TrimSpace(interaction.Metadata)
	id := domain.EmoteID(nft.ID, c.Caller, value)
	existing, err := p.store.GetEmote(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get emote: %w", err)
	}

	if existing != nil {
		if err := p.store.RemoveEmote(ctx, id); err != nil {
			return fmt.Errorf("failed to remove emote: %w", err)
		}
		p.logger.Info("Emote removed", zap.String("emote", id))
		return nil
	}

	emote := &schema.Emote{
		ID:     id,
		NFTID:  nft.ID,
		Caller: c.Caller,
		Value:  value,
	}
	if err := p.store.CreateEmote(ctx, emote); err != nil {
		return fmt.Errorf("failed to create emote: %w", err)
	}

	p.logger.Info("Emote added", zap.String("emote", id))
	return nil
}
