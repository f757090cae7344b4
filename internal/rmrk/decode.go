package rmrk

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
)

// Unhex decodes a 0x prefixed hex string into text.
// Anything that is not valid hex is returned unchanged.
func Unhex(value string) string {
	if !strings.HasPrefix(value, "0x") && !strings.HasPrefix(value, "0X") {
		return value
	}
	decoded, err := hex.DecodeString(value[2:])
	if err != nil {
		return value
	}
	return string(decoded)
}

// Decode parses a remark payload (plain text or hex) into a Message.
//
// A payload without the protocol prefix returns ErrNotRemark and a nil message.
// An unknown event token decodes successfully with Event set to RemarkEventUnknown.
// For a known event token the returned message always carries the event, so callers
// can attribute ErrUnsupportedVersion and ErrMalformed failures to it.
func Decode(payload string) (*Message, error) {
	text := strings.TrimSpace(Unhex(payload))
	parts := strings.Split(text, domain.RMRK_DELIMITER)
	if len(parts) < 3 || !strings.EqualFold(parts[0], domain.RMRK_PREFIX) {
		return nil, ErrNotRemark
	}

	msg := &Message{
		Event:   domain.ParseRemarkEvent(strings.ToUpper(parts[1])),
		Version: parts[2],
		Raw:     text,
	}
	if !msg.Event.Known() {
		return msg, nil
	}
	if !slices.Contains(domain.SupportedVersions, msg.Version) {
		return msg, fmt.Errorf("%w: %q", ErrUnsupportedVersion, msg.Version)
	}

	fields := parts[3:]
	var err error
	switch msg.Event {
	case domain.RemarkEventMint:
		msg.Collection, err = decodeCollection(fields)
	case domain.RemarkEventMintNFT:
		msg.NFT, err = decodeNFT(fields)
	default:
		msg.Interaction, err = decodeInteraction(fields)
	}
	if err != nil {
		return msg, fmt.Errorf("%w: %s: %v", ErrMalformed, msg.Event, err)
	}

	return msg, nil
}

// decodeCollection accepts either a URI encoded JSON body or
// the positional layout id::name::max::symbol::metadata
func decodeCollection(fields []string) (*Collection, error) {
	if body, ok := jsonBody(fields); ok {
		var raw struct {
			ID       string          `json:"id"`
			Name     string          `json:"name"`
			Max      json.RawMessage `json:"max"`
			Issuer   string          `json:"issuer"`
			Symbol   string          `json:"symbol"`
			Metadata string          `json:"metadata"`
		}
		if err := unmarshalBody(body, &raw); err != nil {
			return nil, err
		}
		maxSupply, err := parseUint(jsonScalar(raw.Max))
		if err != nil {
			return nil, fmt.Errorf("invalid max: %w", err)
		}
		return &Collection{
			ID:       raw.ID,
			Name:     strings.TrimSpace(raw.Name),
			Max:      maxSupply,
			Issuer:   raw.Issuer,
			Symbol:   strings.TrimSpace(raw.Symbol),
			Metadata: raw.Metadata,
		}, nil
	}

	if len(fields) != 5 {
		return nil, fmt.Errorf("expected 5 fields, got %d", len(fields))
	}
	maxSupply, err := parseUint(fields[2])
	if err != nil {
		return nil, fmt.Errorf("invalid max: %w", err)
	}
	return &Collection{
		ID:       fields[0],
		Name:     strings.TrimSpace(fields[1]),
		Max:      maxSupply,
		Symbol:   strings.TrimSpace(fields[3]),
		Metadata: fields[4],
	}, nil
}

// decodeNFT accepts either a URI encoded JSON body or
// the positional layout collection::instance::transferable::sn::metadata::name
func decodeNFT(fields []string) (*NFT, error) {
	if body, ok := jsonBody(fields); ok {
		var raw struct {
			Collection   string          `json:"collection"`
			Name         string          `json:"name"`
			Instance     string          `json:"instance"`
			Transferable json.RawMessage `json:"transferable"`
			SN           string          `json:"sn"`
			Metadata     string          `json:"metadata"`
		}
		if err := unmarshalBody(body, &raw); err != nil {
			return nil, err
		}
		transferable, err := parseFlag(jsonScalar(raw.Transferable))
		if err != nil {
			return nil, fmt.Errorf("invalid transferable: %w", err)
		}
		return &NFT{
			Collection:   raw.Collection,
			Name:         raw.Name,
			Instance:     raw.Instance,
			Transferable: transferable,
			SN:           raw.SN,
			Metadata:     raw.Metadata,
		}, nil
	}

	if len(fields) != 6 {
		return nil, fmt.Errorf("expected 6 fields, got %d", len(fields))
	}
	transferable, err := parseFlag(fields[2])
	if err != nil {
		return nil, fmt.Errorf("invalid transferable: %w", err)
	}
	return &NFT{
		Collection:   fields[0],
		Instance:     fields[1],
		Transferable: transferable,
		SN:           fields[3],
		Metadata:     fields[4],
		Name:         fields[5],
	}, nil
}

// decodeInteraction reads id[::metadata]. Metadata keeps any further delimiters verbatim.
func decodeInteraction(fields []string) (*Interaction, error) {
	if len(fields) == 0 {
		return nil, errors.New("missing id")
	}
	return &Interaction{
		ID:       fields[0],
		Metadata: strings.Join(fields[1:], domain.RMRK_DELIMITER),
	}, nil
}

// jsonBody reports whether fields hold a single JSON object, URI encoded or not
func jsonBody(fields []string) (string, bool) {
	if len(fields) != 1 {
		return "", false
	}
	body := fields[0]
	if strings.HasPrefix(body, "{") {
		return body, true
	}
	if strings.HasPrefix(strings.ToUpper(body), "%7B") {
		unescaped, err := url.PathUnescape(body)
		if err != nil {
			return body, true
		}
		return unescaped, true
	}
	return "", false
}

func unmarshalBody(body string, v any) error {
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return fmt.Errorf("invalid json body: %w", err)
	}
	return nil
}

// jsonScalar returns a JSON number, bool or string value as plain text
func jsonScalar(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "null" {
		return ""
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		return unquoted
	}
	return s
}

// parseUint reads an unsigned decimal. An empty value is zero.
func parseUint(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 10, 64)
}

// parseFlag reads a boolean written as true/false or 1/0. An empty value is false.
func parseFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true":
		return true, nil
	case "0", "false", "":
		return false, nil
	default:
		return false, fmt.Errorf("unexpected value %q", s)
	}
}
