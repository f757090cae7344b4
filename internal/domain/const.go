package domain

const (
	// RMRK protocol constants
	RMRK_PREFIX    = "rmrk"
	RMRK_DELIMITER = "::"
	RMRK_VERSION   = "1.0.0"

	// Hex encoded remark prefixes ("rmrk" and "RMRK")
	RMRK_HEX_PREFIX_LOWER = "0x726d726b"
	RMRK_HEX_PREFIX_UPPER = "0x524d524b"
)

// SupportedVersions lists the protocol version tokens accepted by the decoder
var SupportedVersions = []string{RMRK_VERSION, "RMRK" + RMRK_VERSION}
