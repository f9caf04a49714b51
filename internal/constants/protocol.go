package constants

// Query protocol constants.

// Packet Structure Constants
const (
	// PacketHeaderSize is the packet length header size (2 bytes, little-endian uint16)
	PacketHeaderSize = 2

	// MaxPacketSize is the largest frame the 16-bit length header can describe
	MaxPacketSize = 0xFFFF
)

// Buffer Sizes
const (
	// DefaultReadBufSize is the default read buffer for one request payload
	DefaultReadBufSize = 16 * 1024

	// DefaultSendBufSize is the default buffer for one response frame
	DefaultSendBufSize = 4 * 1024
)

// Request limits
const (
	// MaxSnapshotEffects caps the effect count in one request.
	// Heavily modded actors rarely carry more than a few hundred.
	MaxSnapshotEffects = 1024

	// MaxKillerKeywords caps the killer keyword list in one request
	MaxKillerKeywords = 128
)
