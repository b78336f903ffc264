package scale

import (
	"encoding/binary"
	"math/bits"

	xc "github.com/openweb3-io/txsigner/types"
)

const (
	minEraPeriod = 4
	maxEraPeriod = 1 << 16
	// phases are quantized once the period exceeds 4096 blocks
	eraQuantizeShift = 12
)

// Era is the mortality window of a transaction. The zero value is immortal.
type Era struct {
	Period uint64
	Phase  uint64
}

func ImmortalEra() Era {
	return Era{}
}

// MortalEra returns the era starting at blockNumber that lasts roughly period
// blocks. The period is rounded up to a power of two within [4, 65536] and the
// phase is quantized so that it fits the 12 bits available.
func MortalEra(blockNumber, period uint64) Era {
	period = nextPowerOfTwo(period)
	period = max(min(period, maxEraPeriod), minEraPeriod)
	phase := blockNumber % period
	quantizeFactor := max(period>>eraQuantizeShift, 1)
	return Era{
		Period: period,
		Phase:  phase / quantizeFactor * quantizeFactor,
	}
}

func nextPowerOfTwo(v uint64) uint64 {
	if v <= 1 {
		return 1
	}
	if v > maxEraPeriod {
		return maxEraPeriod
	}
	return 1 << bits.Len64(v-1)
}

func (e Era) IsImmortal() bool {
	return e.Period == 0
}

// Encode returns 0x00 for an immortal era, otherwise two little-endian bytes:
// the low nibble holds log2(period)-1, the upper 12 bits the quantized phase.
func (e Era) Encode() []byte {
	if e.IsImmortal() {
		return []byte{0x00}
	}
	quantizeFactor := max(e.Period>>eraQuantizeShift, 1)
	low := uint64(max(min(bits.TrailingZeros64(e.Period)-1, 15), 1))
	high := e.Phase / quantizeFactor << 4
	return binary.LittleEndian.AppendUint16(nil, uint16(low|high))
}

// EncodeEra is MortalEra(blockNumber, period).Encode().
func EncodeEra(blockNumber, period uint64) []byte {
	return MortalEra(blockNumber, period).Encode()
}

// DecodeEra parses an era from the start of b and returns the bytes consumed.
func DecodeEra(b []byte) (Era, int, error) {
	if len(b) == 0 {
		return Era{}, 0, xc.NewErr(xc.ErrTruncatedInput, "empty era")
	}
	if b[0] == 0 {
		return ImmortalEra(), 1, nil
	}
	if len(b) < 2 {
		return Era{}, 0, xc.NewErr(xc.ErrTruncatedInput, "mortal era needs 2 bytes")
	}
	encoded := uint64(binary.LittleEndian.Uint16(b))
	period := uint64(2) << (encoded & 0xf)
	quantizeFactor := max(period>>eraQuantizeShift, 1)
	phase := (encoded >> 4) * quantizeFactor
	if period < minEraPeriod || phase >= period {
		return Era{}, 0, xc.NewErr(xc.ErrInvalidValue, "invalid era %#04x", encoded)
	}
	return Era{Period: period, Phase: phase}, 2, nil
}
