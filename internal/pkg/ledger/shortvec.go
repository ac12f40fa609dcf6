package ledger

import (
	"fmt"
)

// compact-u16: 7 bits per byte, high bit set on continuation, at most 3 bytes

func appendCompactU16(dst []byte, n int) []byte {
	v := uint16(n)
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return append(dst, b)
		}
		dst = append(dst, b|0x80)
	}
}

func readCompactU16(data []byte, offset int) (int, int, error) {
	var v int
	for i := 0; i < 3; i++ {
		if offset+i >= len(data) {
			return 0, 0, fmt.Errorf("%w: truncated length prefix", ErrMalformedTransaction)
		}
		b := data[offset+i]
		v |= int(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			if i > 0 && b == 0 {
				return 0, 0, fmt.Errorf("%w: non-canonical length prefix", ErrMalformedTransaction)
			}
			if v > 0xffff {
				return 0, 0, fmt.Errorf("%w: length prefix overflows u16", ErrMalformedTransaction)
			}
			return v, offset + i + 1, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: length prefix longer than 3 bytes", ErrMalformedTransaction)
}
