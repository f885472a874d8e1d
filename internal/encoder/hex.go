package encoder

import (
	"fmt"
	"strings"
)

// bytesPerLine is how many array elements are emitted before a line break.
const bytesPerLine = 8

// hexBody formats data as the body of the hex-mode array declaration. Each
// byte becomes " 0xNN" with two lowercase digits; elements are separated by
// commas, and a newline plus three-space indent precedes every 8th element
// (positions 0, 8, 16, ...). The comma lands before the line break, so wrapped
// lines end with a comma and there is never a trailing comma after the last
// byte. Empty input yields an empty body.
func hexBody(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 6)

	for i, c := range data {
		if i > 0 {
			b.WriteByte(',')
		}
		if i%bytesPerLine == 0 {
			b.WriteString("\n   ")
		}
		fmt.Fprintf(&b, " 0x%02x", c)
	}

	return b.String()
}
