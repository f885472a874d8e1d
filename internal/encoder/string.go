package encoder

import (
	"bufio"
	"bytes"
	"strings"
)

// stringBody concatenates every line of data with its line-terminator
// sequence ("\n" or "\r\n") stripped and no separator reinserted, producing
// the payload of the raw-string literal. Multi-line input collapses onto one
// logical line.
//
// The payload is embedded unescaped, so input containing the literal closing
// delimiter sequence corrupts the generated header. String mode is only valid
// for inputs guaranteed not to contain it; no detection is attempted.
func stringBody(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))

	s := bufio.NewScanner(bytes.NewReader(data))
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), len(data)+1)
	for s.Scan() {
		b.Write(s.Bytes())
	}

	return b.String()
}
