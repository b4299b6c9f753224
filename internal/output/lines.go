package output

import (
	"bufio"
	"io"
)

// WriteLines prints each line followed by a newline, in the given order.
// Output is buffered and flushed once at the end.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
