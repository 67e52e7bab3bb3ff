package imgui

import "strings"

// scratchBuffer materializes Go strings as NUL-terminated bytes for the
// native ABI. One buffer is owned per Ui and rewritten on every call, so
// the hot widget path never allocates once the buffer has warmed up.
type scratchBuffer struct {
	buf []byte
}

// scratchKeepCap is the capacity retained across frames. Anything larger
// is released at frame end so a single huge label does not pin memory.
const scratchKeepCap = 64 * 1024

// txt writes s followed by a terminator and returns a view into the
// buffer. The view is valid only until the next txt call on the same
// buffer. Strings with an embedded NUL are truncated at the first NUL;
// the native side would stop there anyway, so truncation keeps the
// returned bytes and the native read in agreement.
func (b *scratchBuffer) txt(s string) []byte {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	b.buf = b.buf[:0]
	b.buf = append(b.buf, s...)
	b.buf = append(b.buf, 0)
	return b.buf
}

// reset is called at frame end. Capacity is kept for reuse unless it grew
// past scratchKeepCap.
func (b *scratchBuffer) reset() {
	if cap(b.buf) > scratchKeepCap {
		b.buf = nil
		return
	}
	b.buf = b.buf[:0]
}
