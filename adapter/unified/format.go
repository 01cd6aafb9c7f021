package unified

import (
	"strings"

	"github.com/trickstertwo/unilog"
)

// metadataSeparator joins the message and its rendered metadata.
const metadataSeparator = " -- "

// Prettify renders md as "k1=v1 k2=v2" in ascending key order. Empty
// metadata renders as "".
func Prettify(md unilog.Metadata) string {
	if len(md) == 0 {
		return ""
	}
	var b strings.Builder
	for i, k := range md.Keys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(md[k].String())
	}
	return b.String()
}

// Compose builds the final line for level: the icon, a space, the message,
// and " -- " plus pretty when pretty is non-empty. Empty parts are dropped
// so a missing icon leaves no leading space.
func Compose(level unilog.Level, msg, pretty string) string {
	if pretty != "" {
		msg += metadataSeparator + pretty
	}
	icon := Icon(level)
	switch {
	case icon == "":
		return msg
	case msg == "":
		return icon
	default:
		return icon + " " + msg
	}
}
