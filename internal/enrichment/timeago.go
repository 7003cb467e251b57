// Package enrichment derives the signals providers do not supply directly:
// relative times, topic categories, sentiment, sparklines and placeholder
// crypto headlines. Everything here is a pure function of its inputs.
package enrichment

import (
	"fmt"
	"time"
)

// TimeAgo renders a UNIX timestamp relative to now:
// "Just now" (<60s), "<n> min ago" (<1h), "<n> hr ago" (<24h), else "<n>d ago".
// Timestamps in the future are treated as "Just now".
func TimeAgo(unix int64, now time.Time) string {
	diff := now.Unix() - unix
	switch {
	case diff < 60:
		return "Just now"
	case diff < 3600:
		return fmt.Sprintf("%d min ago", diff/60)
	case diff < 86400:
		return fmt.Sprintf("%d hr ago", diff/3600)
	default:
		return fmt.Sprintf("%dd ago", diff/86400)
	}
}
