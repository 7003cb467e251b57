package enrichment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeAgo_Buckets(t *testing.T) {
	now := time.Date(2025, 9, 18, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) int64 { return now.Add(-d).Unix() }

	cases := []struct {
		ago  time.Duration
		want string
	}{
		{0, "Just now"},
		{59 * time.Second, "Just now"},
		{60 * time.Second, "1 min ago"},
		{59*time.Minute + 59*time.Second, "59 min ago"},
		{time.Hour, "1 hr ago"},
		{23*time.Hour + 59*time.Minute, "23 hr ago"},
		{24 * time.Hour, "1d ago"},
		{10 * 24 * time.Hour, "10d ago"},
		{-5 * time.Minute, "Just now"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TimeAgo(at(tc.ago), now), "ago=%v", tc.ago)
	}
}

// Every past timestamp lands in exactly one bucket consistent with now-t.
func TestTimeAgo_ExactlyOneBucket(t *testing.T) {
	now := time.Date(2025, 9, 18, 12, 0, 0, 0, time.UTC)
	for diff := int64(0); diff < 3*86400; diff += 37 {
		got := TimeAgo(now.Unix()-diff, now)

		matches := 0
		if got == "Just now" {
			matches++
			assert.Less(t, diff, int64(60))
		}
		if strings.HasSuffix(got, " min ago") {
			matches++
			assert.True(t, diff >= 60 && diff < 3600, "diff=%d got=%s", diff, got)
		}
		if strings.HasSuffix(got, " hr ago") {
			matches++
			assert.True(t, diff >= 3600 && diff < 86400, "diff=%d got=%s", diff, got)
		}
		if strings.HasSuffix(got, "d ago") {
			matches++
			assert.GreaterOrEqual(t, diff, int64(86400))
		}
		assert.Equal(t, 1, matches, "diff=%d got=%s", diff, got)
	}
}
