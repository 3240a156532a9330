package meeting

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

var relativeUnits = map[string]time.Duration{
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
	"week":   7 * 24 * time.Hour,
}

// RelativeAge parses display dates such as "Just now" or "3 hours ago".
// Anything it cannot read counts as now.
func RelativeAge(date string) time.Duration {
	fields := strings.Fields(strings.ToLower(date))
	if len(fields) != 3 || fields[2] != "ago" {
		return 0
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0
	}

	unit, ok := relativeUnits[strings.TrimSuffix(fields[1], "s")]
	if !ok {
		return 0
	}
	return time.Duration(n) * unit
}

// sortNotifications orders notifications newest first, keeping the input
// order among equal ages
func sortNotifications(notifications []*entities.Notification) {
	sort.SliceStable(notifications, func(i, j int) bool {
		return RelativeAge(notifications[i].Date) < RelativeAge(notifications[j].Date)
	})
}
