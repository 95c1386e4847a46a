package types

import "time"

// MaxActivities bounds the recent-activity log. New entries are prepended
// and the log is truncated to the most recent entries.
const MaxActivities = 10

// Activity is one entry in the recent-activity log.
type Activity struct {
	Text string    `json:"text"`
	Icon string    `json:"icon"`
	Time time.Time `json:"time"`
}

// Activity icons used by the store when recording operations.
const (
	IconContact  = "👤"
	IconCategory = "🏷️"
	IconBook     = "📚"
	IconSale     = "💰"
	IconEdit     = "✏️"
	IconDelete   = "🗑️"
	IconExport   = "📤"
	IconImport   = "📥"
	IconReport   = "📊"
	IconBackup   = "💾"
)
