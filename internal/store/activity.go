package store

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// RecordActivity prepends an entry to the activity log and flushes. The log
// keeps only the most recent types.MaxActivities entries, newest first.
func (s *Store) RecordActivity(text, icon string) error {
	s.logActivity(text, icon)
	return s.flush()
}

// Activities returns a copy of the activity log, newest first.
func (s *Store) Activities() []types.Activity {
	out := make([]types.Activity, len(s.ws.Activities))
	copy(out, s.ws.Activities)
	return out
}

// logActivity records an entry without flushing; mutating operations flush
// once at the end.
func (s *Store) logActivity(text, icon string) {
	entry := types.Activity{Text: text, Icon: icon, Time: s.now()}
	s.ws.Activities = append([]types.Activity{entry}, s.ws.Activities...)
	if len(s.ws.Activities) > types.MaxActivities {
		s.ws.Activities = s.ws.Activities[:types.MaxActivities]
	}
	s.log.Debug("activity recorded", zap.String("text", text))
}
