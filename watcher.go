package glossa

import (
	"maps"
	"os"
	"slices"
)

// CheckForChanges polls every tracked file's modification time against the
// last-observed value and re-ingests the files that changed, one by one. It
// is pull-based: the caller decides how often to invoke it, and nothing runs
// in the background (see Watch for the push variant).
//
// Files whose path no longer exists are skipped. Their record is kept, not
// purged, so a file that reappears at the same path is picked up again on a
// later check.
//
// The record's modification time is advanced even when the re-ingestion
// itself fails, so a broken edit is reported once rather than on every poll.
func (s *Store) CheckForChanges() {
	s.mu.RLock()
	paths := slices.Clone(s.files)
	times := maps.Clone(s.modTimes)
	s.mu.RUnlock()

	for _, path := range paths {
		fi, err := os.Stat(path)
		if err != nil {
			continue
		}
		if fi.ModTime().Equal(times[path]) {
			continue
		}

		s.mu.Lock()
		s.modTimes[path] = fi.ModTime()
		s.mu.Unlock()

		s.log.Info("detected change in translation file", "path", path)
		if err := s.LoadFile(path); err != nil {
			s.report("failed to reload "+path+": "+err.Error(), ReportReloadFailure)
			s.log.Warn("failed to reload translation file", "path", path, "error", err)
		}
	}
}
