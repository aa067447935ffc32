package glossa

// Report codes passed to the ErrorReporter alongside the message.
const (
	// ReportOpenFailure signals a translation file that could not be opened.
	ReportOpenFailure = 0
	// ReportScanFailure signals a file that failed to load during a
	// directory scan.
	ReportScanFailure = 1
	// ReportReloadFailure signals a file that failed to load during a
	// reload or change check.
	ReportReloadFailure = 2
)

// ErrorReporter receives per-file ingestion failures that do not abort the
// surrounding operation. The numeric code is one of the Report constants.
type ErrorReporter func(message string, code int)

// SetErrorReporter registers the sink receiving per-file ingestion
// failures. Failures raised before registration are dropped, so set the
// reporter before the first ingestion call.
func (s *Store) SetErrorReporter(r ErrorReporter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reporter = r
}

// report forwards a non-fatal failure to the registered reporter, if any.
func (s *Store) report(message string, code int) {
	s.mu.RLock()
	r := s.reporter
	s.mu.RUnlock()

	if r != nil {
		r(message, code)
	}
}
