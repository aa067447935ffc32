// Package glossa is an in-memory localized-string resolver: it ingests
// hierarchical JSON or YAML translation files, flattens them into per-locale
// key tables, and resolves dotted keys at runtime with locale fallback,
// placeholder substitution, and hot reload of edited files.
//
// A Store is an explicit handle, not a global: tests and services construct
// their own isolated instances. Lookups take a shared lock and run
// concurrently; ingestion, reload, and locale switches take the exclusive
// lock for their duration.
//
// # Basic Usage
//
// Load a directory of translation files and resolve keys:
//
//	store, err := glossa.New(glossa.WithDefaultLocale("en"))
//	if err != nil {
//		return err
//	}
//	if err := store.LoadDirectory("langs", false); err != nil {
//		return err // the directory itself is missing
//	}
//
//	store.SetLocale("fr")
//	fmt.Println(store.Translate("ui.button.play")) // "Jouer"
//
// One file is one namespace, named after the file stem. The file's top
// level maps locale codes to nested objects whose string leaves become the
// translations:
//
//	// ui.json
//	{
//	  "en": {"button": {"play": "Play"}},
//	  "fr": {"button": {"play": "Jouer"}}
//	}
//
// yields the key "ui.button.play" in the "en" and "fr" tables. Lookups
// check the active locale first, then the default locale; a key absent from
// both resolves to the in-band sentinel "[Missing:ui.button.play]" rather
// than an error.
//
// # Placeholders
//
// LocalizedString defers resolution to the moment of use and substitutes
// {name} tokens from its parameter map:
//
//	greeting := store.L("messages.welcome", glossa.M{"username": "Oksi"})
//	fmt.Println(greeting) // re-resolves against the active locale
//
// Unknown placeholder names and unterminated braces are copied through
// unchanged.
//
// # Hot Reload
//
// CheckForChanges polls tracked files' modification times and re-ingests
// only the changed ones; the caller picks the cadence. Watch does the same
// push-based via fsnotify:
//
//	if err := store.Watch(ctx, "langs"); err != nil {
//		return err
//	}
//
// ReloadAll re-ingests every tracked file; pass clearFirst to rebuild the
// tables from scratch. Without clearing, reload is an overwrite-merge and
// keys removed from a file remain loaded until a clearing reload.
//
// # Error Reporting
//
// Failures of individual files during a directory load or reload do not
// abort the operation. They are forwarded to an optional reporter together
// with a numeric code (ReportOpenFailure, ReportScanFailure,
// ReportReloadFailure):
//
//	store, _ := glossa.New(
//		glossa.WithErrorReporter(func(msg string, code int) {
//			log.Printf("i18n [%d]: %s", code, msg)
//		}),
//	)
//
// Register the reporter before the first ingestion call; earlier failures
// are dropped.
package glossa
