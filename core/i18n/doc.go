// File: doc.go
// Title: Package Documentation for i18n
// Description: Package i18n provides message resolution for localized
//              applications with file-backed catalogs.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial documentation

// Package i18n resolves localized messages.
//
// The MessageSource interface is the seam components program against:
//
//	type MessageSource interface {
//	    Message(locale language.Tag, key string, args map[string]interface{}) (string, error)
//	    Has(locale language.Tag, key string) bool
//	}
//
// Empty returns a source that never resolves, for code paths that need a
// MessageSource but have no catalog configured.
//
// Catalog is the file-backed implementation. It loads one TOML or YAML
// file per locale from a directory, named by locale tag:
//
//	locales/
//	    en.toml
//	    de.toml
//	    fr.yaml
//
// Keys use dot notation over nested tables ("errors.not_found"), message
// texts are text/template templates ("{{.Name}} is missing"), and array
// values carry plural forms selected by Plural. Requested locales are
// matched against the loaded ones, so "en-GB" is served by "en" and
// unknown locales fall back to the configured default.
//
//	cat, err := i18n.NewCatalog(i18n.Options{
//	    Dir:           "locales",
//	    DefaultLocale: language.English,
//	})
//	msg, err := cat.Message(language.German, "greeting", map[string]interface{}{"Name": "Ada"})
//
// A Watcher (Catalog.Watch) reloads files as they change on disk, for
// editing messages against a running application.
package i18n
