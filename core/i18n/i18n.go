// File: i18n.go
// Title: Message Source Interface
// Description: Defines the MessageSource abstraction for resolving
//              localized messages and provides the static empty source.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial message source interface

package i18n

import (
	"golang.org/x/text/language"

	"github.com/msto63/corekit/core/errorx"
)

// MessageSource resolves localized messages by locale and key. Args feed
// template interpolation; implementations that do not interpolate ignore
// them.
type MessageSource interface {
	// Message returns the resolved message text. A missing key yields an
	// error with code errorx.CodeMessageMissing.
	Message(locale language.Tag, key string, args map[string]interface{}) (string, error)

	// Has reports whether the key resolves for the locale
	Has(locale language.Tag, key string) bool
}

// Empty returns the message source that resolves nothing. Useful as a
// default wherever a MessageSource is required but no catalog is
// configured.
func Empty() MessageSource {
	return emptySource{}
}

type emptySource struct{}

func (emptySource) Message(locale language.Tag, key string, _ map[string]interface{}) (string, error) {
	return "", errorx.Newf("message %q not found", key).
		WithCode(errorx.CodeMessageMissing).
		WithOperation("i18n.Empty").
		WithDetail("locale", locale.String()).
		WithDetail("key", key)
}

func (emptySource) Has(language.Tag, string) bool {
	return false
}
