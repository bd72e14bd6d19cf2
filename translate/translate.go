// Package translate renders user facing messages in the user's language.
//
// Message keys are en-US fmt formats. Other languages are registered in the
// default x/text catalog (see catalog.go) and the printer is selected from the
// system locales at startup.
package translate

import (
	"log"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type selection struct {
	tag     language.Tag
	printer *message.Printer
}

var current atomic.Pointer[selection]

func init() {
	registerCatalog()

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("lovelace: locale: %v", err)
	}

	Use(locales...)
}

// Use forces the message language, ignoring the system locales.
// With no tags, en-US is used.
func Use(tags ...string) {
	if len(tags) == 0 {
		tags = []string{"en-US"}
	}
	tag := message.MatchLanguage(tags...)
	current.Store(&selection{tag: tag, printer: message.NewPrinter(tag)})
}

// Language returns the language currently used for messages.
func Language() language.Tag {
	return current.Load().tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return current.Load().printer.Sprintf(key, args...)
}
