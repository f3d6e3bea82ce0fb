/*
Package locale formats results of arithmetic expressions for humans.

Numbers are printed with the decimal and grouping separators of a locale,
e.g. "1,234.5" for en-US and "1.234,5" for de-DE. The locale may be given
explicitly or detected from the user's environment.
*/
package locale

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// DefaultLocale is used if the user's locale cannot be detected.
const DefaultLocale = "en-US"

// FromEnvironment returns the user's locale as an IETF language tag.
func FromEnvironment() string {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf("%v", err)
		T().Infof("locale defaults to %v", DefaultLocale)
		return DefaultLocale
	}
	T().Infof("detected user locale %v", userLocale)
	return userLocale
}

// Formatter prints numbers for a locale.
type Formatter struct {
	Locale  string       // IETF language tag
	Tag     language.Tag // language tag for Locale
	digits  int
	printer *message.Printer
}

// New creates a formatter for a locale, printing at most maxFractionDigits
// digits after the decimal separator. If locale is empty, the user's locale
// is detected from the environment.
func New(locale string, maxFractionDigits int) *Formatter {
	if locale == "" {
		locale = FromEnvironment()
	}
	tag, err := language.Parse(locale)
	if err != nil {
		T().Errorf("unknown locale %q: %v", locale, err)
		tag = language.Make(DefaultLocale)
	}
	if maxFractionDigits < 0 {
		maxFractionDigits = 0
	}
	return &Formatter{
		Locale:  locale,
		Tag:     tag,
		digits:  maxFractionDigits,
		printer: message.NewPrinter(tag),
	}
}

// Format prints v with the separators of the formatter's locale.
func (f *Formatter) Format(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(f.digits)))
}
