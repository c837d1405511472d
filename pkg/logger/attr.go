package logger

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/trvalidator/pkg/sanitizer"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". Nil errors produce an empty Attr,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// MaskedID logs a national ID or tax number showing only its last two
// characters.
func MaskedID(key, value string) slog.Attr {
	return slog.String(key, sanitizer.MaskTail(value, 2))
}

// MaskedPhone logs a phone number showing only its last four characters.
func MaskedPhone(key, value string) slog.Attr {
	return slog.String(key, sanitizer.MaskTail(value, 4))
}

// MaskedIBAN logs an IBAN keeping the country code, check digits and the
// last four characters visible.
func MaskedIBAN(key, value string) slog.Attr {
	return slog.String(key, sanitizer.MaskString(value, 4))
}

// Valid records the boolean verdict under "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}
