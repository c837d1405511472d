package tckn

// Messages holds the human-readable text reported for each failure.
// Empty fields fall back to DefaultMessages.
type Messages struct {
	Empty       string
	TooShort    string
	TooLong     string
	LeadingZero string
	Algorithm   string
	NotDigits   string
}

// DefaultMessages are the Turkish messages used when no override is given.
var DefaultMessages = Messages{
	Empty:       "T.C. kimlik numarası boş olamaz",
	TooShort:    "T.C. kimlik numarası 11 haneli olmalıdır",
	TooLong:     "T.C. kimlik numarası 11 haneden uzun olamaz",
	LeadingZero: "T.C. kimlik numarası 0 ile başlayamaz",
	Algorithm:   "Geçersiz T.C. kimlik numarası",
	NotDigits:   "T.C. kimlik numarası sadece rakam içermelidir",
}

// merge returns m with every empty field replaced by the one from base.
func (m Messages) merge(base Messages) Messages {
	pick := func(v, def string) string {
		if v != "" {
			return v
		}
		return def
	}
	return Messages{
		Empty:       pick(m.Empty, base.Empty),
		TooShort:    pick(m.TooShort, base.TooShort),
		TooLong:     pick(m.TooLong, base.TooLong),
		LeadingZero: pick(m.LeadingZero, base.LeadingZero),
		Algorithm:   pick(m.Algorithm, base.Algorithm),
		NotDigits:   pick(m.NotDigits, base.NotDigits),
	}
}

// Option overrides one or more failure messages.
type Option func(*Messages)

// WithMessages overrides every non-empty field of m.
func WithMessages(m Messages) Option {
	return func(c *Messages) { *c = m.merge(*c) }
}

func WithEmptyMessage(msg string) Option {
	return WithMessages(Messages{Empty: msg})
}

func WithTooShortMessage(msg string) Option {
	return WithMessages(Messages{TooShort: msg})
}

func WithTooLongMessage(msg string) Option {
	return WithMessages(Messages{TooLong: msg})
}

func WithLeadingZeroMessage(msg string) Option {
	return WithMessages(Messages{LeadingZero: msg})
}

func WithAlgorithmMessage(msg string) Option {
	return WithMessages(Messages{Algorithm: msg})
}

func WithNotDigitsMessage(msg string) Option {
	return WithMessages(Messages{NotDigits: msg})
}

func resolve(opts []Option) Messages {
	m := DefaultMessages
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}
