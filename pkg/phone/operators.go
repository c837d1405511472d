package phone

const (
	Turkcell    = "Turkcell"
	Vodafone    = "Vodafone"
	TurkTelekom = "Türk Telekom"
	Other       = "Diğer"
)

// operators maps the "5XX" prefix to the carrier name.
// Read-only after package initialization.
var operators = map[string]string{
	"501": Other,
	"505": Other,
	"506": Other,
	"507": Other,
	"508": Other,
	"509": Other,

	"530": Turkcell,
	"531": Turkcell,
	"532": Turkcell,
	"533": Turkcell,
	"534": Turkcell,
	"535": Turkcell,
	"536": Turkcell,
	"537": Turkcell,
	"538": Turkcell,
	"539": Turkcell,

	"540": Vodafone,
	"541": Vodafone,
	"542": Vodafone,
	"543": Vodafone,
	"544": Vodafone,
	"545": Vodafone,
	"546": Vodafone,
	"547": Vodafone,
	"548": Vodafone,
	"549": Vodafone,

	"550": TurkTelekom,
	"551": TurkTelekom,
	"552": TurkTelekom,
	"553": TurkTelekom,
	"554": TurkTelekom,
	"555": TurkTelekom,
	"556": TurkTelekom,
	"557": TurkTelekom,
	"558": TurkTelekom,
	"559": TurkTelekom,
}

// Operator returns the carrier for a three-digit "5XX" prefix.
func Operator(prefix string) (string, bool) {
	name, ok := operators[prefix]
	return name, ok
}
