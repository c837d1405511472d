package iban

// banks maps the 5-digit bank code to the bank's legal name.
// Read-only after package initialization.
var banks = map[string]string{
	"00001": "T.C. Ziraat Bankası",
	"00010": "Türkiye Cumhuriyeti Ziraat Bankası A.Ş.",
	"00012": "Türkiye Halk Bankası A.Ş.",
	"00015": "Türkiye Vakıflar Bankası T.A.O.",
	"00032": "Türk Ekonomi Bankası A.Ş.",
	"00046": "Akbank T.A.Ş.",
	"00059": "Şekerbank T.A.Ş.",
	"00061": "Türkiye İş Bankası A.Ş.",
	"00062": "Türkiye Garanti Bankası A.Ş.",
	"00064": "Türkiye İş Bankası A.Ş. (Alternative)",
	"00067": "Yapı ve Kredi Bankası A.Ş.",
	"00091": "Türk Ekonomi Bankası A.Ş. (TEB)",
	"00096": "Türkiye Finans Katılım Bankası A.Ş.",
	"00099": "ING Bank A.Ş.",
	"00103": "Fibabanka A.Ş.",
	"00108": "Türkiye Kalkınma Bankası A.Ş.",
	"00111": "QNB Finansbank A.Ş.",
	"00123": "Odea Bank A.Ş.",
	"00124": "Denizbank A.Ş.",
	"00134": "Kuveyt Türk Katılım Bankası A.Ş.",
	"00143": "Albaraka Türk Katılım Bankası A.Ş.",
	"00146": "Vakıf Katılım Bankası A.Ş.",
	"00203": "Ziraat Katılım Bankası A.Ş.",
	"00206": "QNB Finans Portföy Yönetimi A.Ş.",
	"00209": "Alternatif Bank A.Ş.",
}

// BankName returns the legal name registered for a 5-digit bank code.
func BankName(code string) (string, bool) {
	name, ok := banks[code]
	return name, ok
}
