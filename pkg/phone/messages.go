package phone

const (
	msgEmpty           = "Telefon numarası boş olamaz"
	msgNotDigits       = "Telefon numarası sadece rakam içermelidir"
	msgTooShort        = "Telefon numarası 11 haneli olmalıdır"
	msgTooLong         = "Telefon numarası 11 haneden uzun olamaz"
	msgLeadingDigit    = "Telefon numarası 0 ile başlamalıdır"
	msgNotMobile       = "Sadece cep telefonu numaraları kabul edilir (5XX)"
	msgUnknownOperator = "Geçersiz operatör kodu"
	msgValid           = "Geçerli telefon numarası"
)
