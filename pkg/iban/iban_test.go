package iban_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/trvalidator/pkg/iban"
)

const isBankIBAN = "TR330006100519786457841326"

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid is bankasi iban", func(t *testing.T) {
		t.Parallel()

		res := iban.Validate(isBankIBAN)
		require.True(t, res.Valid, res.Message)
		assert.Equal(t, "TR33 0006 1005 1978 6457 8413 26", res.Formatted)
		assert.Equal(t, "00061", res.BankCode)
		assert.Equal(t, "Türkiye İş Bankası A.Ş.", res.BankName)
		assert.Equal(t, "0519786457841326", res.AccountNumber)
		assert.Equal(t, "33", res.CheckDigits)
		require.NotNil(t, res.ChecksumValid)
		assert.True(t, *res.ChecksumValid)
		assert.Equal(t, "Geçerli IBAN", res.Message)
		assert.NoError(t, res.Err)
	})

	t.Run("loose input forms", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"TR33 0006 1005 1978 6457 8413 26",
			"TR33-0006-1005-1978-6457-8413-26",
			"tr330006100519786457841326",
			"  Tr33 0006 1005 1978 6457 8413 26  ",
			"ＴＲ３３ ０００６ １００５ １９７８ ６４５７ ８４１３ ２６",
			"TR33\t0006\t1005\t1978\t6457\t8413\t26",
			"TR33\u00a00006\u00a01005\u00a01978\u00a06457\u00a08413\u00a026",
			"TR330006100519786457841326\n",
			"TR33 0006 1005 1978 6457 8413 26\r\n",
		}

		for _, in := range inputs {
			res := iban.Validate(in)
			require.True(t, res.Valid, "input %q: %s", in, res.Message)
			assert.Equal(t, "TR33 0006 1005 1978 6457 8413 26", res.Formatted)
			assert.Equal(t, "00061", res.BankCode)
		}
	})

	t.Run("other banks", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			input    string
			bankCode string
			bankName string
		}{
			{"TR860004600000000000123456", "00046", "Akbank T.A.Ş."},
			{"TR020001000999901234567890", "00010", "Türkiye Cumhuriyeti Ziraat Bankası A.Ş."},
			{"TR600006201234567890123456", "00062", "Türkiye Garanti Bankası A.Ş."},
		}

		for _, tt := range tests {
			res := iban.Validate(tt.input)
			require.True(t, res.Valid, "input %q: %s", tt.input, res.Message)
			assert.Equal(t, tt.bankCode, res.BankCode)
			assert.Equal(t, tt.bankName, res.BankName)
		}
	})

	t.Run("unknown bank code is still valid", func(t *testing.T) {
		t.Parallel()

		res := iban.Validate("TR450099900000000000000001")
		require.True(t, res.Valid, res.Message)
		assert.Equal(t, "00999", res.BankCode)
		assert.Empty(t, res.BankName)
		assert.Equal(t, "0000000000000001", res.AccountNumber)
	})

	t.Run("structural failures", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			input   string
			err     error
			message string
		}{
			{"empty", "", iban.ErrEmpty, "IBAN boş olamaz"},
			{"whitespace", "   ", iban.ErrEmpty, "IBAN boş olamaz"},
			{"wrong country", "GR330006100519786457841326", iban.ErrCountry, "IBAN TR ile başlamalıdır"},
			{"no country", "330006100519786457841326", iban.ErrCountry, "IBAN TR ile başlamalıdır"},
			{"single character", "T", iban.ErrCountry, "IBAN TR ile başlamalıdır"},
			{"too short", "TR330006100519786457841", iban.ErrLength, "IBAN 26 karakter olmalıdır"},
			{"too long", "TR3300061005197864578413266", iban.ErrLength, "IBAN 26 karakter olmalıdır"},
			{"letters after country", "TR33000610A519786457841326", iban.ErrNotDigits, "IBAN TR sonrası sadece rakam içermelidir"},
			{"non-ascii letter counts as one character", "TR33000610ç519786457841326", iban.ErrNotDigits, "IBAN TR sonrası sadece rakam içermelidir"},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				res := iban.Validate(tt.input)
				assert.False(t, res.Valid)
				assert.Equal(t, tt.message, res.Message)
				assert.ErrorIs(t, res.Err, tt.err)
				assert.Empty(t, res.Formatted)
				assert.Empty(t, res.BankCode)
				assert.Empty(t, res.BankName)
				assert.Empty(t, res.AccountNumber)
				assert.Empty(t, res.CheckDigits)
				assert.Nil(t, res.ChecksumValid)
			})
		}
	})

	t.Run("checksum failure keeps check digits", func(t *testing.T) {
		t.Parallel()

		res := iban.Validate("TR330006100519786457841325")
		assert.False(t, res.Valid)
		assert.Equal(t, "Geçersiz IBAN", res.Message)
		assert.ErrorIs(t, res.Err, iban.ErrChecksum)
		require.NotNil(t, res.ChecksumValid)
		assert.False(t, *res.ChecksumValid)
		assert.Equal(t, "33", res.CheckDigits)
		assert.Empty(t, res.Formatted)
		assert.Empty(t, res.BankCode)
		assert.Empty(t, res.BankName)
		assert.Empty(t, res.AccountNumber)
	})

	t.Run("single digit mutations of the account number break the checksum", func(t *testing.T) {
		t.Parallel()

		for pos := 10; pos < iban.Length; pos++ {
			for d := byte('0'); d <= '9'; d++ {
				if isBankIBAN[pos] == d {
					continue
				}
				mutated := isBankIBAN[:pos] + string(d) + isBankIBAN[pos+1:]
				res := iban.Validate(mutated)
				assert.False(t, res.Valid, "mutation %s", mutated)
				require.NotNil(t, res.ChecksumValid)
				assert.False(t, *res.ChecksumValid)
			}
		}
	})
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TR33 0006 1005 1978 6457 8413 26", iban.Format(isBankIBAN))
	assert.Equal(t, "TR33 0006 1005 1978 6457 8413 26", iban.Format("TR33 0006 1005 1978 6457 8413 26"))
	assert.Equal(t, "TR33 0006 1005 1978 6457 8413 26", iban.Format("tr33-0006-1005-1978-6457-8413-26"))
	assert.Equal(t, "TR330006", iban.Format("TR330006"))
	assert.Equal(t, "TR33 0006 1005 1978 6457 8413 26", iban.Format("TR33\u00a00006100519786457841326\n"))
	assert.Equal(t, "TR33 0006 10ç5 1978 6457 8413 26", iban.Format("TR33000610ç519786457841326"))

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		for _, in := range []string{isBankIBAN, "TR860004600000000000123456", "XX000000000000000000000000"} {
			once := iban.Format(in)
			assert.Equal(t, once, iban.Format(once), "input %q", in)
		}
	})
}

func TestBankName(t *testing.T) {
	t.Parallel()

	name, ok := iban.BankName("00061")
	assert.True(t, ok)
	assert.Equal(t, "Türkiye İş Bankası A.Ş.", name)

	name, ok = iban.BankName("99999")
	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestCalculateCheckDigit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bank, reserve, account string
		expected               string
	}{
		{"00061", "0", "0519786457841326", "33"},
		{"00046", "0", "0000000000123456", "86"},
		{"00010", "0", "0999901234567890", "02"},
		{"00999", "0", "0000000000000001", "45"},
	}

	for _, tt := range tests {
		got, err := iban.CalculateCheckDigit(tt.bank, tt.reserve, tt.account)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}

	invalid := [][3]string{
		{"0006", "0", "0519786457841326"},
		{"00061", "00", "0519786457841326"},
		{"00061", "0", "051978645784132"},
		{"0006A", "0", "0519786457841326"},
	}
	for _, in := range invalid {
		_, err := iban.CalculateCheckDigit(in[0], in[1], in[2])
		assert.ErrorIs(t, err, iban.ErrInvalidComponent, "input %v", in)
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	got, err := iban.Build("00061", "0", "0519786457841326")
	require.NoError(t, err)
	assert.Equal(t, isBankIBAN, got)

	for _, account := range []string{"0000000000000000", "1234567890123456", "9999999999999999"} {
		built, err := iban.Build("00067", "0", account)
		require.NoError(t, err)
		assert.True(t, iban.IsValid(built), "built %s", built)
	}

	_, err = iban.Build("1", "0", "0")
	assert.ErrorIs(t, err, iban.ErrInvalidComponent)
}
