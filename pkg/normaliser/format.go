package normaliser

import "strings"

// Phone normalises a Brazilian fixed-line phone number: digits only on
// input, "(12) 3456 7890" (10 digits) or "(12) 3456 78901" (11 digits) on
// output.
func Phone() Normaliser {
	return New(WithTransform(ExtractDigits), WithFormat(formatPhone))
}

// Mobile normalises a Brazilian mobile phone number. The shape is the same
// as a fixed line with an extra digit, so it shares the phone pipeline.
func Mobile() Normaliser {
	return Phone()
}

// Passport normalises a Brazilian passport number: canonical form is two
// uppercase letters and six digits ("AA123456"), display form "AA 123 456".
func Passport() Normaliser {
	return New(
		WithTransform(Chain(ExtractAlnum, strings.ToUpper)),
		WithFormat(formatPassport),
	)
}

// IDCard normalises a Brazilian ID card (RG) number: canonical form is nine
// digits, display form "1234.5678-9".
func IDCard() Normaliser {
	return New(WithTransform(ExtractDigits), WithFormat(formatIDCard))
}

// PostCode normalises a Brazilian post code (CEP): canonical form is eight
// digits, display form "12345-678".
func PostCode() Normaliser {
	return New(WithTransform(ExtractDigits), WithFormat(formatPostCode))
}

// CPF normalises a Brazilian individual taxpayer number: canonical form is
// eleven digits, display form "111.222.333-00".
func CPF() Normaliser {
	return New(WithTransform(ExtractDigits), WithFormat(formatCPF))
}

// CNPJ normalises a Brazilian company taxpayer number: canonical form is
// fourteen digits, display form "00.000.000/0001-00".
func CNPJ() Normaliser {
	return New(WithTransform(ExtractDigits), WithFormat(formatCNPJ))
}

// CreditCard normalises a payment card number: digits only on input, groups
// of four separated by spaces on output.
func CreditCard() Normaliser {
	return New(WithTransform(ExtractDigits), WithFormat(formatCreditCard))
}

func formatPhone(s string) string {
	if len(s) != 10 && len(s) != 11 {
		return s
	}
	return "(" + s[0:2] + ") " + s[2:6] + " " + s[6:]
}

func formatPassport(s string) string {
	if len(s) != 8 {
		return s
	}
	return s[0:2] + " " + s[2:5] + " " + s[5:8]
}

func formatIDCard(s string) string {
	if len(s) != 9 {
		return s
	}
	return s[0:4] + "." + s[4:8] + "-" + s[8:9]
}

func formatPostCode(s string) string {
	if len(s) != 8 {
		return s
	}
	return s[0:5] + "-" + s[5:8]
}

func formatCPF(s string) string {
	if len(s) != 11 {
		return s
	}
	return s[0:3] + "." + s[3:6] + "." + s[6:9] + "-" + s[9:11]
}

func formatCNPJ(s string) string {
	if len(s) != 14 {
		return s
	}
	return s[0:2] + "." + s[2:5] + "." + s[5:8] + "/" + s[8:12] + "-" + s[12:14]
}

func formatCreditCard(s string) string {
	if len(s) < 13 || len(s) > 19 {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
