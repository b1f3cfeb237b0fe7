package brdoc

import (
	"github.com/oditorium/cleanse/pkg/cleaner"
	"github.com/oditorium/cleanse/pkg/normaliser"
	"github.com/oditorium/cleanse/pkg/validator"
)

// Registry keys for the preset cleaners.
const (
	DocCPF        = "cpf"
	DocCNPJ       = "cnpj"
	DocPassport   = "passport"
	DocIDCard     = "idcard"
	DocPhone      = "phone"
	DocMobile     = "mobile"
	DocPostCode   = "postcode"
	DocCreditCard = "creditcard"
)

// CPF cleans Brazilian individual taxpayer numbers.
func CPF(opts ...cleaner.Option) *cleaner.Cleaner {
	return preset(validator.CPF(), normaliser.CPF(), "not a valid CPF number", opts)
}

// CNPJ cleans Brazilian company taxpayer numbers.
func CNPJ(opts ...cleaner.Option) *cleaner.Cleaner {
	return preset(validator.CNPJ(), normaliser.CNPJ(), "not a valid CNPJ number", opts)
}

// Passport cleans Brazilian passport numbers.
func Passport(opts ...cleaner.Option) *cleaner.Cleaner {
	return preset(validator.Passport(), normaliser.Passport(), "not a valid passport number", opts)
}

// IDCard cleans Brazilian ID card (RG) numbers.
func IDCard(opts ...cleaner.Option) *cleaner.Cleaner {
	return preset(validator.IDCard(), normaliser.IDCard(), "not a valid ID card number", opts)
}

// Phone cleans Brazilian fixed-line phone numbers.
func Phone(opts ...cleaner.Option) *cleaner.Cleaner {
	return preset(validator.Phone(), normaliser.Phone(), "not a valid phone number", opts)
}

// Mobile cleans Brazilian mobile phone numbers.
func Mobile(opts ...cleaner.Option) *cleaner.Cleaner {
	return preset(validator.Phone(), normaliser.Mobile(), "not a valid mobile number", opts)
}

// PostCode cleans Brazilian post codes (CEP).
func PostCode(opts ...cleaner.Option) *cleaner.Cleaner {
	return preset(validator.PostCode(), normaliser.PostCode(), "not a valid post code", opts)
}

// CreditCard cleans payment card numbers with Luhn verification.
func CreditCard(opts ...cleaner.Option) *cleaner.Cleaner {
	return preset(validator.CreditCard(), normaliser.CreditCard(), "not a valid card number", opts)
}

// NewRegistry returns a registry preloaded with all preset cleaners keyed by
// the Doc* constants.
func NewRegistry() *cleaner.Registry {
	r := cleaner.NewRegistry()
	presets := map[string]*cleaner.Cleaner{
		DocCPF:        CPF(),
		DocCNPJ:       CNPJ(),
		DocPassport:   Passport(),
		DocIDCard:     IDCard(),
		DocPhone:      Phone(),
		DocMobile:     Mobile(),
		DocPostCode:   PostCode(),
		DocCreditCard: CreditCard(),
	}
	for doc, c := range presets {
		// Keys are distinct constants, registration cannot collide.
		_ = r.Register(doc, c)
	}
	return r
}

func preset(v cleaner.Validator, n cleaner.Normaliser, msg string, opts []cleaner.Option) *cleaner.Cleaner {
	all := append([]cleaner.Option{cleaner.WithMessage(msg)}, opts...)
	return cleaner.New(v, n, all...)
}
