package checkout

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"storefront/internal/model"
)

var (
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
	digitsPattern = regexp.MustCompile(`^\d+$`)
	mobilePattern = regexp.MustCompile(`^01[3-9]\d{8}$`)
)

const (
	minCardNumberDigits    = 13
	minAccountNumberLength = 8
)

// Payment detail rejections, one per rule.
var (
	ErrPaymentDetailsMalformed = paymentError("Invalid payment details")
	ErrCardDetailsMissing      = paymentError("Please fill in all card details")
	ErrCardNumberInvalid       = paymentError("Card number must be at least 13 digits")
	ErrCardExpiryInvalid       = paymentError("Expiry date must be in MM/YY format")
	ErrCardCVVInvalid          = paymentError("CVV must be 3 or 4 digits")
	ErrBankDetailsMissing      = paymentError("Please select a bank and enter your account number")
	ErrAccountNumberInvalid    = paymentError("Account number must be at least 8 characters")
	ErrMobileNumberMissing     = paymentError("Please enter your mobile number")
	ErrMobileNumberInvalid     = paymentError("Mobile number must be a valid 11 digit number starting with 013-019")
)

func paymentError(message string) *model.DomainError {
	return model.NewDomainError(model.ErrCodeInvalidPaymentDetails, message)
}

// PaymentDetails is the validated, method-specific payment input.
// Implementations are CardDetails, BankTransferDetails and MobileWalletDetails.
type PaymentDetails interface {
	Method() model.PaymentMethod
	// Mask returns the parts of the details that may be stored and displayed.
	Mask() model.MaskedPayment
	isPaymentDetails()
}

// CardDetails is a card payment. Number has spaces removed.
type CardDetails struct {
	Number         string
	Expiry         string
	CVV            string
	CardholderName string
}

func (CardDetails) Method() model.PaymentMethod { return model.PaymentMethodCard }

func (d CardDetails) Mask() model.MaskedPayment {
	return model.MaskedPayment{
		Last4:          lastN(d.Number, 4),
		CardholderName: d.CardholderName,
	}
}

func (CardDetails) isPaymentDetails() {}

// BankTransferDetails is a bank transfer payment.
type BankTransferDetails struct {
	Bank          string
	AccountNumber string
}

func (BankTransferDetails) Method() model.PaymentMethod { return model.PaymentMethodBankTransfer }

func (d BankTransferDetails) Mask() model.MaskedPayment {
	return model.MaskedPayment{
		Last4: lastN(d.AccountNumber, 4),
		Bank:  d.Bank,
	}
}

func (BankTransferDetails) isPaymentDetails() {}

// MobileWalletDetails is a bKash or Nagad payment. MobileNumber has whitespace removed.
type MobileWalletDetails struct {
	Provider     model.PaymentMethod
	MobileNumber string
}

func (d MobileWalletDetails) Method() model.PaymentMethod { return d.Provider }

func (d MobileWalletDetails) Mask() model.MaskedPayment {
	return model.MaskedPayment{
		Last4:    lastN(d.MobileNumber, 4),
		Provider: string(d.Provider),
	}
}

func (MobileWalletDetails) isPaymentDetails() {}

type cardWire struct {
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
}

type bankWire struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
}

type walletWire struct {
	MobileNumber string `json:"mobileNumber"`
}

// ParsePaymentDetails decodes raw according to method and applies that method's rules.
// The first failing rule is returned.
func ParsePaymentDetails(method model.PaymentMethod, raw json.RawMessage) (PaymentDetails, error) {
	switch method {
	case model.PaymentMethodCard:
		var w cardWire
		if err := decodeDetails(raw, &w); err != nil {
			return nil, err
		}
		return validateCard(w)
	case model.PaymentMethodBankTransfer:
		var w bankWire
		if err := decodeDetails(raw, &w); err != nil {
			return nil, err
		}
		return validateBankTransfer(w)
	case model.PaymentMethodBkash, model.PaymentMethodNagad:
		var w walletWire
		if err := decodeDetails(raw, &w); err != nil {
			return nil, err
		}
		return validateMobileWallet(method, w)
	default:
		return nil, model.ErrInvalidPaymentMethod
	}
}

func decodeDetails(raw json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return ErrPaymentDetailsMalformed
	}
	return nil
}

func validateCard(w cardWire) (PaymentDetails, error) {
	if w.CardNumber == "" || w.ExpiryDate == "" || w.CVV == "" || strings.TrimSpace(w.CardholderName) == "" {
		return nil, ErrCardDetailsMissing
	}

	number := strings.ReplaceAll(w.CardNumber, " ", "")
	if len(number) < minCardNumberDigits || !digitsPattern.MatchString(number) {
		return nil, ErrCardNumberInvalid
	}

	// Shape only; the month is not range checked.
	if !expiryPattern.MatchString(w.ExpiryDate) {
		return nil, ErrCardExpiryInvalid
	}

	if !cvvPattern.MatchString(w.CVV) {
		return nil, ErrCardCVVInvalid
	}

	return CardDetails{
		Number:         number,
		Expiry:         w.ExpiryDate,
		CVV:            w.CVV,
		CardholderName: strings.TrimSpace(w.CardholderName),
	}, nil
}

func validateBankTransfer(w bankWire) (PaymentDetails, error) {
	bank := strings.TrimSpace(w.BankName)
	account := strings.TrimSpace(w.AccountNumber)
	if bank == "" || account == "" {
		return nil, ErrBankDetailsMissing
	}

	if len(account) < minAccountNumberLength {
		return nil, ErrAccountNumberInvalid
	}

	return BankTransferDetails{Bank: bank, AccountNumber: account}, nil
}

func validateMobileWallet(provider model.PaymentMethod, w walletWire) (PaymentDetails, error) {
	number := strings.Join(strings.Fields(w.MobileNumber), "")
	if number == "" {
		return nil, ErrMobileNumberMissing
	}

	if !mobilePattern.MatchString(number) {
		return nil, ErrMobileNumberInvalid
	}

	return MobileWalletDetails{Provider: provider, MobileNumber: number}, nil
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
