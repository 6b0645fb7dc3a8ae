package models

import "fmt"

// CheckoutStep is one of the four sequential phases a buyer passes through.
type CheckoutStep string

const (
	// StepCart shows the cart contents and the promo code field.
	StepCart CheckoutStep = "cart"
	// StepInfo collects the shipping information.
	StepInfo CheckoutStep = "info"
	// StepPayment selects the payment method and renders the payment instrument.
	StepPayment CheckoutStep = "payment"
	// StepSuccess is terminal within the session; the order has been placed.
	StepSuccess CheckoutStep = "success"
)

// String returns the string representation of the step.
func (s CheckoutStep) String() string {
	return string(s)
}

// PaymentMethod is one of the fixed payment options. Exactly one is active at
// a time; selecting a new one replaces the prior selection.
type PaymentMethod string

const (
	// PaymentCOD is cash on delivery, the default.
	PaymentCOD PaymentMethod = "cod"
	// PaymentBank is bank transfer via a scannable VietQR payload.
	PaymentBank PaymentMethod = "bank"
	// PaymentMomo is the MoMo mobile wallet.
	PaymentMomo PaymentMethod = "momo"
	// PaymentVisa is an international card.
	PaymentVisa PaymentMethod = "visa"
)

// String returns the string representation of the payment method.
func (m PaymentMethod) String() string {
	return string(m)
}

// ParsePaymentMethod validates a raw payment method string.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	switch m := PaymentMethod(raw); m {
	case PaymentCOD, PaymentBank, PaymentMomo, PaymentVisa:
		return m, nil
	default:
		return "", fmt.Errorf("unknown payment method: %q", raw)
	}
}

// ShippingInfo is the buyer-entered delivery information. All fields are free
// text; name, phone and address must be non-empty before checkout can advance
// past the info step.
type ShippingInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note,omitempty"`
}

// Complete reports whether the three required fields are filled in.
func (i ShippingInfo) Complete() bool {
	return i.Name != "" && i.Phone != "" && i.Address != ""
}

// CheckoutSession composes the step marker, shipping info, payment selection
// and promo code for one display context. Entered data survives backward and
// forward navigation within the session.
type CheckoutSession struct {
	Step          CheckoutStep  `json:"step"`
	Shipping      ShippingInfo  `json:"shipping"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PromoCode     string        `json:"promo_code,omitempty"`
}

// NewCheckoutSession returns a session at the initial step with the default
// payment method selected.
func NewCheckoutSession() *CheckoutSession {
	return &CheckoutSession{
		Step:          StepCart,
		PaymentMethod: PaymentCOD,
	}
}
