package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"thanhha/internal/models"
	"thanhha/pkg/currency"
	"thanhha/pkg/vietqr"
)

// Rejection reasons for blocked step advancement. A rejected advance never
// mutates the session; the HTTP surface reports the reason so the client can
// keep the forward control disabled.
var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrIncompleteShipping = errors.New("shipping name, phone and address are required")
	ErrCheckoutComplete   = errors.New("checkout is already complete")
)

// CheckoutConfig carries the business constants for the checkout flow.
// Passing it explicitly (instead of package constants) lets tests vary the
// threshold and bank details freely.
type CheckoutConfig struct {
	FreeShippingThreshold int64          // subtotal at or above which shipping is free
	FlatShippingFee       int64          // fee charged below the threshold
	Bank                  vietqr.Account // receiving account for bank transfers
	BrandName             string         // transfer note prefix, combined with the buyer's phone
}

// ReferenceGenerator produces the short human-readable order reference shown
// on the success screen.
type ReferenceGenerator interface {
	NextReference() string
}

// RandomReferenceGenerator mimics the storefront's original scheme: a brand
// prefix plus a bounded random number. The references are not unique and may
// collide, so they are display-only; the persisted order ID is a uuid.
type RandomReferenceGenerator struct {
	Prefix string
}

// NextReference returns a reference like "#TH-48213".
func (g RandomReferenceGenerator) NextReference() string {
	return fmt.Sprintf("#%s-%d", g.Prefix, rand.Intn(90000))
}

// CheckoutService walks a buyer through the linear cart -> info -> payment ->
// success sequence, one session per display context. It layers on top of the
// CartService and derives all money figures from the live cart totals.
type CheckoutService struct {
	cfg      CheckoutConfig
	carts    *CartService
	orders   *OrderService
	refs     ReferenceGenerator
	sessions map[string]*models.CheckoutSession
	mu       sync.Mutex
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(cfg CheckoutConfig, carts *CartService, orders *OrderService, refs ReferenceGenerator) *CheckoutService {
	return &CheckoutService{
		cfg:      cfg,
		carts:    carts,
		orders:   orders,
		refs:     refs,
		sessions: make(map[string]*models.CheckoutSession),
	}
}

// sessionFor returns the session's checkout state, creating one at the
// initial step on first use. Caller must hold the lock.
func (s *CheckoutService) sessionFor(sessionID string) *models.CheckoutSession {
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = models.NewCheckoutSession()
		s.sessions[sessionID] = sess
	}
	return sess
}

// nextStep is the pure transition function of the checkout state machine. It
// returns the step that follows the current one, or the current step plus the
// reason advancement is blocked. It never mutates anything.
func nextStep(step models.CheckoutStep, sess *models.CheckoutSession, cart models.CartSnapshot) (models.CheckoutStep, error) {
	switch step {
	case models.StepCart:
		if cart.IsEmpty() {
			return step, ErrEmptyCart
		}
		return models.StepInfo, nil
	case models.StepInfo:
		if !sess.Shipping.Complete() {
			return step, ErrIncompleteShipping
		}
		return models.StepPayment, nil
	case models.StepPayment:
		// A default payment method always exists, so this gate is open.
		return models.StepSuccess, nil
	default:
		return step, ErrCheckoutComplete
	}
}

// prevStep walks the sequence backwards. Backward navigation is always
// allowed and never erases entered data.
func prevStep(step models.CheckoutStep) models.CheckoutStep {
	switch step {
	case models.StepPayment:
		return models.StepInfo
	case models.StepInfo:
		return models.StepCart
	default:
		return step
	}
}

// shippingFee derives the fee from the current subtotal. The threshold is
// inclusive: a subtotal exactly at it ships free.
func (s *CheckoutService) shippingFee(totalPrice int64) int64 {
	if totalPrice >= s.cfg.FreeShippingThreshold {
		return 0
	}
	return s.cfg.FlatShippingFee
}

// Advance moves the session one step forward. Crossing payment -> success is
// the point at which the order is placed: it is persisted and an order event
// is published before the step changes. A blocked or failed advance leaves
// the session exactly where it was.
func (s *CheckoutService) Advance(sessionID string) (models.CheckoutStep, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionFor(sessionID)
	snap := s.carts.Snapshot(sessionID)

	next, err := nextStep(sess.Step, sess, snap)
	if err != nil {
		return sess.Step, err
	}

	if next == models.StepSuccess {
		order := s.buildOrder(sess, snap)
		if err := s.orders.PlaceOrder(order); err != nil {
			return sess.Step, fmt.Errorf("failed to place order: %w", err)
		}
	}

	sess.Step = next
	return sess.Step, nil
}

// Back moves the session one step backward; entered data persists.
func (s *CheckoutService) Back(sessionID string) models.CheckoutStep {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionFor(sessionID)
	sess.Step = prevStep(sess.Step)
	return sess.Step
}

// Close dismisses the checkout. From the success step it empties the cart and
// resets the session for the next visit; from any other step it is a pure
// no-op so the buyer can re-open where they left off.
func (s *CheckoutService) Close(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || sess.Step != models.StepSuccess {
		return
	}
	s.carts.Clear(sessionID)
	s.sessions[sessionID] = models.NewCheckoutSession()
}

// SetShippingInfo records the buyer-entered delivery details. Fields stay
// editable across backward navigation within the session.
func (s *CheckoutService) SetShippingInfo(sessionID string, info models.ShippingInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessionFor(sessionID).Shipping = info
}

// SetPaymentMethod replaces the active payment selection.
func (s *CheckoutService) SetPaymentMethod(sessionID string, method models.PaymentMethod) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessionFor(sessionID).PaymentMethod = method
}

// ApplyPromo records the promo code, upper-cased. The storefront's apply
// control is intentionally inert: no discount logic exists, and the code
// never changes any total.
func (s *CheckoutService) ApplyPromo(sessionID string, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessionFor(sessionID).PromoCode = strings.ToUpper(code)
}

// BankDetails exposes the configured receiving account for the payment view.
type BankDetails struct {
	BankID     string `json:"bank_id"`
	Number     string `json:"number"`
	HolderName string `json:"holder_name"`
}

// CheckoutState is a point-in-time view of one checkout session with all
// derived figures attached. Fees and the QR payload are recomputed on every
// read so they track the live cart.
type CheckoutState struct {
	Step           models.CheckoutStep  `json:"step"`
	Cart           models.CartSnapshot  `json:"cart"`
	Shipping       models.ShippingInfo  `json:"shipping"`
	PaymentMethod  models.PaymentMethod `json:"payment_method"`
	PromoCode      string               `json:"promo_code,omitempty"`
	ShippingFee    int64                `json:"shipping_fee"`
	FinalTotal     int64                `json:"final_total"`
	ShippingFeeVND string               `json:"shipping_fee_vnd"`
	FinalTotalVND  string               `json:"final_total_vnd"`
	CanAdvance     bool                 `json:"can_advance"`
	BlockedReason  string               `json:"blocked_reason,omitempty"`
	Bank           *BankDetails         `json:"bank,omitempty"`
	QRImageURL     string               `json:"qr_image_url,omitempty"`
}

// State derives the full checkout view for a session.
func (s *CheckoutService) State(sessionID string) CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionFor(sessionID)
	snap := s.carts.Snapshot(sessionID)

	fee := s.shippingFee(snap.TotalPrice)
	state := CheckoutState{
		Step:           sess.Step,
		Cart:           snap,
		Shipping:       sess.Shipping,
		PaymentMethod:  sess.PaymentMethod,
		PromoCode:      sess.PromoCode,
		ShippingFee:    fee,
		FinalTotal:     snap.TotalPrice + fee,
		ShippingFeeVND: currency.FormatVND(fee),
		FinalTotalVND:  currency.FormatVND(snap.TotalPrice + fee),
	}

	if _, err := nextStep(sess.Step, sess, snap); err != nil {
		state.BlockedReason = err.Error()
	} else {
		state.CanAdvance = true
	}

	if sess.PaymentMethod == models.PaymentBank {
		state.Bank = &BankDetails{
			BankID:     s.cfg.Bank.BankID,
			Number:     s.cfg.Bank.Number,
			HolderName: s.cfg.Bank.HolderName,
		}
		addInfo := s.cfg.BrandName + " " + sess.Shipping.Phone
		state.QRImageURL = vietqr.ImageURL(s.cfg.Bank, state.FinalTotal, addInfo)
	}

	return state
}

// buildOrder freezes the session and cart into a persistable order. Caller
// must hold the lock.
func (s *CheckoutService) buildOrder(sess *models.CheckoutSession, snap models.CartSnapshot) *models.Order {
	fee := s.shippingFee(snap.TotalPrice)
	items := make([]models.OrderItem, 0, len(snap.Lines))
	for _, line := range snap.Lines {
		items = append(items, models.OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Price:     line.Product.Price,
			Quantity:  line.Quantity,
		})
	}
	return &models.Order{
		Reference:     s.refs.NextReference(),
		CustomerName:  sess.Shipping.Name,
		CustomerPhone: sess.Shipping.Phone,
		Address:       sess.Shipping.Address,
		Note:          sess.Shipping.Note,
		PaymentMethod: sess.PaymentMethod.String(),
		Items:         items,
		Subtotal:      snap.TotalPrice,
		ShippingFee:   fee,
		Total:         snap.TotalPrice + fee,
		Status:        "pending",
	}
}
