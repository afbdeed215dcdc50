package payment

import (
	"errors"
	"fmt"
	"strings"

	"domicilios/internal/pkg/errs"
	"domicilios/internal/pkg/guard"
)

// ErrCardDetailsAreNotConstructed is returned when using improperly
// initialized CardDetails.
var ErrCardDetailsAreNotConstructed = errors.New("CardDetails must be created via NewCardDetails constructor")

// CardDetails is the validated card input for a tarjeta payment. All fields
// are checked before any order or ledger mutation; the simulated authorizer
// accepts any structurally valid card.
type CardDetails struct { //nolint:recvcheck //using for validation
	number string
	holder string
	cvv    string
	guard  guard.ConstructorGuard
}

// NewCardDetails validates and normalizes card input. The number must be
// 13 to 19 digits after stripping spaces and dashes, the holder name at
// least 3 characters after trimming, and the CVV exactly 3 digits.
func NewCardDetails(number string, holder string, cvv string) (CardDetails, error) {
	card := CardDetails{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		card.setNumber(number),
		card.setHolder(holder),
		card.setCVV(cvv),
	); err != nil {
		return CardDetails{}, err
	}

	return card, nil
}

// Validate checks that the details were created through NewCardDetails.
func (c CardDetails) Validate() error {
	return c.guard.Validate(ErrCardDetailsAreNotConstructed)
}

// Number returns the digits-only card number.
func (c CardDetails) Number() string { return c.number }

// Holder returns the trimmed card holder name.
func (c CardDetails) Holder() string { return c.holder }

// CVV returns the card verification value.
func (c CardDetails) CVV() string { return c.cvv }

func (c *CardDetails) setNumber(number string) error {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(number)
	if len(cleaned) < 13 || len(cleaned) > 19 {
		return errs.NewValueIsInvalidErrorWithCause("card_number",
			fmt.Errorf("must be 13 to 19 digits, got %d", len(cleaned)))
	}
	if !isDigits(cleaned) {
		return errs.NewValueIsInvalidErrorWithCause("card_number",
			errors.New("must contain only digits"))
	}
	c.number = cleaned
	return nil
}

func (c *CardDetails) setHolder(holder string) error {
	trimmed := strings.TrimSpace(holder)
	if len([]rune(trimmed)) < 3 {
		return errs.NewValueIsInvalidErrorWithCause("card_holder",
			errors.New("must be at least 3 characters"))
	}
	c.holder = trimmed
	return nil
}

func (c *CardDetails) setCVV(cvv string) error {
	if len(cvv) != 3 || !isDigits(cvv) {
		return errs.NewValueIsInvalidErrorWithCause("cvv",
			errors.New("must be exactly 3 digits"))
	}
	c.cvv = cvv
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
