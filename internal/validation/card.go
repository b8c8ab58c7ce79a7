package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iudanet/cardinput/pkg/cardnumber"
)

// CardNumberPattern определяет допустимый формат номера карты после удаления разделителей
// Только цифры, от 1 до 16 символов
var CardNumberPattern = regexp.MustCompile(`^[0-9]{1,16}$`)

// cardSeparators are accepted between digit groups in command line arguments
var cardSeparators = strings.NewReplacer(" ", "", "-", "", "\t", "")

// ValidateCardNumber checks a card number given on the command line and
// returns its digits. Spaces and dashes between groups are allowed.
func ValidateCardNumber(number string) (string, error) {
	digits := cardSeparators.Replace(strings.TrimSpace(number))

	if digits == "" {
		return "", fmt.Errorf("card number cannot be empty")
	}

	if len(digits) > cardnumber.MaxDigits {
		return "", fmt.Errorf("card number must not exceed %d digits", cardnumber.MaxDigits)
	}

	if !CardNumberPattern.MatchString(digits) {
		return "", fmt.Errorf("card number can only contain digits (0-9), spaces and dashes")
	}

	return digits, nil
}
