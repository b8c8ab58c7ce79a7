package cardnumber

// Mask hides all but the last four digits, e.g. "****-****-****-0366".
// Sequences shorter than four digits are masked entirely.
func Mask(digits string) string {
	if len(digits) < GroupSize {
		return "****-****-****-****" // короткие номера маскируем полностью
	}
	return "****-****-****-" + digits[len(digits)-GroupSize:]
}
