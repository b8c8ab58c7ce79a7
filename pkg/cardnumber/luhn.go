package cardnumber

// IsLuhnValid reports whether digits pass the Luhn checksum.
// Any non-digit character fails the check.
func IsLuhnValid(digits string) bool {
	sum := 0

	// справа налево: каждая вторая цифра удваивается
	for i := 0; i < len(digits); i++ {
		c := digits[len(digits)-1-i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')

		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}

	return sum%10 == 0
}
