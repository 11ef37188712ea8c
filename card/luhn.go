package card

// Luhn reports whether digits passes the Luhn (mod 10) checksum.
//
// The walk runs left to right; parity = len(digits) % 2 lines the doubled
// positions up with "every second digit from the right". Any non-digit makes
// the number invalid.
func Luhn(digits string) bool {
	if !IsDigits(digits) {
		return false
	}
	var (
		sum    int
		parity = len(digits) % 2
	)
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		if i%2 != parity {
			sum += d
		} else if d > 4 {
			sum += 2*d - 9
		} else {
			sum += 2 * d
		}
	}
	return sum%10 == 0
}
