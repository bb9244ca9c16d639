package engine

// roundHalfUp rounds a string of fractional digits to n digits. If the digit
// after the n-th is 5 or greater, the first n digits are incremented as a
// decimal number. If that carries out of the n digits, e.g. for "9999995"
// with n=6, the returned digits are all zeros and carry is true, which means
// that the integer part must be incremented by one.
//
// Shorter input is right-padded with zeros.
func roundHalfUp(digits string, n int) (rounded string, carry bool) {
	if len(digits) <= n {
		for len(digits) < n {
			digits += "0"
		}
		return digits, false
	}

	prefix := []byte(digits[:n])
	if digits[n] < '5' {
		return string(prefix), false
	}

	for i := n - 1; i >= 0; i-- {
		if prefix[i] < '9' {
			prefix[i]++
			return string(prefix), false
		}
		prefix[i] = '0'
	}
	return string(prefix), true
}
