package nationalid

// DNILetter returns the control letter for the DNI number n. Negative
// numbers have no control letter and yield 0.
func DNILetter(n int) byte {
	if n < 0 {
		return 0
	}
	return Alphabet23[n%23]
}

// NIELetter returns the control letter for a NIE with the given X/Y/Z prefix
// and seven-digit body. The prefix digit is prepended to the body as text, so
// it lands in the leading position of the eight-digit number.
func NIELetter(prefix byte, body string) (byte, bool) {
	digit, ok := niePrefixes[upper(prefix)]
	if !ok || len(body) != 7 {
		return 0, false
	}
	n, ok := atoi(string(digit) + body)
	if !ok {
		return 0, false
	}
	return DNILetter(n), true
}

// CIFControl computes both accepted forms of the CIF control character for a
// seven-digit body: the digit form and the letter form.
//
// Digits at even 1-based positions are added as is; digits at odd positions
// are doubled and the two decimal digits of the product are added.
func CIFControl(body string) (digit, letter byte, ok bool) {
	if len(body) != 7 {
		return 0, 0, false
	}

	evens, odds := 0, 0
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < '0' || c > '9' {
			return 0, 0, false
		}
		n := int(c - '0')
		if (i+1)%2 == 0 {
			evens += n
			continue
		}
		doubled := n * 2
		odds += doubled/10 + doubled%10
	}

	unit := (evens + odds) % 10
	control := (10 - unit) % 10
	return byte('0' + control), CIFLetters[control], true
}
