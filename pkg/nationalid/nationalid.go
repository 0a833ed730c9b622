package nationalid

import (
	"regexp"
	"strings"
)

const (
	// Alphabet23 maps a mod-23 remainder onto the DNI/NIE control letter.
	Alphabet23 = "TRWAGMYFPDXBNJZSQVHLCKE"
	// CIFLetters maps a CIF control number onto its letter form.
	CIFLetters = "JABCDEFGHI"

	cifDigitLeaders  = "ABEH"
	cifLetterLeaders = "KPQS"
)

var (
	dniPattern = regexp.MustCompile(`^\d{8}[A-Za-z]$`)
	niePattern = regexp.MustCompile(`^[XYZ]\d{7}[A-Za-z]$`)
	cifPattern = regexp.MustCompile(`^[ABCDEFGHJKLMNPQRSUVW]\d{7}[0-9A-J]$`)
)

var niePrefixes = map[byte]byte{'X': '0', 'Y': '1', 'Z': '2'}

// Kind classifies an identifier by its leading character.
type Kind string

const (
	KindUnknown Kind = ""
	KindDNI     Kind = "dni"
	KindNIE     Kind = "nie"
	KindCIF     Kind = "cif"
)

// Result pairs the detected identifier kind with its validity.
type Result struct {
	Kind  Kind `json:"kind"`
	Valid bool `json:"valid"`
}

// Normalize trims surrounding whitespace and upper-cases the identifier.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ValidateDNI reports whether dni is eight digits followed by the matching
// control letter. The control letter may be lower case.
func ValidateDNI(dni string) bool {
	if !dniPattern.MatchString(dni) {
		return false
	}
	n, ok := atoi(dni[:8])
	if !ok {
		return false
	}
	return upper(dni[8]) == DNILetter(n)
}

// ValidateNIE reports whether nie is X, Y or Z followed by seven digits and
// the control letter computed from the prefix digit concatenated with the
// body.
func ValidateNIE(nie string) bool {
	if !niePattern.MatchString(nie) {
		return false
	}
	letter, ok := NIELetter(nie[0], nie[1:8])
	if !ok {
		return false
	}
	return upper(nie[8]) == letter
}

// ValidateCIF reports whether cif carries a valid leading letter, a
// seven-digit body and the control character required by that letter.
func ValidateCIF(cif string) bool {
	if !cifPattern.MatchString(cif) {
		return false
	}
	digit, letter, ok := CIFControl(cif[1:8])
	if !ok {
		return false
	}

	leader := cif[0]
	control := upper(cif[8])
	switch {
	case strings.IndexByte(cifDigitLeaders, leader) >= 0:
		return control == digit
	case strings.IndexByte(cifLetterLeaders, leader) >= 0:
		return control == letter
	default:
		return control == digit || control == letter
	}
}

// ValidatePersonal validates a DNI or NIE entered by an individual. Input is
// normalised first; empty input is invalid.
func ValidatePersonal(raw string) bool {
	id := Normalize(raw)
	if id == "" {
		return false
	}
	if _, nie := niePrefixes[id[0]]; nie {
		return ValidateNIE(id)
	}
	return ValidateDNI(id)
}

// ValidateBusiness validates the CIF of a company account.
func ValidateBusiness(raw string) bool {
	id := Normalize(raw)
	if id == "" {
		return false
	}
	return ValidateCIF(id)
}

// Classify guesses the identifier kind from its normalised leading
// character without checking the control character.
func Classify(raw string) Kind {
	id := Normalize(raw)
	if id == "" {
		return KindUnknown
	}
	lead := id[0]
	switch {
	case lead >= '0' && lead <= '9':
		return KindDNI
	case niePrefixes[lead] != 0:
		return KindNIE
	case strings.IndexByte("ABCDEFGHJKLMNPQRSUVW", lead) >= 0:
		return KindCIF
	default:
		return KindUnknown
	}
}

// Validate classifies raw and validates it with the matching algorithm.
func Validate(raw string) Result {
	kind := Classify(raw)
	res := Result{Kind: kind}
	switch kind {
	case KindDNI, KindNIE:
		res.Valid = ValidatePersonal(raw)
	case KindCIF:
		res.Valid = ValidateBusiness(raw)
	}
	return res
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// atoi parses an all-digit string; it reports false on anything else.
func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
