package fields

import "fmt"

// Messages is the copy shown next to failing fields. The defaults are the
// storefront's Catalan strings.
type Messages struct {
	Username       string
	Password       string
	StrongPassword string
	Email          string
	Address        string
	// Quantity is a format string receiving the min and max bounds.
	Quantity    string
	AccountType string
	Policies    string
	PersonalID  string
	BusinessID  string
}

// DefaultMessages returns the built-in message catalog.
func DefaultMessages() Messages {
	return Messages{
		Username:       "El nom d'usuari ha de tenir entre 4 i 20 caràcters i només pot contenir lletres, números i guions baixos",
		Password:       "La contrasenya ha de tenir mínim 8 caràcters",
		StrongPassword: "La contrasenya ha de contenir almenys una lletra i un número",
		Email:          "Introdueix una adreça de correu vàlida",
		Address:        "La adreça és obligatòria",
		Quantity:       "La quantitat ha d'estar entre %s i %s",
		AccountType:    "El tipus de compte ha de ser 'user' o 'company'",
		Policies:       "Has d'acceptar les polítiques de privacitat i condicions d'ús per crear un compte",
		PersonalID:     "DNI/NIE no vàlid. Format esperat: 8 números + lletra (DNI) o X/Y/Z + 7 números + lletra (NIE)",
		BusinessID:     "NIF no vàlid. Format esperat: lletra + 7 números + caràcter de control",
	}
}

// QuantityMessage formats the quantity message for the given bounds. A
// missing bound renders as "NaN", matching what the storefront showed.
func (m Messages) QuantityMessage(b Bounds) string {
	return fmt.Sprintf(m.Quantity, boundText(b.Min), boundText(b.Max))
}

func boundText(v *int) string {
	if v == nil {
		return "NaN"
	}
	return fmt.Sprint(*v)
}

// WithDefaults fills every blank entry from DefaultMessages.
func (m Messages) WithDefaults() Messages {
	def := DefaultMessages()
	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}
	fill(&m.Username, def.Username)
	fill(&m.Password, def.Password)
	fill(&m.StrongPassword, def.StrongPassword)
	fill(&m.Email, def.Email)
	fill(&m.Address, def.Address)
	fill(&m.Quantity, def.Quantity)
	fill(&m.AccountType, def.AccountType)
	fill(&m.Policies, def.Policies)
	fill(&m.PersonalID, def.PersonalID)
	fill(&m.BusinessID, def.BusinessID)
	return m
}
