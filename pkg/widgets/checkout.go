package widgets

// Panel identifies one of the mutually exclusive checkout panels.
type Panel int

const (
	PanelChoice Panel = iota
	PanelLogin
	PanelGuest
)

func (p Panel) String() string {
	switch p {
	case PanelChoice:
		return "choice"
	case PanelLogin:
		return "login"
	case PanelGuest:
		return "guest"
	default:
		return "unknown"
	}
}

// CheckoutFlow is the checkout path toggle. The zero value shows the choice
// panel.
type CheckoutFlow struct {
	panel Panel
}

// Panel returns the visible panel.
func (f CheckoutFlow) Panel() Panel { return f.panel }

// ChooseLogin moves from the choice panel to the login panel.
func (f CheckoutFlow) ChooseLogin() CheckoutFlow {
	if f.panel == PanelChoice {
		f.panel = PanelLogin
	}
	return f
}

// ChooseGuest moves from the choice panel to the guest panel.
func (f CheckoutFlow) ChooseGuest() CheckoutFlow {
	if f.panel == PanelChoice {
		f.panel = PanelGuest
	}
	return f
}

// Back returns to the choice panel.
func (f CheckoutFlow) Back() CheckoutFlow {
	f.panel = PanelChoice
	return f
}

// PanelVisibility lists which panel is displayed; exactly one field is true.
type PanelVisibility struct {
	Choice bool
	Login  bool
	Guest  bool
}

// Visible reports whether panel p is displayed.
func (v PanelVisibility) Visible(p Panel) bool {
	switch p {
	case PanelChoice:
		return v.Choice
	case PanelLogin:
		return v.Login
	case PanelGuest:
		return v.Guest
	default:
		return false
	}
}

// Visibility renders the flow state.
func (f CheckoutFlow) Visibility() PanelVisibility {
	return PanelVisibility{
		Choice: f.panel == PanelChoice,
		Login:  f.panel == PanelLogin,
		Guest:  f.panel == PanelGuest,
	}
}
