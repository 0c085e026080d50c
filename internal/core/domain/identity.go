package domain

type UserRole string

const (
	Admin    UserRole = "admin"
	Employee UserRole = "employee"
)

// RequiredRole is either "any authenticated identity" or an exact role label.
// The zero value is AnyRole.
type RequiredRole struct {
	role  UserRole
	exact bool
}

func AnyRole() RequiredRole {
	return RequiredRole{}
}

// ExactRole requires the stored role to equal r. An empty r is AnyRole.
func ExactRole(r UserRole) RequiredRole {
	if r == "" {
		return AnyRole()
	}
	return RequiredRole{role: r, exact: true}
}

func (r RequiredRole) IsAny() bool {
	return !r.exact
}

func (r RequiredRole) Role() (UserRole, bool) {
	return r.role, r.exact
}

// Permits reports whether a stored role satisfies the requirement.
// An absent stored role never satisfies an exact requirement.
func (r RequiredRole) Permits(stored string, present bool) bool {
	if !r.exact {
		return true
	}
	return present && UserRole(stored) == r.role
}

func (r RequiredRole) String() string {
	if !r.exact {
		return "any"
	}
	return string(r.role)
}

type Outcome int

const (
	RenderChildren Outcome = iota
	RedirectToLogin
	RedirectToHome
)

func (o Outcome) String() string {
	switch o {
	case RenderChildren:
		return "render"
	case RedirectToLogin:
		return "redirect_login"
	case RedirectToHome:
		return "redirect_home"
	default:
		return "unknown"
	}
}

// Decision is the result of one guard evaluation. Redirects always replace
// the current navigation entry.
type Decision struct {
	Outcome     Outcome
	Destination string
}

func (d Decision) Allowed() bool {
	return d.Outcome == RenderChildren
}

func (d Decision) Replace() bool {
	return d.Outcome != RenderChildren
}

// Claims are the raw identity values read from client storage.
type Claims struct {
	Token string `json:"token"`
	Role  string `json:"role,omitempty"`
}
