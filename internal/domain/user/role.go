package user

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if r.rank() == 0 {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool { return r.rank() > 0 }

// AtLeast reports whether r grants everything min grants. Unknown roles grant
// nothing and are never satisfied.
func (r Role) AtLeast(min Role) bool {
	have, need := r.rank(), min.rank()
	return have > 0 && need > 0 && have >= need
}

func (r Role) rank() int {
	switch r {
	case RoleCustomer:
		return 1
	case RoleAdmin:
		return 2
	default:
		return 0
	}
}
