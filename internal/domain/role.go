package domain

import "fmt"

// Role is the closed set of actor roles. Authorization decisions go through
// the capability methods below, never through raw string comparison in
// handlers or services.
type Role string

const (
	RoleCity    Role = "CITY"
	RoleCompany Role = "COMPANY"
	RoleAdmin   Role = "ADMIN"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCity, RoleCompany, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// CanManageTenders reports whether the role may create, edit and delete tenders.
func (r Role) CanManageTenders() bool {
	return r == RoleCity || r == RoleAdmin
}

// CanAward reports whether the role may select a winning bid.
func (r Role) CanAward() bool {
	return r == RoleCity || r == RoleAdmin
}

// CanSubmitBids reports whether the role may submit bids.
func (r Role) CanSubmitBids() bool {
	return r == RoleCompany
}

// CanViewAllBids reports whether the role sees every bid on a tender.
// Company actors only ever see their own.
func (r Role) CanViewAllBids() bool {
	return r == RoleCity || r == RoleAdmin
}

// Actor is the resolved identity attached to a request by the auth middleware.
type Actor struct {
	UserID   string
	Username string
	Role     Role
}
