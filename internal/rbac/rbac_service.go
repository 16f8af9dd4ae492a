package rbac

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"go-tender/internal/domain"
)

// The policy table is static: roles are a closed enum and their capabilities
// are fixed at build time, so policies live in code rather than in a table.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

var policies = [][]string{
	{string(domain.RoleCity), "tender", "create"},
	{string(domain.RoleCity), "tender", "update"},
	{string(domain.RoleCity), "tender", "delete"},
	{string(domain.RoleCity), "tender", "award"},
	{string(domain.RoleCity), "bid", "read"},
	{string(domain.RoleCompany), "bid", "create"},
	{string(domain.RoleCompany), "bid", "read"},
	{string(domain.RoleCompany), "company", "read"},
	{string(domain.RoleCompany), "company", "update"},
}

// ADMIN inherits every city capability and keeps bid read access.
var groupings = [][]string{
	{string(domain.RoleAdmin), string(domain.RoleCity)},
}

type Service interface {
	Enforce(role domain.Role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("rbac model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("rbac enforcer: %w", err)
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	for _, g := range groupings {
		if _, err := enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role domain.Role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(string(role), resource, action)
}
