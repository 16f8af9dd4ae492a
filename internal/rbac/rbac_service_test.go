package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-tender/internal/domain"
	"go-tender/internal/rbac"
)

func TestEnforce(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	cases := []struct {
		name     string
		role     domain.Role
		resource string
		action   string
		allowed  bool
	}{
		{"city creates tenders", domain.RoleCity, "tender", "create", true},
		{"city updates tenders", domain.RoleCity, "tender", "update", true},
		{"city deletes tenders", domain.RoleCity, "tender", "delete", true},
		{"city awards tenders", domain.RoleCity, "tender", "award", true},
		{"city reads bids", domain.RoleCity, "bid", "read", true},
		{"city may not submit bids", domain.RoleCity, "bid", "create", false},
		{"company submits bids", domain.RoleCompany, "bid", "create", true},
		{"company reads bids", domain.RoleCompany, "bid", "read", true},
		{"company manages its profile", domain.RoleCompany, "company", "update", true},
		{"company may not create tenders", domain.RoleCompany, "tender", "create", false},
		{"company may not award", domain.RoleCompany, "tender", "award", false},
		{"admin inherits city tender rights", domain.RoleAdmin, "tender", "create", true},
		{"admin inherits award", domain.RoleAdmin, "tender", "award", true},
		{"admin reads bids", domain.RoleAdmin, "bid", "read", true},
		{"admin may not submit bids", domain.RoleAdmin, "bid", "create", false},
		{"unknown resource is denied", domain.RoleCity, "invoice", "read", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tc.role, tc.resource, tc.action)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}
