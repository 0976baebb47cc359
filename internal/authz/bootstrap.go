package authz

import "fmt"

// RoleSeed is a predefined role.
type RoleSeed struct {
	Role     string
	Policies []Policy
}

// BuiltinRoleSeeds returns the roles created at startup. Staff manage
// the order queue.
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: "staff",
			Policies: []Policy{
				{Object: "/orders", Action: "GET"},
				{Object: "/orders/:id", Action: "PUT"},
			},
		},
	}
}

// BootstrapBuiltinRoles seeds the builtin roles and their policies.
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := s.EnsureRole(seed.Role)
		if err != nil {
			return err
		}
		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
