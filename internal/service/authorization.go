package service

import (
	"fmt"

	"crane-parts-backend/internal/model"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
)

// rbacModel is the casbin model for the role gate on the order surfaces.
// Policies live in code rather than .conf/.csv files so the binary is
// self-contained.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// rolePolicies maps roles to the operations they may perform.
var rolePolicies = [][]string{
	{"admin", "orders", "list_all"},
	{"dealer", "orders", "list_own"},
}

// AuthorizationService は認可サービス
type AuthorizationService struct {
	enforcer *casbin.Enforcer
}

// NewAuthorizationService は新しい認可サービスを作成
func NewAuthorizationService() (*AuthorizationService, error) {
	m, err := casbinmodel.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RBAC model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize RBAC enforcer: %w", err)
	}

	for _, p := range rolePolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, fmt.Errorf("failed to add policy %v: %w", p, err)
		}
	}

	return &AuthorizationService{enforcer: enforcer}, nil
}

// CheckPermission はロールベースの権限チェックを行う
func (s *AuthorizationService) CheckPermission(user *model.User, resource, action string) (bool, error) {
	allowed, err := s.enforcer.Enforce(user.Role, resource, action)
	if err != nil {
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}
