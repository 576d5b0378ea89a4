package service

import (
	"testing"

	"crane-parts-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CheckPermission(t *testing.T) {
	svc, err := NewAuthorizationService()
	require.NoError(t, err)

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		want     bool
	}{
		{name: "admin lists all orders", role: "admin", resource: "orders", action: "list_all", want: true},
		{name: "admin cannot use dealer listing", role: "admin", resource: "orders", action: "list_own", want: false},
		{name: "dealer lists own orders", role: "dealer", resource: "orders", action: "list_own", want: true},
		{name: "dealer cannot list all orders", role: "dealer", resource: "orders", action: "list_all", want: false},
		{name: "customer denied on both", role: "customer", resource: "orders", action: "list_all", want: false},
		{name: "unknown role denied", role: "intern", resource: "orders", action: "list_own", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &model.User{ID: "usr-1", Role: tt.role}
			allowed, err := svc.CheckPermission(user, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}
