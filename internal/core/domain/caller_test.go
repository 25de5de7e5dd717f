package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCaller_Privileged tests role checks
func TestCaller_Privileged(t *testing.T) {
	assert.True(t, Caller{PrincipalID: "u1", Role: RolePrivileged}.Privileged())
	assert.False(t, Caller{PrincipalID: "u1", Role: RoleStandard}.Privileged())
	assert.False(t, Caller{PrincipalID: "u1"}.Privileged())
}

// TestCaller_CanAccess tests the document visibility rule
func TestCaller_CanAccess(t *testing.T) {
	doc := &Document{ID: "doc-1", OwnerID: "owner"}

	tests := []struct {
		name   string
		caller Caller
		doc    *Document
		want   bool
	}{
		{"owner standard", Caller{PrincipalID: "owner", Role: RoleStandard}, doc, true},
		{"other standard", Caller{PrincipalID: "intruder", Role: RoleStandard}, doc, false},
		{"other privileged", Caller{PrincipalID: "admin", Role: RolePrivileged}, doc, true},
		{"nil document", Caller{PrincipalID: "admin", Role: RolePrivileged}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.caller.CanAccess(tt.doc))
		})
	}
}
