package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleForCedula(t *testing.T) {
	assert.Equal(t, RoleAdmin, RoleForCedula("1000000000"))
	assert.Equal(t, RoleCustomer, RoleForCedula("1234567890"))
	assert.Equal(t, RoleCustomer, RoleForCedula(""))
}
