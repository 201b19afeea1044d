package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceTypeValid(t *testing.T) {
	for _, s := range AllServices() {
		assert.True(t, s.Valid(), "expected %s to be valid", s)
	}
	assert.False(t, ServiceType("massage").Valid())
}

func TestServiceListDistinct(t *testing.T) {
	list := ServiceList{ServiceTint, ServiceClassicLashes, ServiceTint, ServiceClassicLashes}
	assert.Equal(t, ServiceList{ServiceTint, ServiceClassicLashes}, list.Distinct())

	assert.Empty(t, ServiceList(nil).Distinct())
}

func TestServiceListValidate(t *testing.T) {
	assert.NoError(t, ServiceList{ServiceEyebrows, ServicePerm}.Validate())
	assert.NoError(t, ServiceList(nil).Validate())

	err := ServiceList{ServiceEyebrows, ServiceType("massage")}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "massage")
}

func TestServiceListScan_DriverTypes(t *testing.T) {
	// Postgres may hand the jsonb column back as []byte or string.
	var fromBytes ServiceList
	require.NoError(t, fromBytes.Scan([]byte(`["tint","perm"]`)))
	assert.Equal(t, ServiceList{ServiceTint, ServicePerm}, fromBytes)

	var fromString ServiceList
	require.NoError(t, fromString.Scan(`["classic_lashes"]`))
	assert.True(t, fromString.Contains(ServiceClassicLashes))

	var fromNil ServiceList
	require.NoError(t, fromNil.Scan(nil))
	assert.Empty(t, fromNil)

	var bad ServiceList
	assert.Error(t, bad.Scan(42))
}
