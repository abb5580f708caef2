package authroles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
)

func TestStaticRoleMapper(t *testing.T) {
	m := StaticRoleMapper{AdminGroup: "seo-admins"}

	assert.Equal(t, domainauth.RoleAdmin, m.Map([]string{"staff", "seo-admins"}))
	assert.Equal(t, domainauth.RoleUser, m.Map([]string{"staff"}))
	assert.Equal(t, domainauth.RoleUser, m.Map(nil))

	// Without a configured admin group nobody is promoted.
	assert.Equal(t, domainauth.RoleUser, StaticRoleMapper{}.Map([]string{"seo-admins"}))
}
