package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupWithoutMembersIsStillAGroup(t *testing.T) {
	g := Group("empty", nil)
	assert.NotNil(t, g.Members)
	assert.Empty(t, g.Members)
	assert.True(t, g.IsGroup())
}

func TestGroupCopiesMembers(t *testing.T) {
	members := []string{"a", "b"}
	g := Group("g", members)
	members[0] = "z"
	assert.Equal(t, []string{"a", "b"}, g.Members)
}
