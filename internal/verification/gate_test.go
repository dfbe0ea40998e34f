package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCode_SixDigits(t *testing.T) {
	var g Gate
	code := g.IssueCode("user@example.com")

	require.Len(t, code, CodeLength)
	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9', "non-digit %q in code %s", c, code)
	}
	assert.Equal(t, "user@example.com", g.Email())
}

func TestCheckCode_ExactMatchOnly(t *testing.T) {
	var g Gate
	code := g.IssueCode("user@example.com")

	assert.False(t, g.CheckCode(""))
	assert.False(t, g.CheckCode("000000"+code))
	assert.False(t, g.CheckCode(code[:5]))
	assert.False(t, g.Verified())

	assert.True(t, g.CheckCode(code))
	assert.True(t, g.Verified())
}

func TestCheckCode_NewCodeSupersedesOld(t *testing.T) {
	var g Gate
	old := g.IssueCode("user@example.com")
	fresh := g.IssueCode("user@example.com")

	if old != fresh {
		assert.False(t, g.CheckCode(old))
	}
	assert.True(t, g.CheckCode(fresh))
}

func TestCheckCode_NothingIssued(t *testing.T) {
	var g Gate
	assert.False(t, g.CheckCode(""))
	assert.False(t, g.CheckCode("123456"))
	assert.False(t, g.Verified())
}

func TestIssueCode_ResetsVerified(t *testing.T) {
	var g Gate
	code := g.IssueCode("user@example.com")
	require.True(t, g.CheckCode(code))

	g.IssueCode("user@example.com")
	assert.False(t, g.Verified())
}
