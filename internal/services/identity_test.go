package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplify-dev/simplify/internal/apperr"
	"github.com/simplify-dev/simplify/internal/models"
)

func newIdentity(t *testing.T) *Identity {
	return NewIdentity(openTestDB(t), testIssuer(t), testLogger())
}

func TestRegister(t *testing.T) {
	svc := newIdentity(t)

	user, token, err := svc.Register(RegisterInput{
		Name:        "Sam",
		Email:       "Sam@Example.COM ",
		Password:    "hunter22",
		Role:        models.RoleStudent,
		CollegeName: "State College",
		Skills:      "Go, SQL",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, "sam@example.com", user.Email)
	assert.Equal(t, "State College", user.CollegeName)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.NotEmpty(t, user.LoginID)

	resolved, err := svc.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestRegisterValidation(t *testing.T) {
	svc := newIdentity(t)

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"missing name", RegisterInput{Email: "a@b.c", Password: "p", Role: models.RoleStudent}},
		{"missing email", RegisterInput{Name: "A", Password: "p", Role: models.RoleStudent}},
		{"missing password", RegisterInput{Name: "A", Email: "a@b.c", Role: models.RoleStudent}},
		{"admin role not registrable", RegisterInput{Name: "A", Email: "a@b.c", Password: "p", Role: models.RoleAdmin}},
		{"unknown role", RegisterInput{Name: "A", Email: "a@b.c", Password: "p", Role: "wizard"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(tt.in)
			assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newIdentity(t)

	in := RegisterInput{Name: "A", Email: "dup@example.com", Password: "p", Role: models.RoleOrganization}
	_, _, err := svc.Register(in)
	require.NoError(t, err)

	in.Name = "B"
	_, _, err = svc.Register(in)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestLogin(t *testing.T) {
	svc := newIdentity(t)

	_, _, err := svc.Register(RegisterInput{
		Name: "Sam", Email: "sam@example.com", Password: "hunter22", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	user, token, err := svc.Login("sam@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotNil(t, user.LastLoginAt)

	// Unknown email and wrong password must be indistinguishable.
	_, _, errUnknown := svc.Login("nobody@example.com", "hunter22")
	_, _, errWrongPass := svc.Login("sam@example.com", "wrong")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(errUnknown))
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(errWrongPass))
	assert.Equal(t, apperr.Message(errUnknown), apperr.Message(errWrongPass))
}

func TestResolveRejectsGarbage(t *testing.T) {
	svc := newIdentity(t)

	_, err := svc.Resolve("not-a-token")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestRotateInvalidatesOldTokens(t *testing.T) {
	svc := newIdentity(t)

	user, oldToken, err := svc.Register(RegisterInput{
		Name: "Sam", Email: "sam@example.com", Password: "hunter22", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	newToken, err := svc.Rotate(user)
	require.NoError(t, err)
	require.NotEqual(t, oldToken, newToken)

	_, err = svc.Resolve(oldToken)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	resolved, err := svc.Resolve(newToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}
