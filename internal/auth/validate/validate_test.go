package validate_test

import (
	"strings"
	"testing"

	"github.com/parleyhq/parley/internal/auth/validate"
	"github.com/stretchr/testify/require"
)

func TestRegistrationValid(t *testing.T) {
	err := validate.Registration(validate.RegisterInput{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
}

func TestRegistrationFieldRules(t *testing.T) {
	valid := validate.RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"}

	tests := []struct {
		name    string
		mutate  func(*validate.RegisterInput)
		wantKey string
	}{
		{
			name:    "missing name",
			mutate:  func(in *validate.RegisterInput) { in.Name = "" },
			wantKey: "name",
		},
		{
			name:    "name too long",
			mutate:  func(in *validate.RegisterInput) { in.Name = strings.Repeat("a", 101) },
			wantKey: "name",
		},
		{
			name:    "missing email",
			mutate:  func(in *validate.RegisterInput) { in.Email = "" },
			wantKey: "email",
		},
		{
			name:    "malformed email",
			mutate:  func(in *validate.RegisterInput) { in.Email = "not-an-email" },
			wantKey: "email",
		},
		{
			name:    "missing password",
			mutate:  func(in *validate.RegisterInput) { in.Password = "" },
			wantKey: "password",
		},
		{
			name:    "password below minimum",
			mutate:  func(in *validate.RegisterInput) { in.Password = "ab" },
			wantKey: "password",
		},
		{
			name:    "password above bcrypt limit",
			mutate:  func(in *validate.RegisterInput) { in.Password = strings.Repeat("p", 73) },
			wantKey: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := validate.Registration(in)
			require.Error(t, err)
			require.True(t, strings.HasPrefix(err.Error(), tt.wantKey+": "),
				"expected %q to lead with %q", err.Error(), tt.wantKey)
		})
	}
}

func TestRegistrationFirstErrorWins(t *testing.T) {
	// All three fields are invalid; the name rule is reported because
	// fields are checked in declaration order.
	err := validate.Registration(validate.RegisterInput{})
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "name: "), "got %q", err.Error())

	// Same input, same message, every time.
	again := validate.Registration(validate.RegisterInput{})
	require.Equal(t, err.Error(), again.Error())
}

func TestLoginRules(t *testing.T) {
	require.NoError(t, validate.Login(validate.LoginInput{Email: "ann@x.com", Password: "secret1"}))

	err := validate.Login(validate.LoginInput{Password: "secret1"})
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "email: "), "got %q", err.Error())

	err = validate.Login(validate.LoginInput{Email: "ann@x.com"})
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "password: "), "got %q", err.Error())

	// A short password is fine at login time; policy only gates registration.
	require.NoError(t, validate.Login(validate.LoginInput{Email: "ann@x.com", Password: "ab"}))
}
