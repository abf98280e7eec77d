package user

import (
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)
	return validate
}

func TestValidatePassword(t *testing.T) {
	validate := newTestValidator(t)

	nu := func(pwd string) NewUser {
		return NewUser{
			Email:     "lindiwe@test.test",
			Password:  pwd,
			FirstName: "Lindiwe",
			LastName:  "Dube",
			Role:      RoleStudent,
			Market:    core.DefaultMarket,
		}
	}

	tests := []struct {
		name    string
		usr     NewUser
		wantErr bool
	}{
		{name: "ok", usr: nu("secret123")},
		{name: "too short", usr: nu("s3cret"), wantErr: true},
		{name: "whitespace", usr: nu("secret 123"), wantErr: true},
		{name: "all numeric", usr: nu("19981998"), wantErr: true},
		{name: "similar to first name", usr: nu("lindiwe1"), wantErr: true},
		{name: "similar to email", usr: nu("lindiwe@test.test"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validate.Struct(tt.usr); (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSignupRoleValidation(t *testing.T) {
	validate := newTestValidator(t)

	usr := NewUser{
		Email:     "amara@test.test",
		Password:  "secret123",
		FirstName: "Amara",
		LastName:  "Ncube",
		Market:    core.DefaultMarket,
	}

	for _, role := range SignupRoles {
		usr.Role = role
		if err := validate.Struct(usr); err != nil {
			t.Errorf("Struct() role %q error = %v", role, err)
		}
	}

	usr.Role = RoleAdmin
	if err := validate.Struct(usr); err == nil {
		t.Error("Struct() accepted a self-assigned admin role")
	}
}

func TestUpdateUserPasswordOptional(t *testing.T) {
	validate := newTestValidator(t)

	// no password change requested; policy must not apply
	uu := UpdateUser{FirstName: "Thabo", LastName: "Sithole", Market: core.DefaultMarket}
	if err := validate.Struct(uu); err != nil {
		t.Errorf("Struct() error = %v", err)
	}

	uu.Password = "short"
	uu.PasswordConfirm = "short"
	if err := validate.Struct(uu); err == nil {
		t.Error("Struct() accepted a password below the minimum length")
	}
}
