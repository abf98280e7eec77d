package user

import "testing"

func TestUser_SetCheckPassword(t *testing.T) {
	usr := User{Email: "t@test.test"}
	if err := usr.SetPassword("secret123"); err != nil {
		t.Fatalf("SetPassword() error = %v", err)
	}
	if len(usr.PasswordHash) == 0 {
		t.Fatal("SetPassword() did not set a hash")
	}
	if err := usr.CheckPassword("secret123"); err != nil {
		t.Errorf("CheckPassword() error = %v", err)
	}
	if err := usr.CheckPassword("wrong-password"); err == nil {
		t.Error("CheckPassword() accepted a wrong password")
	}
}

func TestUser_FullName(t *testing.T) {
	tests := []struct {
		name string
		usr  User
		want string
	}{
		{name: "both names", usr: User{FirstName: "Thandi", LastName: "Moyo"}, want: "Thandi Moyo"},
		{name: "first only", usr: User{FirstName: "Thandi"}, want: "Thandi"},
		{name: "last only", usr: User{LastName: "Moyo"}, want: "Moyo"},
		{name: "empty", usr: User{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.usr.FullName(); got != tt.want {
				t.Errorf("FullName() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUser_roleHelpers(t *testing.T) {
	usr := User{Role: RoleTeacher}
	if !usr.IsTeacher() || usr.IsStudent() || usr.IsParent() || usr.IsAdmin() {
		t.Errorf("role helpers inconsistent for role %q", usr.Role)
	}
}
