package user

import "testing"

func TestRolesRoundTrip(t *testing.T) {
	u := User{Roles: RolesJoin([]string{RoleRenter, RoleOwner})}
	got := u.RolesSlice()
	if len(got) != 2 || got[0] != RoleRenter || got[1] != RoleOwner {
		t.Fatalf("unexpected roles: %v", got)
	}
	if !u.HasRole(RoleOwner) {
		t.Fatalf("expected HasRole(owner) = true")
	}
	if u.HasRole(RoleAdmin) {
		t.Fatalf("expected HasRole(admin) = false")
	}
}

func TestRolesSliceSkipsEmpty(t *testing.T) {
	u := User{Roles: " renter, ,owner,"}
	got := u.RolesSlice()
	if len(got) != 2 {
		t.Fatalf("expected 2 roles, got %v", got)
	}
	if (User{}).HasRole(RoleRenter) {
		t.Fatalf("empty roles must not match")
	}
}
