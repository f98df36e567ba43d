package cli

import (
	"testing"

	"github.com/microbank/securebank/internal/client/models"
	"github.com/microbank/securebank/internal/client/session"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		sess *fakeSession
		want string
	}{
		{
			"anonymous",
			&fakeSession{status: session.StatusAnonymous},
			"",
		},
		{
			"hydrating",
			&fakeSession{status: session.StatusHydrating},
			"(restoring session)",
		},
		{
			"authenticated",
			&fakeSession{
				status: session.StatusAuthenticated,
				user:   &models.User{Email: "a@b.c"},
			},
			"(a@b.c)",
		},
		{
			"admin",
			&fakeSession{
				status: session.StatusAuthenticated,
				user:   &models.User{Email: "a@b.c", Role: models.RoleAdmin},
			},
			"(a@b.c admin)",
		},
		{
			"restricted",
			&fakeSession{
				status: session.StatusAuthenticated,
				user:   &models.User{Email: "a@b.c", Blacklisted: true},
			},
			"(a@b.c restricted)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &App{session: tt.sess}
			if got := a.status(); got != tt.want {
				t.Fatalf("status: want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRoleChecks(t *testing.T) {
	admin := &App{session: &fakeSession{
		status: session.StatusAuthenticated,
		user:   &models.User{Role: models.RoleAdmin},
	}}
	if !admin.isAdmin() || admin.isRestricted() {
		t.Fatalf("admin flags wrong")
	}

	restricted := &App{session: &fakeSession{
		status: session.StatusAuthenticated,
		user:   &models.User{Blacklisted: true},
	}}
	if restricted.isAdmin() || !restricted.isRestricted() {
		t.Fatalf("restricted flags wrong")
	}

	anon := &App{session: &fakeSession{status: session.StatusAnonymous}}
	if anon.isLoggedIn() || anon.isAdmin() || anon.isRestricted() {
		t.Fatalf("anonymous flags wrong")
	}
}
