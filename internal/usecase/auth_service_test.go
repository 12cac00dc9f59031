package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"voyagebj-service/internal/domain/entity"
)

func travelerForm() TravelerSignup {
	return TravelerSignup{
		Name:     "Koffi",
		Phone:    "+229 96000000",
		NPI:      "5566778899",
		Email:    "koffi@mail.com",
		Password: "s3cret",
	}
}

func companyForm() CompanySignup {
	return CompanySignup{
		CompanyName: "Atlantique Voyages",
		Name:        "Bio Gérant",
		Phone:       "97111111",
		NPI:         "1111111111",
		IFU:         "3202400000000",
		RCCM:        "RB/COT/003",
		Email:       "contact@atlantique.bj",
		Password:    "pa55word",
		WhatsApp:    "97111111",
		Location:    "Cotonou, Dantokpa",
		AnattURL:    "anatt.pdf",
	}
}

func TestSignupTraveler(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	acc, err := env.auth.SignupTraveler(ctx, travelerForm())
	if err != nil {
		t.Fatalf("SignupTraveler: %v", err)
	}
	if acc.Role != entity.RoleClient || acc.PasswordHash == "" || acc.PasswordHash == "s3cret" || acc.AvatarURL == "" {
		t.Fatalf("account=%+v", acc)
	}

	current, _ := env.auth.CurrentAccount(ctx)
	if current == nil || current.ID != acc.ID {
		t.Fatalf("current=%v, want new traveler signed in", current)
	}

	if _, err := env.auth.SignupTraveler(ctx, travelerForm()); !errors.Is(err, entity.ErrEmailTaken) {
		t.Fatalf("err=%v, want ErrEmailTaken", err)
	}

	env.auth.Logout(ctx)
	if _, err := env.auth.LoginTraveler(ctx, "koffi@mail.com", "wrong"); !errors.Is(err, entity.ErrInvalidCredentials) {
		t.Fatalf("err=%v, want ErrInvalidCredentials", err)
	}
	if _, err := env.auth.LoginTraveler(ctx, "koffi@mail.com", "s3cret"); err != nil {
		t.Fatalf("LoginTraveler: %v", err)
	}
}

func TestSignupTravelerRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TravelerSignup)
		field  string
	}{
		{"name", func(f *TravelerSignup) { f.Name = " " }, "name"},
		{"phone", func(f *TravelerSignup) { f.Phone = "" }, "phone"},
		{"npi", func(f *TravelerSignup) { f.NPI = "" }, "npi"},
		{"email", func(f *TravelerSignup) { f.Email = "" }, "email"},
		{"password", func(f *TravelerSignup) { f.Password = "" }, "password"},
		{"malformed email", func(f *TravelerSignup) { f.Email = "koffi" }, "email"},
		{"header in email", func(f *TravelerSignup) { f.Email = "koffi@mail.com\r\nBcc: attacker@evil.test" }, "email"},
		{"password over 72 bytes", func(f *TravelerSignup) { f.Password = strings.Repeat("a", 73) }, "password"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			form := travelerForm()
			tt.mutate(&form)
			_, err := env.auth.SignupTraveler(context.Background(), form)
			var verr *entity.ValidationError
			if !errors.As(err, &verr) || verr.Field != tt.field {
				t.Fatalf("err=%v, want ValidationError on %s", err, tt.field)
			}
			if current, _ := env.auth.CurrentAccount(context.Background()); current != nil {
				t.Fatalf("rejected signup opened a session for %s", current.ID)
			}
		})
	}
}

func TestSignupCompany(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	acc, err := env.auth.SignupCompany(ctx, companyForm())
	if err != nil {
		t.Fatalf("SignupCompany: %v", err)
	}
	if acc.Status != entity.CompanyPending || acc.Address != "Cotonou, Dantokpa" || acc.Role != entity.RoleCompany {
		t.Fatalf("account=%+v", acc)
	}
	if acc.BannerURL != "https://picsum.photos/seed/Atlantique%20Voyages/800/300" {
		t.Fatalf("bannerUrl=%q", acc.BannerURL)
	}
	if current, _ := env.auth.CurrentAccount(ctx); current != nil {
		t.Fatalf("company signup opened a session for %s", current.ID)
	}
	if _, err := env.auth.LoginCompany(ctx, "contact@atlantique.bj", "pa55word"); !errors.Is(err, entity.ErrAccountPending) {
		t.Fatalf("err=%v, want ErrAccountPending", err)
	}

	form := companyForm()
	form.Email = "other@atlantique.bj"
	form.AnattURL = ""
	if _, err := env.auth.SignupCompany(ctx, form); !errors.Is(err, entity.ErrValidation) {
		t.Fatalf("err=%v, want ValidationError for missing ANaTT document", err)
	}
}

func TestSignupCompanyForm(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CompanySignup)
		field  string
	}{
		{"company name", func(f *CompanySignup) { f.CompanyName = "" }, "companyName"},
		{"header in email", func(f *CompanySignup) { f.Email = "contact@atlantique.bj\nBcc: attacker@evil.test" }, "email"},
		{"malformed email", func(f *CompanySignup) { f.Email = "contact.atlantique.bj" }, "email"},
		{"password over 72 bytes", func(f *CompanySignup) { f.Password = strings.Repeat("é", 37) }, "password"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			form := companyForm()
			tt.mutate(&form)
			_, err := env.auth.SignupCompany(context.Background(), form)
			var verr *entity.ValidationError
			if !errors.As(err, &verr) || verr.Field != tt.field {
				t.Fatalf("err=%v, want ValidationError on %s", err, tt.field)
			}
			if _, err := env.auth.LoginCompany(context.Background(), form.Email, form.Password); !errors.Is(err, entity.ErrInvalidCredentials) {
				t.Fatalf("rejected company was stored: %v", err)
			}
		})
	}
}

func TestSignupCompanyKeepsBanner(t *testing.T) {
	env := newTestEnv(t)
	form := companyForm()
	form.BannerURL = "https://cdn.atlantique.bj/banner.png"

	acc, err := env.auth.SignupCompany(context.Background(), form)
	if err != nil {
		t.Fatalf("SignupCompany: %v", err)
	}
	if acc.BannerURL != form.BannerURL {
		t.Fatalf("bannerUrl=%q", acc.BannerURL)
	}
}

func TestLoginAdmin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	if _, err := env.auth.LoginAdmin(ctx, "guess"); !errors.Is(err, entity.ErrInvalidCredentials) {
		t.Fatalf("err=%v, want ErrInvalidCredentials", err)
	}
	acc, err := env.auth.LoginAdmin(ctx, "admin-secret")
	if err != nil || acc.ID != entity.AdminID || acc.Role != entity.RoleAdmin {
		t.Fatalf("LoginAdmin=(%v, %v)", acc, err)
	}
}

func TestCurrentAccountFollowsDirectory(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	if _, err := env.auth.LoginTraveler(ctx, "amina@mail.com", ""); err != nil {
		t.Fatalf("LoginTraveler: %v", err)
	}

	profile, _ := env.accounts.FindByID(ctx, "client1")
	profile.Phone = "+229 62000000"
	profile.Role = entity.RoleAdmin
	updated, err := env.auth.UpdateProfile(ctx, *profile)
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Role != entity.RoleClient {
		t.Fatal("UpdateProfile changed the role")
	}

	current, _ := env.auth.CurrentAccount(ctx)
	if current.Phone != "+229 62000000" {
		t.Fatalf("current phone=%q", current.Phone)
	}
	mirror, _ := env.session.Get(ctx)
	if mirror.Phone != "+229 62000000" {
		t.Fatalf("mirror phone=%q", mirror.Phone)
	}

	// the stored record answers when the directory lost the account
	env.medium.Set(ctx, "vb_users", "[]")
	current, err = env.auth.CurrentAccount(ctx)
	if err != nil || current == nil || current.ID != "client1" {
		t.Fatalf("CurrentAccount=(%v, %v)", current, err)
	}
}
