package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"able-match/internal/domain/user"
	"able-match/internal/repository"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return errors.New("duplicate email")
	}
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, _ repository.ProfileUpdate) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			return nil
		}
	}
	return user.ErrNotFound
}

func TestRegisterNormalizesEmailAndDefaultsUserType(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: "maya",
		Email:    "  Maya@Example.COM ",
		Password: "s3cret-password",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Email != "maya@example.com" {
		t.Fatalf("email = %q, want normalized lowercase", u.Email)
	}
	if u.UserType != user.TypeJobSeeker {
		t.Fatalf("user type = %q, want default %q", u.UserType, user.TypeJobSeeker)
	}
	if u.PasswordHash != "" {
		t.Fatal("password hash leaked in returned user")
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	cases := []RegisterInput{
		{Username: "", Email: "a@b.com", Password: "long-enough-pass"},
		{Username: "x", Email: "", Password: "long-enough-pass"},
		{Username: "x", Email: "a@b.com", Password: "short"},
		{Username: "x", Email: "a@b.com", Password: "long-enough-pass", UserType: "admin"},
	}
	for i, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("case %d: err = %v, want ErrInvalidInput", i, err)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	in := RegisterInput{Username: "maya", Email: "maya@example.com", Password: "s3cret-password"}

	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("second Register err = %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	if _, err := svc.Register(context.Background(), RegisterInput{
		Username: "maya",
		Email:    "maya@example.com",
		Password: "s3cret-password",
		UserType: user.TypeEmployer,
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	u, err := svc.Login(context.Background(), LoginInput{Email: "MAYA@example.com", Password: "s3cret-password"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.UserType != user.TypeEmployer {
		t.Fatalf("user type = %q, want %q", u.UserType, user.TypeEmployer)
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "maya@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "whatever"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginEmptyInputs(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	for _, in := range []LoginInput{{}, {Email: strings.Repeat(" ", 3), Password: "x"}, {Email: "a@b.com"}} {
		if _, err := svc.Login(context.Background(), in); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%+v) err = %v, want ErrInvalidCredentials", in, err)
		}
	}
}
