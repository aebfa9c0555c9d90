package tests

import (
	"context"
	"testing"

	"courier/internal/domain"
	"courier/internal/service"
)

func validRegistration() service.RegisterRequest {
	return service.RegisterRequest{
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Password: "s3cret",
		Phone:    "9876543210",
	}
}

func TestRegister_ValidatesRequiredFields(t *testing.T) {
	userService := service.NewUserService(NewMockUserRepository(), MockHasher{})

	testCases := []struct {
		name    string
		mutate  func(*service.RegisterRequest)
		wantErr error
	}{
		{"empty name", func(r *service.RegisterRequest) { r.Name = "" }, service.ErrInvalidName},
		{"empty email", func(r *service.RegisterRequest) { r.Email = "" }, service.ErrInvalidEmail},
		{"empty password", func(r *service.RegisterRequest) { r.Password = "" }, service.ErrInvalidPassword},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegistration()
			tc.mutate(&req)

			if err := userService.Register(context.Background(), req); err != tc.wantErr {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestRegister_DefaultsRoleToCustomer(t *testing.T) {
	userRepo := NewMockUserRepository()
	userService := service.NewUserService(userRepo, MockHasher{})

	if err := userService.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	users, _ := userRepo.GetAll(context.Background())
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}

	if users[0].Role != domain.RoleCustomer {
		t.Errorf("expected role customer, got %s", users[0].Role)
	}

	// The stored credential is a digest, never the plaintext.
	if users[0].PasswordHash == "s3cret" {
		t.Error("password stored in plaintext")
	}
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	userRepo := NewMockUserRepository()
	userService := service.NewUserService(userRepo, MockHasher{})

	if err := userService.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := validRegistration()
	req.Name = "Someone Else"

	if err := userService.Register(context.Background(), req); err != service.ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}

	if userRepo.CountUsers() != 1 {
		t.Errorf("expected 1 user after duplicate registration, got %d", userRepo.CountUsers())
	}
}

func TestRegister_AcceptsDistinctEmails(t *testing.T) {
	userRepo := NewMockUserRepository()
	userService := service.NewUserService(userRepo, MockHasher{})

	if err := userService.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := validRegistration()
	req.Email = "ravi2@example.com"

	if err := userService.Register(context.Background(), req); err != nil {
		t.Errorf("unexpected error for distinct email: %v", err)
	}

	if userRepo.CountUsers() != 2 {
		t.Errorf("expected 2 users, got %d", userRepo.CountUsers())
	}
}

func TestLogin_WrongPasswordAndUnknownEmailAreIndistinguishable(t *testing.T) {
	userRepo := NewMockUserRepository()
	userService := service.NewUserService(userRepo, MockHasher{})

	if err := userService.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, wrongPassErr := userService.Login(context.Background(), "ravi@example.com", "wrong")
	_, unknownEmailErr := userService.Login(context.Background(), "nobody@example.com", "s3cret")

	if wrongPassErr != service.ErrInvalidCredentials {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassErr)
	}

	if unknownEmailErr != service.ErrInvalidCredentials {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmailErr)
	}

	// Identical message either way; nothing discloses which field was
	// wrong.
	if wrongPassErr.Error() != unknownEmailErr.Error() {
		t.Errorf("messages differ: %q vs %q", wrongPassErr.Error(), unknownEmailErr.Error())
	}
}

func TestLogin_Success(t *testing.T) {
	userRepo := NewMockUserRepository()
	userService := service.NewUserService(userRepo, MockHasher{})

	if err := userService.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := userService.Login(context.Background(), "ravi@example.com", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Email != "ravi@example.com" || user.Name != "Ravi" {
		t.Errorf("unexpected user %+v", user)
	}
}
