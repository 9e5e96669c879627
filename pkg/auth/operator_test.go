package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestOperator_Configured(t *testing.T) {
	if (Operator{Username: "admin"}).Configured() {
		t.Error("operator without password must not be configured")
	}
	if !(Operator{Username: "admin", Password: "pw"}).Configured() {
		t.Error("operator with plaintext password should be configured")
	}
	if !(Operator{Username: "admin", PasswordHash: "$2a$..."}).Configured() {
		t.Error("operator with hash should be configured")
	}
}

func TestOperator_Verify_Plaintext(t *testing.T) {
	op := Operator{Username: "admin", Password: "hunter2"}

	cases := []struct {
		user, pass string
		want       bool
	}{
		{"admin", "hunter2", true},
		{"admin", "hunter3", false},
		{"Admin", "hunter2", false},
		{"admin", "", false},
		{"", "hunter2", false},
		{"admin", "hunter2 ", false},
	}
	for _, c := range cases {
		if got := op.Verify(c.user, c.pass); got != c.want {
			t.Errorf("Verify(%q, %q): want %v, got %v", c.user, c.pass, c.want, got)
		}
	}
}

func TestOperator_Verify_Bcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("stage-dive"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	op := Operator{Username: "kelly", Password: "ignored", PasswordHash: string(hash)}

	if !op.Verify("kelly", "stage-dive") {
		t.Error("expected bcrypt password to verify")
	}
	if op.Verify("kelly", "ignored") {
		t.Error("hash must take precedence over plaintext password")
	}
}

func TestOperator_Verify_Unconfigured(t *testing.T) {
	op := Operator{Username: "admin"}
	if op.Verify("admin", "") {
		t.Error("unconfigured operator must never verify")
	}
}
