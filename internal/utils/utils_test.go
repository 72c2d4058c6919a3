package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("hash equals plaintext")
	}

	if !CheckPassword("s3cret-password", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong-password", hash) {
		t.Error("wrong password accepted")
	}
	if CheckPassword("s3cret-password", "not-a-bcrypt-hash") {
		t.Error("malformed hash accepted")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	h2, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same input are identical; salt missing")
	}
}
