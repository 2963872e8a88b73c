package services

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Secret#123")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "Secret#123" {
		t.Fatal("password stored in plain text")
	}

	ok, err := VerifyPassword(hash, "Secret#123")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("correct password rejected")
	}
}

func TestVerifyPasswordRejectsWrongPassword(t *testing.T) {
	hash, err := HashPassword("Secret#123")
	if err != nil {
		t.Fatal(err)
	}

	ok, err := VerifyPassword(hash, "Wrong#456")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	h1, _ := HashPassword("Secret#123")
	h2, _ := HashPassword("Secret#123")
	if h1 == h2 {
		t.Error("two hashes of the same password should differ")
	}
}
