package main

import "testing"

func TestEnvString(t *testing.T) {
	t.Setenv("BOOKINV_TEST_STR", "value")

	if got := envString("BOOKINV_TEST_STR", "fallback"); got != "value" {
		t.Errorf("envString = %q, want %q", got, "value")
	}
	if got := envString("BOOKINV_TEST_STR_UNSET", "fallback"); got != "fallback" {
		t.Errorf("envString = %q, want fallback", got)
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("BOOKINV_TEST_INT", "42")
	t.Setenv("BOOKINV_TEST_INT_BAD", "forty-two")

	if got := envInt("BOOKINV_TEST_INT", 7); got != 42 {
		t.Errorf("envInt = %d, want 42", got)
	}
	if got := envInt("BOOKINV_TEST_INT_BAD", 7); got != 7 {
		t.Errorf("envInt on bad value = %d, want fallback 7", got)
	}
	if got := envInt("BOOKINV_TEST_INT_UNSET", 7); got != 7 {
		t.Errorf("envInt on unset = %d, want fallback 7", got)
	}
}

func TestDSN(t *testing.T) {
	var settings serverConfig
	settings.db.host = "db.internal"
	settings.db.port = 5433
	settings.db.user = "books"
	settings.db.password = "pw"
	settings.db.name = "books_inventory"

	want := "host=db.internal port=5433 user=books password=pw dbname=books_inventory sslmode=disable"
	if got := settings.dsn(); got != want {
		t.Errorf("dsn = %q, want %q", got, want)
	}
}
