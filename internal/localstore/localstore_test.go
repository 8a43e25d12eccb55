package localstore

import "testing"

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGet_AbsentKey(t *testing.T) {
	s := open(t)
	var v string
	ok, err := s.Get("missing", &v)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("absent key should report false, not error")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	s := open(t)
	type payload struct {
		Name string  `json:"name"`
		Rate float64 `json:"rate"`
	}
	if err := s.Put(KeyExchangeRate, payload{Name: "iqd", Rate: 1450}); err != nil {
		t.Fatal(err)
	}
	var got payload
	ok, err := s.Get(KeyExchangeRate, &got)
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if got.Name != "iqd" || got.Rate != 1450 {
		t.Fatalf("round trip mangled value: %+v", got)
	}
}

func TestPut_Overwrites(t *testing.T) {
	s := open(t)
	if err := s.Put(KeyCurrency, "USD"); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(KeyCurrency, "IQD"); err != nil {
		t.Fatal(err)
	}
	var v string
	if ok, _ := s.Get(KeyCurrency, &v); !ok || v != "IQD" {
		t.Fatalf("want overwritten value IQD, got %q", v)
	}
}

func TestDelete(t *testing.T) {
	s := open(t)
	if err := s.Put(KeySession, map[string]string{"userId": "u-1"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(KeySession); err != nil {
		t.Fatal(err)
	}
	var v map[string]string
	if ok, _ := s.Get(KeySession, &v); ok {
		t.Fatal("deleted key should be absent")
	}
	// Deleting an absent key is not an error.
	if err := s.Delete(KeySession); err != nil {
		t.Fatal(err)
	}
}
