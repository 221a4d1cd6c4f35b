package models_test

import (
	"reflect"
	"testing"

	"openride/internal/models"
)

func TestStopListRoundTrip(t *testing.T) {
	stops := models.StopList{"Port Harcourt", "Trans-Amadi"}

	v, err := stops.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != `{"Port Harcourt","Trans-Amadi"}` {
		t.Errorf("value = %v, want array literal", v)
	}

	var got models.StopList
	if err := got.Scan(v); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !reflect.DeepEqual(got, stops) {
		t.Errorf("got %v, want %v", got, stops)
	}
}

func TestStopListScanBytesAndNil(t *testing.T) {
	var got models.StopList
	if err := got.Scan([]byte(`{Surulere,Yaba}`)); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if len(got) != 2 || got[0] != "Surulere" || got[1] != "Yaba" {
		t.Errorf("got %v", got)
	}

	if err := got.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil list, got %v", got)
	}
}

func TestUserIsDriver(t *testing.T) {
	if !(models.User{Role: models.RoleDriver}).IsDriver() {
		t.Error("driver should report IsDriver")
	}
	if (models.User{Role: models.RoleRider}).IsDriver() {
		t.Error("rider should not report IsDriver")
	}
}
