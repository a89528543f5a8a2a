package catalog

import (
	"errors"
	"testing"
)

func TestCatalog_Find(t *testing.T) {
	cat := Default()

	product, err := cat.Find("Kaju Katli")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if product.BasePrice <= 0 {
		t.Errorf("catalog product has no base price: %+v", product)
	}
	if product.Image == "" {
		t.Errorf("catalog product has no image: %+v", product)
	}

	if _, err := cat.Find("Chocolate Cake"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find() for unknown product error = %v, want ErrNotFound", err)
	}
}

func TestCatalog_ListIsCopy(t *testing.T) {
	cat := Default()

	list := cat.List()
	if len(list) == 0 {
		t.Fatal("default catalog should not be empty")
	}
	list[0].Name = "Tampered"

	if _, err := cat.Find("Tampered"); err == nil {
		t.Error("mutating List() result should not affect the catalog")
	}
}
