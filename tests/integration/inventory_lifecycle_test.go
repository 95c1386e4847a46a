package integration

import (
	"errors"
	"math"
	"testing"

	"github.com/mesh-intelligence/shopkeep/internal/store"
	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// TestInventoryLifecycle walks the bookstore side: add a book, oversell it,
// then drain the stock with a valid sale.
func TestInventoryLifecycle(t *testing.T) {
	rec, _ := setupRecord(t)
	owner := mustRegister(t, rec, "owner", "secret")
	s := mustOpenStore(t, rec, owner.ID)

	dune := mustCreateBook(t, s, types.Book{
		Title: "Dune", Author: "Frank Herbert", Price: 10.99, Stock: 50,
	})

	// Overselling is refused and leaves the stock untouched.
	_, err := s.LogSale(dune.ID, 51)
	if !errors.Is(err, types.ErrInsufficientStock) {
		t.Fatalf("LogSale(51 of 50): err = %v, want ErrInsufficientStock", err)
	}
	got, err := s.GetBook(dune.ID)
	if err != nil {
		t.Fatalf("GetBook: %v", err)
	}
	if got.Stock != 50 {
		t.Fatalf("stock after refused sale = %d, want 50", got.Stock)
	}

	// Selling the full stock drains it to zero.
	sale, err := s.LogSale(dune.ID, 50)
	if err != nil {
		t.Fatalf("LogSale(50): %v", err)
	}
	if math.Abs(sale.TotalAmount-549.50) > 1e-9 {
		t.Fatalf("TotalAmount = %v, want 549.50", sale.TotalAmount)
	}
	got, _ = s.GetBook(dune.ID)
	if got.Stock != 0 {
		t.Fatalf("stock after full sale = %d, want 0", got.Stock)
	}

	// The sale ledger keeps its snapshot after the book is deleted.
	if err := s.DeleteBook(dune.ID); err != nil {
		t.Fatalf("DeleteBook: %v", err)
	}
	sales := s.Sales()
	if len(sales) != 1 || sales[0].BookTitle != "Dune" {
		t.Fatalf("sales after book deletion = %v, want the Dune sale", sales)
	}

	// Dashboard recomputes from the surviving records.
	stats := s.Dashboard()
	if stats.UnitsSold != 50 {
		t.Fatalf("UnitsSold = %d, want 50", stats.UnitsSold)
	}
	if math.Abs(stats.TotalRevenue-549.50) > 1e-9 {
		t.Fatalf("TotalRevenue = %v, want 549.50", stats.TotalRevenue)
	}
}

// TestBackupRestoreRoundTrip exports one user's records and merges them into
// another account, checking that ids are re-minted and references follow.
func TestBackupRestoreRoundTrip(t *testing.T) {
	rec, _ := setupRecord(t)
	src := mustRegister(t, rec, "src", "secret")
	dst := mustRegister(t, rec, "dst", "secret")

	srcStore := mustOpenStore(t, rec, src.ID)
	scifi, err := srcStore.CreateGenre("Space Opera", "")
	if err != nil {
		t.Fatalf("CreateGenre: %v", err)
	}
	book := mustCreateBook(t, srcStore, types.Book{
		Title: "Dune", Author: "Frank Herbert", GenreID: scifi.ID, Price: 10.99, Stock: 5,
	})

	raw, err := backupJSON(srcStore)
	if err != nil {
		t.Fatalf("backup: %v", err)
	}

	dstStore := mustOpenStore(t, rec, dst.ID)
	summary, err := dstStore.ImportBackup(raw)
	if err != nil {
		t.Fatalf("ImportBackup: %v", err)
	}
	if summary.Books == 0 {
		t.Fatalf("summary = %+v, want imported books", summary)
	}

	imported := dstStore.QueryBooks(store.BookFilter{Search: "dune"}, store.SortByTitle)
	if len(imported) != 1 {
		t.Fatalf("imported books = %v, want one Dune", imported)
	}
	if imported[0].ID == book.ID {
		t.Fatal("imported book kept its original id")
	}
	if name := dstStore.GenreName(imported[0].GenreID); name != "Space Opera" {
		t.Fatalf("imported book genre = %q, want Space Opera", name)
	}
}
