package repository

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/sugarloaf/bakehouse/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCounterTest(t *testing.T) *GormCounterRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Counter{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewCounterRepository(db)
}

func TestIncrementAndGetStartsAtOne(t *testing.T) {
	repo := setupCounterTest(t)

	for want := int64(1); want <= 3; want++ {
		got, err := repo.IncrementAndGet("orderId")
		if err != nil {
			t.Fatalf("increment failed: %v", err)
		}
		if got != want {
			t.Fatalf("counter want %d got %d", want, got)
		}
	}

	counter, err := repo.Get("orderId")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if counter == nil || counter.Value != 3 {
		t.Fatalf("stored counter want 3 got %+v", counter)
	}
}

func TestIncrementAndGetConcurrentFirstUse(t *testing.T) {
	repo := setupCounterTest(t)

	const callers = 16
	values := make(chan int64, callers)
	errs := make(chan error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := repo.IncrementAndGet("orderId")
			if err != nil {
				errs <- err
				return
			}
			values <- v
		}()
	}
	wg.Wait()
	close(values)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent increment failed: %v", err)
	}
	seen := make(map[int64]bool)
	for v := range values {
		if seen[v] {
			t.Fatalf("value %d handed out twice", v)
		}
		seen[v] = true
	}
	if len(seen) != callers {
		t.Fatalf("want %d distinct values got %d", callers, len(seen))
	}
}

func TestCountersAreIndependent(t *testing.T) {
	repo := setupCounterTest(t)

	if _, err := repo.IncrementAndGet("orderId"); err != nil {
		t.Fatalf("increment failed: %v", err)
	}
	got, err := repo.IncrementAndGet("other")
	if err != nil {
		t.Fatalf("increment failed: %v", err)
	}
	if got != 1 {
		t.Fatalf("fresh counter want 1 got %d", got)
	}

	missing, err := repo.Get("unused")
	if err != nil {
		t.Fatalf("get missing failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing counter should be nil, got %+v", missing)
	}
}
