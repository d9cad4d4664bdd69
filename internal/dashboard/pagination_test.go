package dashboard

import (
	"testing"
)

func TestPaginate(t *testing.T) {
	t.Run("Twenty-Five Items First Page", func(t *testing.T) {
		info := Paginate(25, 10, 1)

		if info.TotalPages != 3 {
			t.Errorf("expected 3 pages, got %d", info.TotalPages)
		}
		if info.StartItem != 1 {
			t.Errorf("expected start item 1, got %d", info.StartItem)
		}
		if info.EndItem != 10 {
			t.Errorf("expected end item 10, got %d", info.EndItem)
		}
	})

	t.Run("Last Partial Page", func(t *testing.T) {
		info := Paginate(25, 10, 3)

		if info.StartItem != 21 {
			t.Errorf("expected start item 21, got %d", info.StartItem)
		}
		if info.EndItem != 25 {
			t.Errorf("expected end item 25, got %d", info.EndItem)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		info := Paginate(0, 10, 1)

		if info.TotalPages != 0 {
			t.Errorf("expected 0 pages, got %d", info.TotalPages)
		}
		if info.StartItem != 0 || info.EndItem != 0 {
			t.Errorf("expected 0-0 item range, got %d-%d", info.StartItem, info.EndItem)
		}
		if len(info.Pages) != 0 {
			t.Errorf("expected no page window, got %v", info.Pages)
		}
	})

	t.Run("Ceiling Division", func(t *testing.T) {
		cases := []struct {
			total, perPage, want int
		}{
			{0, 10, 0},
			{1, 10, 1},
			{10, 10, 1},
			{11, 10, 2},
			{100, 30, 4},
			{101, 50, 3},
		}

		for _, c := range cases {
			if got := Paginate(c.total, c.perPage, 1).TotalPages; got != c.want {
				t.Errorf("Paginate(%d, %d).TotalPages = %d, want %d", c.total, c.perPage, got, c.want)
			}
		}
	})

	t.Run("Window Shows All Pages When Five Or Fewer", func(t *testing.T) {
		info := Paginate(50, 10, 3)

		want := []int{1, 2, 3, 4, 5}
		if len(info.Pages) != len(want) {
			t.Fatalf("expected %v, got %v", want, info.Pages)
		}
		for i, p := range want {
			if info.Pages[i] != p {
				t.Fatalf("expected %v, got %v", want, info.Pages)
			}
		}
	})

	t.Run("Window Centered Mid-Range", func(t *testing.T) {
		info := Paginate(100, 10, 6)

		if info.Pages[0] != 4 || info.Pages[len(info.Pages)-1] != 8 {
			t.Errorf("expected window 4..8, got %v", info.Pages)
		}
	})

	t.Run("Window Clamped At Start", func(t *testing.T) {
		info := Paginate(100, 10, 1)

		if info.Pages[0] != 1 || info.Pages[len(info.Pages)-1] != 5 {
			t.Errorf("expected window 1..5, got %v", info.Pages)
		}
	})

	t.Run("Window Clamped At End", func(t *testing.T) {
		info := Paginate(100, 10, 10)

		if info.Pages[0] != 8 || info.Pages[len(info.Pages)-1] != 10 {
			t.Errorf("expected window 8..10, got %v", info.Pages)
		}
	})

	t.Run("Window Always Contains Current Page", func(t *testing.T) {
		for _, total := range []int{1, 9, 10, 11, 49, 100, 251, 999} {
			for _, perPage := range PerPageOptions {
				totalPages := Paginate(total, perPage, 1).TotalPages
				for page := 1; page <= totalPages; page++ {
					info := Paginate(total, perPage, page)

					found := false
					for _, p := range info.Pages {
						if p == page {
							found = true
						}
					}
					if !found {
						t.Fatalf("window %v for total=%d perPage=%d misses page %d", info.Pages, total, perPage, page)
					}

					if len(info.Pages) > maxVisiblePages {
						t.Fatalf("window %v wider than %d pages", info.Pages, maxVisiblePages)
					}
				}
			}
		}
	})

	t.Run("ValidPerPage", func(t *testing.T) {
		for _, n := range PerPageOptions {
			if !ValidPerPage(n) {
				t.Errorf("expected %d to be allowed", n)
			}
		}
		for _, n := range []int{0, 1, 15, 25, 100, -10} {
			if ValidPerPage(n) {
				t.Errorf("expected %d to be rejected", n)
			}
		}
	})
}
