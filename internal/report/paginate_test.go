package report

import (
	"fmt"
	"testing"
)

func TestPaginate_PageContents(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	size := 7
	pages := PageCount(len(items), size)
	if want := 4; pages != want {
		t.Fatalf("PageCount(23, 7) = %d, want %d", pages, want)
	}

	seen := 0
	for page := 1; page <= pages; page++ {
		chunk := Paginate(items, page, size)
		for j, v := range chunk {
			if want := (page-1)*size + j; v != want {
				t.Errorf("page %d item %d = %d, want %d", page, j, v, want)
			}
		}
		seen += len(chunk)
	}
	if seen != len(items) {
		t.Errorf("pages cover %d items, want %d", seen, len(items))
	}
}

func TestPaginate_LastPagePartial(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	last := Paginate(items, 2, 3)
	if len(last) != 2 || last[0] != "d" || last[1] != "e" {
		t.Errorf("last page = %v", last)
	}
}

func TestPaginate_OutOfRange(t *testing.T) {
	items := []int{1, 2, 3}
	if got := Paginate(items, 5, 2); got != nil {
		t.Errorf("past-the-end page = %v, want nil", got)
	}
	// Page numbers below 1 clamp to the first page.
	if got := Paginate(items, 0, 2); len(got) != 2 || got[0] != 1 {
		t.Errorf("page 0 = %v, want first page", got)
	}
}

func TestPaginate_NonPositiveSizeReturnsAll(t *testing.T) {
	items := []int{1, 2, 3}
	if got := Paginate(items, 1, 0); len(got) != 3 {
		t.Errorf("size 0 = %v, want everything", got)
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		n, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 7, 15},
		{5, 0, 0},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d_%d", tc.n, tc.size), func(t *testing.T) {
			if got := PageCount(tc.n, tc.size); got != tc.want {
				t.Errorf("PageCount(%d, %d) = %d, want %d", tc.n, tc.size, got, tc.want)
			}
		})
	}
}
