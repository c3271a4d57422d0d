package poly

import "testing"

func TestPairCountIncludeAdjacent(t *testing.T) {
	for n := 0; n <= 10; n++ {
		want := 0
		if n >= 2 {
			want = n * (n - 1) / 2
		}
		if got := PairCount(n, true); got != want {
			t.Errorf("PairCount(%d, true) = %d, want %d", n, got, want)
		}
	}
}

func TestPairCountExcludeAdjacent(t *testing.T) {
	cases := map[int]int{0: 0, 1: 0, 2: 0, 3: 0, 4: 2, 5: 5, 6: 9}
	for n, want := range cases {
		if got := PairCount(n, false); got != want {
			t.Errorf("PairCount(%d, false) = %d, want %d", n, got, want)
		}
	}
}

func TestEnumeratePairBijectionIncludeAdjacent(t *testing.T) {
	for n := 2; n <= 30; n++ {
		seen := map[[2]int]bool{}
		count := PairCount(n, true)
		for k := range count {
			a, b := EnumeratePair(n, k, true)
			if !(a < b) {
				t.Fatalf("n=%d k=%d: a=%d b=%d not a<b", n, k, a, b)
			}
			if a < 0 || b >= n {
				t.Fatalf("n=%d k=%d: pair (%d,%d) out of range", n, k, a, b)
			}
			key := [2]int{a, b}
			if seen[key] {
				t.Fatalf("n=%d k=%d: pair (%d,%d) repeated", n, k, a, b)
			}
			seen[key] = true
		}
		if len(seen) != count {
			t.Fatalf("n=%d: saw %d distinct pairs, want %d", n, len(seen), count)
		}
		want := n * (n - 1) / 2
		if len(seen) != want {
			t.Fatalf("n=%d: enumeration covers %d pairs, want all %d", n, len(seen), want)
		}
	}
}

func TestEnumeratePairBijectionExcludeAdjacent(t *testing.T) {
	for n := 4; n <= 30; n++ {
		seen := map[[2]int]bool{}
		count := PairCount(n, false)
		for k := range count {
			a, b := EnumeratePair(n, k, false)
			if !(a < b) {
				t.Fatalf("n=%d k=%d: a=%d b=%d not a<b", n, k, a, b)
			}
			if b-a == 1 {
				t.Fatalf("n=%d k=%d: adjacent pair (%d,%d) leaked through", n, k, a, b)
			}
			if a == 0 && b == n-1 {
				t.Fatalf("n=%d k=%d: wrap-around adjacent pair (0,%d) leaked through", n, k, b)
			}
			key := [2]int{a, b}
			if seen[key] {
				t.Fatalf("n=%d k=%d: pair (%d,%d) repeated", n, k, a, b)
			}
			seen[key] = true
		}
		if len(seen) != count {
			t.Fatalf("n=%d: saw %d distinct pairs, want %d", n, len(seen), count)
		}
	}
}
