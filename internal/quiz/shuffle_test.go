package quiz

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func TestShuffle_IsPermutation(t *testing.T) {
	bank := testBank(15)
	s := NewShuffler(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		got := s.Shuffle(bank)
		if len(got) != len(bank) {
			t.Fatalf("expected %d statements, got %d", len(bank), len(got))
		}
		if !reflect.DeepEqual(idSet(got), idSet(bank)) {
			t.Fatalf("shuffle changed the multiset of statements: %v", idSet(got))
		}
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	bank := testBank(15)
	original := append(bank[:0:0], bank...)

	got := NewShuffler(rand.NewSource(7)).Shuffle(bank)
	if !reflect.DeepEqual(bank, original) {
		t.Fatal("input slice was modified")
	}

	got[0].Text = "changed"
	if bank[0].Text == "changed" || original[0].Text == "changed" {
		t.Fatal("result shares storage with the input")
	}
}

func TestShuffle_SameSeedSameOrder(t *testing.T) {
	bank := testBank(15)
	a := NewShuffler(rand.NewSource(99)).Shuffle(bank)
	b := NewShuffler(rand.NewSource(99)).Shuffle(bank)

	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical permutations for identical seeds")
	}
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	s := NewShuffler(rand.NewSource(3))

	if got := s.Shuffle(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %d items", len(got))
	}

	one := testBank(1)
	if got := s.Shuffle(one); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("unexpected result for single statement: %+v", got)
	}
}

func TestShuffle_RoughlyUniform(t *testing.T) {
	bank := testBank(3)
	s := NewShuffler(rand.NewSource(2024))

	const runs = 6000
	counts := make(map[string]int)
	for i := 0; i < runs; i++ {
		got := s.Shuffle(bank)
		var key strings.Builder
		for _, st := range got {
			key.WriteByte(byte('0' + st.ID))
		}
		counts[key.String()]++
	}

	if len(counts) != 6 {
		t.Fatalf("expected all 6 permutations, got %d: %v", len(counts), counts)
	}
	for perm, n := range counts {
		if n < 800 || n > 1200 {
			t.Errorf("permutation %s appeared %d times, expected about %d", perm, n, runs/6)
		}
	}
}
