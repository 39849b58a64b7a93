package client

import (
	"sync"
	"testing"
)

type item struct {
	id    string
	value int
}

func newItems() *Collection[item] {
	return NewCollection(func(i item) string { return i.id })
}

func TestCollection(t *testing.T) {
	c := newItems()
	c.Append(item{"1", 1})
	c.Append(item{"2", 2})
	c.Append(item{"3", 3})

	if !c.Replace(item{"2", 20}) {
		t.Fatal("Replace(2) = false")
	}
	if c.Replace(item{"9", 90}) {
		t.Error("Replace(9) = true for a missing identity")
	}
	if !c.Remove("1") {
		t.Fatal("Remove(1) = false")
	}
	if c.Remove("1") {
		t.Error("Remove(1) twice = true")
	}

	got := c.Items()
	want := []item{{"2", 20}, {"3", 3}}
	if len(got) != len(want) {
		t.Fatalf("Items() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Items()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if v, ok := c.Get("3"); !ok || v.value != 3 {
		t.Errorf("Get(3) = %v, %v", v, ok)
	}
}

func TestCollection_ItemsIsACopy(t *testing.T) {
	c := newItems()
	c.Append(item{"1", 1})

	items := c.Items()
	items[0].value = 100

	if v, _ := c.Get("1"); v.value != 1 {
		t.Errorf("mutating Items() changed the collection: %v", v)
	}
}

func TestCollection_Concurrent(t *testing.T) {
	c := newItems()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.Append(item{id: string(rune('a' + n%26)), value: n})
			_ = c.Items()
		}(i)
	}
	wg.Wait()

	if c.Len() != 50 {
		t.Errorf("Len() = %d, want 50", c.Len())
	}
}
