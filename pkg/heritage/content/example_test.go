package content_test

import (
	"fmt"

	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/content"
)

func Example() {
	store := content.MustNew()

	fmt.Println(store.ToggleBookmark("t1"))
	for _, it := range store.SavedItems("en") {
		fmt.Println(it.ID, it.Title)
	}

	fmt.Println(store.ToggleBookmark("s1"))
	fmt.Println(len(store.SavedItems("en")))

	// Output:
	// true
	// s1 Indian Heritage and Cultural Dance
	// s2 Ancient Temples of South India
	// t1 The Majestic Mysore Dasara
	// false
	// 2
}

func ExampleStat() {
	fmt.Println(content.Stat("l1", content.StatLikes), content.Stat("l1", content.StatComments))
	// Output: 4.3k 165
}
