// Package stats provides aggregation helpers over in-memory blog lists,
// independent of the store.
package stats

import "bloglist/models"

// TotalLikes sums the likes across all blogs. Zero for an empty list.
func TotalLikes(blogs []models.Blog) int {
	sum := 0
	for _, b := range blogs {
		sum += b.Likes
	}
	return sum
}

// FavoriteBlog returns the blog with the most likes. On a tie the first one
// encountered wins. ok is false for an empty list.
func FavoriteBlog(blogs []models.Blog) (favorite models.Blog, ok bool) {
	if len(blogs) == 0 {
		return models.Blog{}, false
	}

	favorite = blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > favorite.Likes {
			favorite = b
		}
	}
	return favorite, true
}

// AuthorCount pairs an author with the number of blogs they wrote.
type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"blogs"`
}

// MostBlogs returns the author with the greatest number of blogs in a single
// left-to-right pass; the first author to reach the maximum wins. ok is
// false for an empty list.
func MostBlogs(blogs []models.Blog) (most AuthorCount, ok bool) {
	if len(blogs) == 0 {
		return AuthorCount{}, false
	}

	counts := make(map[string]int, len(blogs))
	for _, b := range blogs {
		counts[b.Author]++
		if counts[b.Author] > most.Count {
			most = AuthorCount{Author: b.Author, Count: counts[b.Author]}
		}
	}
	return most, true
}
