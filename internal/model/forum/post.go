package forum

import "time"

// Post is a peer-forum entry. LikedBy tracks which users toggled the like
// so a second tap withdraws it.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	Replies     int       `json:"replies"`
	Likes       int       `json:"likes"`
	CreatedAt   time.Time `json:"createdAt"`
	IsAnonymous bool      `json:"isAnonymous"`
	LikedBy     []string  `json:"likedBy"`
}

// StorageKey holds the whole forum under one document.
const StorageKey = "communityPosts"

// Categories lists the selectable post categories; "All Posts" is the
// unfiltered view.
func Categories() []string {
	return []string{
		"All Posts",
		"Academic Stress",
		"General Support",
		"Sleep Issues",
		"Success Stories",
		"Study Groups",
		"Anxiety Help",
		"Depression Support",
	}
}

// Seed returns the starter posts shown before anyone has written.
func Seed() []Post {
	return []Post{
		{
			ID:          "1",
			Title:       "Dealing with exam anxiety - tips that helped me",
			Content:     "Hey everyone! I wanted to share some techniques that really helped me manage my anxiety during finals week. The 4-7-8 breathing technique has been a game changer...",
			Author:      "Anonymous_Student",
			Category:    "Academic Stress",
			Replies:     24,
			Likes:       45,
			CreatedAt:   time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC),
			IsAnonymous: true,
			LikedBy:     []string{},
		},
		{
			ID:          "2",
			Title:       "Finding motivation when everything feels overwhelming",
			Content:     "I've been struggling with feeling overwhelmed lately. Anyone else going through something similar? Would love to hear your coping strategies.",
			Author:      "MindfulMike",
			Category:    "General Support",
			Replies:     18,
			Likes:       32,
			CreatedAt:   time.Date(2024, time.December, 14, 0, 0, 0, 0, time.UTC),
			IsAnonymous: false,
			LikedBy:     []string{},
		},
		{
			ID:          "3",
			Title:       "Celebrating small wins today!",
			Content:     "I managed to attend all my classes this week despite feeling really anxious. It might seem small but it's huge for me! 🎉",
			Author:      "Anonymous_Warrior",
			Category:    "Success Stories",
			Replies:     31,
			Likes:       67,
			CreatedAt:   time.Date(2024, time.December, 12, 0, 0, 0, 0, time.UTC),
			IsAnonymous: true,
			LikedBy:     []string{},
		},
	}
}
