package journal

import "time"

// Status is the publication status of an entry
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// AuthorType tells player notes from mentor articles
type AuthorType string

const (
	AuthorPlayer AuthorType = "player"
	AuthorMentor AuthorType = "mentor"
)

// Difficulty is the reading level of an entry
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Completion is how far the player has read an entry
type Completion string

const (
	CompletionUnread     Completion = "unread"
	CompletionInProgress Completion = "in-progress"
	CompletionCompleted  Completion = "completed"
)

// rank orders completion states so they only move forward
func (c Completion) rank() int {
	switch c {
	case CompletionInProgress:
		return 1
	case CompletionCompleted:
		return 2
	default:
		return 0
	}
}

// Subcategory is a second-level journal section
type Subcategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Category is a top-level journal section
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Icon          string        `json:"icon"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

// Entry is a knowledge base article
type Entry struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	Category         string     `json:"category"`
	Subcategory      string     `json:"subcategory,omitempty"`
	Status           Status     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	Tags             []string   `json:"tags"`
	XPReward         int        `json:"xp_reward,omitempty"`
	AuthorType       AuthorType `json:"author_type"`
	AuthorName       string     `json:"author_name"`
	AuthorSprite     string     `json:"author_sprite,omitempty"`
	RelatedSkills    []string   `json:"related_skills,omitempty"`
	Difficulty       Difficulty `json:"difficulty,omitempty"`
	ReadTimeMinutes  int        `json:"read_time_minutes,omitempty"`
	References       []string   `json:"references,omitempty"`
	LastReadByPlayer *time.Time `json:"last_read_by_player,omitempty"`
	CompletionStatus Completion `json:"completion_status"`
}

// Filter narrows a journal listing. Zero fields match everything.
type Filter struct {
	Status      Status     `json:"status,omitempty"`
	Category    string     `json:"category,omitempty"`
	Subcategory string     `json:"subcategory,omitempty"`
	AuthorType  AuthorType `json:"author_type,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	SearchQuery string     `json:"search_query,omitempty"`
}

// ArticleView is an entry with the articles related to it
type ArticleView struct {
	Article         Entry   `json:"article"`
	RelatedArticles []Entry `json:"related_articles"`
	HasBeenRead     bool    `json:"has_been_read"`
}

// Draft is the player-supplied part of a new entry
type Draft struct {
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Category      string     `json:"category"`
	Subcategory   string     `json:"subcategory,omitempty"`
	Tags          []string   `json:"tags"`
	AuthorName    string     `json:"author_name"`
	AuthorSprite  string     `json:"author_sprite,omitempty"`
	RelatedSkills []string   `json:"related_skills,omitempty"`
	Difficulty    Difficulty `json:"difficulty,omitempty"`
}
