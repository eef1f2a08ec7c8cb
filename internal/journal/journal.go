package journal

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"
)

// RelatedLimit is the number of related articles shown with an entry
const RelatedLimit = 3

var (
	ErrEntryNotFound     = errors.New("journal entry not found")
	ErrUnknownCategory   = errors.New("unknown journal category")
	ErrInvalidDraft      = errors.New("invalid journal draft")
	ErrInvalidTransition = errors.New("invalid journal transition")
)

// searchItems implements fuzzy.Source over entry titles and tags
type searchItems []Entry

// Len returns the length of the collection
func (items searchItems) Len() int {
	return len(items)
}

// String returns the searchable string at index i
func (items searchItems) String(i int) string {
	return strings.ToLower(items[i].Title + " " + strings.Join(items[i].Tags, " "))
}

// Journal is the in-game knowledge base. It is safe for concurrent use.
type Journal struct {
	mu         sync.RWMutex
	categories []Category
	entries    []Entry
	now        func() time.Time
}

// New creates a journal over the given categories and entries. Entries
// must reference known categories.
func New(categories []Category, entries []Entry) (*Journal, error) {
	j := &Journal{
		categories: categories,
		entries:    make([]Entry, 0, len(entries)),
		now:        time.Now,
	}

	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.ID == "" || seen[entry.ID] {
			return nil, fmt.Errorf("journal entry %q: missing or duplicate id", entry.ID)
		}
		seen[entry.ID] = true
		if err := j.checkCategory(entry.Category, entry.Subcategory); err != nil {
			return nil, fmt.Errorf("journal entry %q: %w", entry.ID, err)
		}
		if entry.CompletionStatus == "" {
			entry.CompletionStatus = CompletionUnread
		}
		entry.Tags = normalizeTags(entry.Tags)
		j.entries = append(j.entries, entry)
	}

	return j, nil
}

// SetClock replaces the time source used for timestamps
func (j *Journal) SetClock(now func() time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.now = now
}

// Categories returns the journal sections
func (j *Journal) Categories() []Category {
	j.mu.RLock()
	defer j.mu.RUnlock()

	categories := make([]Category, len(j.categories))
	copy(categories, j.categories)
	return categories
}

// Entry returns a copy of the entry with the given id
func (j *Journal) Entry(id string) (Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	i := j.indexOf(id)
	if i < 0 {
		return Entry{}, ErrEntryNotFound
	}
	return cloneEntry(j.entries[i]), nil
}

// Article returns the entry with up to RelatedLimit related published
// entries
func (j *Journal) Article(id string) (ArticleView, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	i := j.indexOf(id)
	if i < 0 {
		return ArticleView{}, ErrEntryNotFound
	}
	article := j.entries[i]

	return ArticleView{
		Article:         cloneEntry(article),
		RelatedArticles: j.related(article, RelatedLimit),
		HasBeenRead:     article.LastReadByPlayer != nil,
	}, nil
}

// List returns the entries matching filter. Without a search query the
// most recently updated entries come first; with one, the best matches do.
func (j *Journal) List(filter Filter) []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	wanted := normalizeTags(filter.Tags)
	matched := make(searchItems, 0, len(j.entries))
	for _, entry := range j.entries {
		if filter.matches(entry, wanted) {
			matched = append(matched, cloneEntry(entry))
		}
	}

	query := strings.ToLower(strings.TrimSpace(filter.SearchQuery))
	if query == "" {
		sort.SliceStable(matched, func(a, b int) bool {
			return matched[a].UpdatedAt.After(matched[b].UpdatedAt)
		})
		return matched
	}

	// Fuzzy results are already sorted by relevance
	results := make([]Entry, 0)
	for _, match := range fuzzy.FindFrom(query, matched) {
		results = append(results, matched[match.Index])
	}
	return results
}

// CreateDraft adds a player-written draft and returns it
func (j *Journal) CreateDraft(draft Draft) (Entry, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return Entry{}, fmt.Errorf("%w: title is required", ErrInvalidDraft)
	}
	if strings.TrimSpace(draft.Content) == "" {
		return Entry{}, fmt.Errorf("%w: content is required", ErrInvalidDraft)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.checkCategory(draft.Category, draft.Subcategory); err != nil {
		return Entry{}, err
	}

	now := j.now()
	entry := Entry{
		ID:               uuid.NewString(),
		Title:            title,
		Content:          draft.Content,
		Category:         draft.Category,
		Subcategory:      draft.Subcategory,
		Status:           StatusDraft,
		CreatedAt:        now,
		UpdatedAt:        now,
		Tags:             normalizeTags(draft.Tags),
		AuthorType:       AuthorPlayer,
		AuthorName:       draft.AuthorName,
		AuthorSprite:     draft.AuthorSprite,
		RelatedSkills:    draft.RelatedSkills,
		Difficulty:       draft.Difficulty,
		ReadTimeMinutes:  readTime(draft.Content),
		CompletionStatus: CompletionUnread,
	}
	j.entries = append(j.entries, entry)

	return cloneEntry(entry), nil
}

// Publish moves a draft to published
func (j *Journal) Publish(id string) (Entry, error) {
	return j.setStatus(id, StatusPublished, StatusDraft)
}

// Archive retires a draft or a published entry
func (j *Journal) Archive(id string) (Entry, error) {
	return j.setStatus(id, StatusArchived, StatusDraft, StatusPublished)
}

func (j *Journal) setStatus(id string, to Status, from ...Status) (Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	i := j.indexOf(id)
	if i < 0 {
		return Entry{}, ErrEntryNotFound
	}

	entry := &j.entries[i]
	allowed := false
	for _, status := range from {
		if entry.Status == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return Entry{}, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, entry.Status, to)
	}

	entry.Status = to
	entry.UpdatedAt = j.now()
	return cloneEntry(*entry), nil
}

// MarkRead records that the player read an entry. Completion only moves
// forward; marking an entry with an earlier status just refreshes the read
// time.
func (j *Journal) MarkRead(id string, completion Completion) (Entry, error) {
	if completion != CompletionInProgress && completion != CompletionCompleted {
		return Entry{}, fmt.Errorf("%w: cannot mark as %q", ErrInvalidTransition, completion)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	i := j.indexOf(id)
	if i < 0 {
		return Entry{}, ErrEntryNotFound
	}

	entry := &j.entries[i]
	now := j.now()
	entry.LastReadByPlayer = &now
	if completion.rank() > entry.CompletionStatus.rank() {
		entry.CompletionStatus = completion
	}
	return cloneEntry(*entry), nil
}

func (j *Journal) indexOf(id string) int {
	for i := range j.entries {
		if j.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (j *Journal) checkCategory(categoryID, subcategoryID string) error {
	for _, category := range j.categories {
		if category.ID != categoryID {
			continue
		}
		if subcategoryID == "" {
			return nil
		}
		for _, sub := range category.Subcategories {
			if sub.ID == subcategoryID {
				return nil
			}
		}
		return fmt.Errorf("%w: %s/%s", ErrUnknownCategory, categoryID, subcategoryID)
	}
	return fmt.Errorf("%w: %s", ErrUnknownCategory, categoryID)
}

// related ranks published entries by shared tags and skills, with a bonus
// for the same category
func (j *Journal) related(article Entry, limit int) []Entry {
	type scored struct {
		entry Entry
		score int
	}

	candidates := make([]scored, 0)
	for _, entry := range j.entries {
		if entry.ID == article.ID || entry.Status != StatusPublished {
			continue
		}
		score := overlap(article.Tags, entry.Tags) + overlap(article.RelatedSkills, entry.RelatedSkills)
		if entry.Category == article.Category {
			score++
		}
		if score > 0 {
			candidates = append(candidates, scored{entry: entry, score: score})
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	related := make([]Entry, 0, limit)
	for _, candidate := range candidates {
		if len(related) == limit {
			break
		}
		related = append(related, cloneEntry(candidate.entry))
	}
	return related
}

func (f Filter) matches(entry Entry, tags []string) bool {
	if f.Status != "" && entry.Status != f.Status {
		return false
	}
	if f.Category != "" && entry.Category != f.Category {
		return false
	}
	if f.Subcategory != "" && entry.Subcategory != f.Subcategory {
		return false
	}
	if f.AuthorType != "" && entry.AuthorType != f.AuthorType {
		return false
	}
	return overlap(tags, entry.Tags) == len(tags)
}

func overlap(a, b []string) int {
	count := 0
	for _, x := range a {
		for _, y := range b {
			if x == y {
				count++
				break
			}
		}
	}
	return count
}

// normalizeTags lowercases, trims and de-duplicates tags
func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		normalized = append(normalized, tag)
	}
	return normalized
}

// readTime estimates reading minutes at 200 words per minute
func readTime(content string) int {
	words := len(strings.Fields(content))
	return (words + 199) / 200
}

func cloneEntry(e Entry) Entry {
	clone := e
	clone.Tags = append(make([]string, 0, len(e.Tags)), e.Tags...)
	clone.RelatedSkills = append([]string(nil), e.RelatedSkills...)
	clone.References = append([]string(nil), e.References...)
	if e.LastReadByPlayer != nil {
		read := *e.LastReadByPlayer
		clone.LastReadByPlayer = &read
	}
	return clone
}
