package podcast

import (
	"strings"

	"github.com/samber/lo"
)

// Category files an entry under a term. Scheme, when set, becomes the RSS
// domain attribute; Label, when set, is shown instead of Term.
type Category struct {
	Term   string
	Scheme string
	Label  string
}

func (c Category) text() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Term
}

func validateCategories(cats []Category) error {
	for _, c := range cats {
		if strings.TrimSpace(c.Term) == "" {
			return ErrEmptyCategory
		}
	}
	return nil
}

// ITunesCategory is the directory category of the whole podcast.
type ITunesCategory struct {
	Category    string
	Subcategory string
}

// iTunesCategories maps every top level category to its subcategories.
var iTunesCategories = map[string][]string{
	"Arts": {"Design", "Fashion & Beauty", "Food", "Literature",
		"Performing Arts", "Visual Arts"},
	"Business": {"Business News", "Careers", "Investing",
		"Management & Marketing", "Shopping"},
	"Comedy": {},
	"Education": {"Education", "Education Technology",
		"Higher Education", "K-12", "Language Courses", "Training"},
	"Games & Hobbies": {"Automotive", "Aviation", "Hobbies",
		"Other Games", "Video Games"},
	"Government & Organizations": {"Local", "National", "Non-Profit",
		"Regional"},
	"Health": {"Alternative Health", "Fitness & Nutrition", "Self-Help",
		"Sexuality"},
	"Kids & Family":   {},
	"Music":           {},
	"News & Politics": {},
	"Religion & Spirituality": {"Buddhism", "Christianity", "Hinduism",
		"Islam", "Judaism", "Other", "Spirituality"},
	"Science & Medicine": {"Medicine", "Natural Sciences",
		"Social Sciences"},
	"Society & Culture": {"History", "Personal Journals", "Philosophy",
		"Places & Travel"},
	"Sports & Recreation": {"Amateur", "College & High School",
		"Outdoor", "Professional"},
	"Technology": {"Gadgets", "Tech News", "Podcasting",
		"Software How-To"},
	"TV & Film": {},
}

// NewITunesCategory validates the pair against the iTunes category list.
// subcategory may be empty.
func NewITunesCategory(category, subcategory string) (ITunesCategory, error) {
	subs, ok := iTunesCategories[category]
	if !ok {
		return ITunesCategory{}, ErrInvalidCategory
	}
	if subcategory != "" && !lo.Contains(subs, subcategory) {
		return ITunesCategory{}, ErrInvalidCategory
	}
	return ITunesCategory{Category: category, Subcategory: subcategory}, nil
}
