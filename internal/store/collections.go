package store

// CollectionKind splits the item collections into the two shops. The
// kind is stored on every item row, so checkout resolves an item with a
// single lookup instead of probing each collection in turn.
type CollectionKind string

const (
	KindReview CollectionKind = "review"
	KindBoost  CollectionKind = "boost"
)

// Prefix is the URL segment the shop's routes live under; it doubles as
// the attachment upload folder.
func (k CollectionKind) Prefix() string {
	if k == KindBoost {
		return "social-media-boost"
	}
	return "marketplace-reviews"
}

// Collection describes one sellable item family. All families share the
// lifecycle, the counter protocol, and the list engine; the descriptor
// only decides the route slug and which price fields apply.
type Collection struct {
	Slug string
	Kind CollectionKind
}

// Collections is the full set of item families the API serves.
var Collections = []Collection{
	{Slug: "fiverr", Kind: KindReview},
	{Slug: "upwork", Kind: KindReview},
	{Slug: "kwork", Kind: KindReview},
	{Slug: "google", Kind: KindReview},
	{Slug: "people-per", Kind: KindReview},
	{Slug: "fetchers", Kind: KindReview},
	{Slug: "facebook", Kind: KindBoost},
	{Slug: "youtube", Kind: KindBoost},
	{Slug: "google-ads", Kind: KindBoost},
}

// CollectionBySlug looks up a descriptor by its route slug.
func CollectionBySlug(slug string) (Collection, bool) {
	for _, c := range Collections {
		if c.Slug == slug {
			return c, true
		}
	}
	return Collection{}, false
}
