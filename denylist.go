package emojidata

// Denylist is a set of top level field names stripped from every record.
type Denylist map[string]struct{}

var defaultDenylist = NewDenylist(
	"text",
	"texts",
	"sort_order",
	"added_in",
	"has_img_apple",
	"has_img_google",
	"has_img_twitter",
	"has_img_facebook",
	"has_img_messenger",
	"non_qualified",
	"docomo",
	"au",
	"softbank",
	"google",
)

func NewDenylist(names ...string) Denylist {
	d := make(Denylist, len(names))
	for _, n := range names {
		d[n] = struct{}{}
	}

	return d
}

// DefaultDenylist returns a copy of the fields that the downstream
// application never reads.
func DefaultDenylist() Denylist {
	return NewDenylist(defaultDenylist.Names()...)
}

func (d Denylist) Contains(name string) bool {
	_, ok := d[name]
	return ok
}

func (d Denylist) Names() []string {
	names := make([]string, 0, len(d))
	for n := range d {
		names = append(names, n)
	}

	return names
}
