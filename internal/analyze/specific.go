package analyze

import (
	"iter"
	"sort"

	"github.com/ppiankov/teamlens/internal/model"
)

// Specifics returns a lazy sequence of each member's specific themes: the
// themes in that member's top-rate set that appear in no other member's
// top-rate set. Entries are emitted in sorted member order; the theme sets
// come out in vocabulary order.
//
// The union over "all other members" has no identity element to fold from,
// so the zero-others case is handled explicitly: with a single member the
// empty union leaves the member's whole top set as specific.
func Specifics(table model.Table, rate int) (iter.Seq[model.MemberSpecific], error) {
	if rate < 1 {
		return nil, ErrRate
	}

	names := table.Members()

	return func(yield func(model.MemberSpecific) bool) {
		for _, name := range names {
			others := othersUnion(table, names, name, rate)

			own := toSet(firstN(table[name], rate))
			specific := make([]model.Theme, 0, len(own))
			for theme := range own {
				if _, shared := others[theme]; !shared {
					specific = append(specific, theme)
				}
			}
			sortThemes(specific)

			if !yield(model.MemberSpecific{Member: name, Themes: specific}) {
				return
			}
		}
	}, nil
}

// othersUnion collects every theme in the top-rate sets of all members
// except skip. Zero other members yields the empty set.
func othersUnion(table model.Table, names []string, skip string, rate int) map[model.Theme]struct{} {
	union := make(map[model.Theme]struct{})
	for _, name := range names {
		if name == skip {
			continue
		}
		for _, theme := range firstN(table[name], rate) {
			union[theme] = struct{}{}
		}
	}
	return union
}

func sortThemes(themes []model.Theme) {
	sort.Slice(themes, func(i, j int) bool {
		ri, rj := model.ThemeRank(themes[i]), model.ThemeRank(themes[j])
		if ri != rj {
			return ri < rj
		}
		return themes[i] < themes[j]
	})
}
