package layout

import (
	"github.com/alexisbeaulieu97/listkit/internal/divider"
)

// Parallax stacks list cards over each other: every card but the last is
// pulled up by StackHeight, and while scrolling the first visible card
// slides at half speed under the next one.
type Parallax struct {
	StackHeight int
}

// Card is a child with the elevation it is painted at. Higher elevations
// paint later.
type Card struct {
	divider.Child
	Elevation int
}

// ItemOffsets implements ItemDecoration.
func (p Parallax) ItemOffsets(position int, ctx divider.LayoutContext) (divider.Insets, error) {
	if !ctx.Attached() || position == ctx.ItemCount-1 {
		return divider.Insets{}, nil
	}
	return divider.Insets{Bottom: -p.StackHeight}, nil
}

// OnScrolled assigns elevations 1, 6, 11, ... to the children from
// FirstVisible-1 to LastVisible+1, clears the translation of every card after
// the first and moves the first card up by half its top edge.
func (p Parallax) OnScrolled(res Result) []Card {
	cards := make([]Card, 0, len(res.Children))
	if res.FirstVisible < 0 {
		return cards
	}

	index := make(map[int]int, len(res.Children))
	for i, c := range res.Children {
		index[c.Position] = i
		cards = append(cards, Card{Child: c})
	}

	elevation := 1
	for pos := res.FirstVisible - 1; pos <= res.LastVisible+1; pos++ {
		i, ok := index[pos]
		if !ok {
			continue
		}
		cards[i].Elevation = elevation
		elevation += 5
		if pos > res.FirstVisible {
			cards[i].TranslationY = 0
		}
	}

	if i, ok := index[res.FirstVisible]; ok {
		cards[i].TranslationY = -cards[i].Top / 2
	}
	return cards
}

var _ ItemDecoration = Parallax{}
