// Package divider computes the dividers drawn between the items of a list or
// grid layout.
//
// A Decoration is configured with a Builder. It answers two questions for a
// layout: how much space to reserve around each item (ItemOffsets) and where
// to paint each divider (LinearBounds, GridBounds, Draw). All coordinates are
// terminal cells. Appearance comes from one of three styles: a repeated
// drawable glyph, a stroke centred on the item edge, or a solid color band.
//
// Grid layouts query every provider with the row's group index rather than
// the item position, so a whole row shares one appearance.
package divider
