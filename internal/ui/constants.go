// Package ui holds sizing shared by the panels of the player screen.
package ui

const (
	// ScrollMargin keeps this many rows visible around a list cursor.
	ScrollMargin = 2

	// BorderHeight is what a rounded border adds, both across and down.
	BorderHeight = 2

	// PanelOverhead is the border plus a title line and its rule.
	PanelOverhead = BorderHeight + 2

	// WideMinWidth is the narrowest terminal that fits cover and text side by side.
	WideMinWidth = 70
)
