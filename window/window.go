// Package window computes which rows of a virtualized grid to render for a
// given scroll position. It is a pure function of its inputs and holds no
// state.
package window

import "math"

// ScrollState is the input to the window calculation. TotalRows is the
// filtered row count, not the raw table size. PinnedTop and PinnedBottom
// (zero when unused) count rows rendered unconditionally at the edges;
// only the middle segment between them scrolls.
type ScrollState struct {
	ScrollTop      float64
	ViewportHeight float64
	RowHeight      float64
	TotalRows      int
	Overscan       int
	PinnedTop      int
	PinnedBottom   int
}

// VirtualSlice is the computed render range. [StartIndex, EndIndex) is the
// scrollable slice to render; the caller additionally renders
// [0, PinnedTop) and [TotalRows-PinnedBottom, TotalRows) itself.
type VirtualSlice struct {
	StartIndex      int
	EndIndex        int
	TotalHeight     float64
	VisibleCount    int
	ScrollableCount int
}

// Compute turns the scroll state into the contiguous index range to render.
func Compute(state ScrollState) VirtualSlice {
	if state.TotalRows == 0 || state.RowHeight <= 0 {
		return VirtualSlice{}
	}

	pinnedTop := max(state.PinnedTop, 0)
	pinnedBottom := max(state.PinnedBottom, 0)
	scrollableCount := max(state.TotalRows-pinnedTop-pinnedBottom, 0)

	totalHeight := float64(state.TotalRows) * state.RowHeight
	visibleCount := int(math.Ceil(state.ViewportHeight / state.RowHeight))

	if scrollableCount == 0 || pinnedTop+pinnedBottom >= state.TotalRows {
		return VirtualSlice{
			StartIndex:      pinnedTop,
			EndIndex:        pinnedTop,
			TotalHeight:     totalHeight,
			VisibleCount:    0,
			ScrollableCount: scrollableCount,
		}
	}

	firstVisibleMiddle := int(math.Floor(max(state.ScrollTop, 0) / state.RowHeight))

	startIndex := pinnedTop + min(max(firstVisibleMiddle-state.Overscan, 0), scrollableCount-1)
	endIndex := min(
		pinnedTop+firstVisibleMiddle+visibleCount+state.Overscan,
		state.TotalRows-pinnedBottom,
	)

	return VirtualSlice{
		StartIndex:      startIndex,
		EndIndex:        endIndex,
		TotalHeight:     totalHeight,
		VisibleCount:    visibleCount,
		ScrollableCount: scrollableCount,
	}
}
