package window

import "github.com/soettl/fluentui/internal/domain"

// MaterializeRequest is handed to a MaterializeFunc by value, so the override
// cannot change the computed ranges behind the calculator's back.
type MaterializeRequest struct {
	VisibleRange      domain.ItemRange
	MaterializedRange domain.ItemRange
	ItemCount         int
}

// MaterializeResponse optionally replaces the base materialized range and
// names a range that must stay materialized even when scrolled out of view.
type MaterializeResponse struct {
	MaterializedRange *domain.ItemRange
	FocusedRange      *domain.ItemRange
}

// MaterializeFunc is called once per computation
type MaterializeFunc func(MaterializeRequest) MaterializeResponse

// KeepIndexMaterialized keeps the row returned by index mounted. A negative
// index means nothing needs to be kept.
func KeepIndexMaterialized(index func() int) MaterializeFunc {
	return func(req MaterializeRequest) MaterializeResponse {
		i := index()
		if i < 0 || i >= req.ItemCount {
			return MaterializeResponse{}
		}
		focused := domain.ItemRange{Start: i, End: i + 1}
		return MaterializeResponse{FocusedRange: &focused}
	}
}

// KeepRangeMaterialized always keeps r mounted
func KeepRangeMaterialized(r domain.ItemRange) MaterializeFunc {
	return func(MaterializeRequest) MaterializeResponse {
		focused := r
		return MaterializeResponse{FocusedRange: &focused}
	}
}
