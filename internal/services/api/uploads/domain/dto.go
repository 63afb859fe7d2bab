package domain

import "stockboard/internal/core/aggregate"

// Mutation actions
const (
	ActionIngest     = "ingest"
	ActionRemoveLast = "remove_last"
	ActionClearAll   = "clear_all"
	ActionHardReset  = "hard_reset"
)

// ViewInput selects an upload; empty means the most recent one
type ViewInput struct {
	Upload string `json:"upload,omitempty" validate:"omitempty,ref" example:"gado"`
}

// ProductsInput selects an upload and one unit of measure
type ProductsInput struct {
	Upload string `json:"upload,omitempty" validate:"omitempty,ref" example:"gado"`
	Unit   string `json:"unit,omitempty" validate:"omitempty,max=64" example:"cabeça"`
}

// PaletteInput asks for n chart colors
type PaletteInput struct {
	N int `json:"n" validate:"min=0,max=1024" example:"5"`
}

// MutationResult reports what a store mutation did
type MutationResult struct {
	Action    string `json:"action" example:"remove_last"`
	Changed   bool   `json:"changed" example:"true"`
	Declined  bool   `json:"declined" example:"false"`
	Remaining int    `json:"remaining" example:"1"`
}

// Summary bundles every read view of one upload
type Summary struct {
	Upload     Info                      `json:"upload"`
	Totals     []aggregate.UnitTotal     `json:"totals"`
	Categories []aggregate.CategoryCount `json:"categories"`
	Units      []string                  `json:"units"`
	Unit       string                    `json:"unit" example:"cabeça"`
	Products   []aggregate.ProductTotal  `json:"products"`
	Palette    []string                  `json:"palette"`
}
