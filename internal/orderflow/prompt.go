package orderflow

import "github.com/MiguelRM25/v0-cafeteria-system-interface/internal/catalog"

// Prompt is the pending modal the operator must answer before normal
// navigation resumes. Exactly one variant exists per prompt in the flow,
// each carrying only the data it needs, so invalid combinations (a
// cross-sell with no pending category) cannot be represented. A nil Prompt
// means no modal is open.
type Prompt interface {
	isPrompt()
}

// AddMore asks whether the operator wants another item from the top-level
// category they just finished selecting from.
type AddMore struct {
	Category catalog.Category
}

// CrossSell asks whether the operator wants an item from the opposite
// top-level category. Category is the one they finished, not the one being
// offered.
type CrossSell struct {
	Category catalog.Category
}

// Confirm shows the full cart and total before the sale is committed. The
// cart itself is the render data; confirming commits it, cancelling
// returns to the navigation state the prompt was raised from, which the
// prompt never changed.
type Confirm struct{}

// FinalTotal shows the total of the sale that was just committed.
// Dismissing it clears the cart and resets navigation.
type FinalTotal struct {
	Total float64
}

func (AddMore) isPrompt()    {}
func (CrossSell) isPrompt()  {}
func (Confirm) isPrompt()    {}
func (FinalTotal) isPrompt() {}
