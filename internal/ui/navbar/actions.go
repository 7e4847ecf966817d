package navbar

import (
	"github.com/llehouerou/capsule/internal/ui/action"
)

// ItemSelected is emitted when the user activates an item. The bar does not
// change its own selection; the host decides and calls SetSelected.
type ItemSelected struct {
	Index int
	Route string
}

// ActionType implements action.Action.
func (a ItemSelected) ActionType() string { return "navbar.item_selected" }

// FabClicked is emitted after the floating action button ran its command.
type FabClicked struct {
	Label string
}

// ActionType implements action.Action.
func (a FabClicked) ActionType() string { return "navbar.fab_clicked" }

// ActionMsg creates an action.Msg for a navbar action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "navbar", Action: a}
}
