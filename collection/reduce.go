package collection

import (
	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/ordtree/render"
)

// Action is an update request for a panel state. It is implemented by the
// action types of this package only.
type Action interface {
	isAction()
}

// LoadFiles replaces the files of a panel, keeping the display state of
// entries which are still present.
type LoadFiles struct {
	Files ordtree.Tree[Entry]
}

// ToggleCollapse flips the collapsed flag of a directory.
type ToggleCollapse struct {
	ID string
}

// ToggleSelect flips the selection of an entry and its descendants.
type ToggleSelect struct {
	ID string
}

// SelectAll selects every entry.
type SelectAll struct{}

// UnselectAll clears the selection.
type UnselectAll struct{}

func (LoadFiles) isAction()      {}
func (ToggleCollapse) isAction() {}
func (ToggleSelect) isAction()   {}
func (SelectAll) isAction()      {}
func (UnselectAll) isAction()    {}

// Reduce applies action to state and returns the resulting state. If action
// does not change anything, state itself is returned (see ordtree.Tree.Same).
func Reduce(state PanelState, action Action) PanelState {
	switch a := action.(type) {
	case LoadFiles:
		return MergePanelStates(state, ToPanelState(a.Files))
	case ToggleCollapse:
		return ToggleCollapsed(state, a.ID)
	case ToggleSelect:
		return ToggleSelected(state, a.ID)
	case SelectAll:
		return SetAllSelected(state, true)
	case UnselectAll:
		return SetAllSelected(state, false)
	}
	tracer().Errorf("collection: unknown action %T", action)
	return state
}

// PanelLabel labels panel entries for rendering: directories are shown with a
// trailing slash, files with their size. Collapsed directories hide their
// contents, selected entries are highlighted.
func PanelLabel(node *ordtree.Node[PanelEntry]) render.Label {
	switch v := node.Value.(type) {
	case *PanelDirectory:
		style := render.BranchStyle
		if v.Selected {
			style = render.SelectedStyle
		}
		return render.Label{Text: v.Name + "/", Style: style, Collapsed: v.Collapsed}
	case *PanelFile:
		style := render.LeafStyle
		if v.Selected {
			style = render.SelectedStyle
		}
		return render.Label{Text: v.Name, Note: FormatSize(v.Size), Style: style}
	}
	return render.Label{Text: node.ID}
}
