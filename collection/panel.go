package collection

import (
	"github.com/npillmayer/ordtree"
)

// PanelEntry is an entry of a collection together with its display state in a
// file panel. It is implemented by *PanelDirectory and *PanelFile.
type PanelEntry interface {
	Entry
	IsSelected() bool
	isPanelEntry()
}

// PanelDirectory is a directory entry as displayed in a file panel.
type PanelDirectory struct {
	Directory
	Collapsed bool
	Selected  bool
}

// PanelFile is a file entry as displayed in a file panel.
type PanelFile struct {
	File
	Selected bool
}

func (d *PanelDirectory) IsSelected() bool { return d.Selected }
func (d *PanelDirectory) isPanelEntry()    {}
func (f *PanelFile) IsSelected() bool      { return f.Selected }
func (f *PanelFile) isPanelEntry()         {}

// PanelState is the state of a file panel, a tree of panel entries.
type PanelState = ordtree.Tree[PanelEntry]

// ToPanelState creates the panel state for a file tree. Directories start out
// collapsed, no entry is selected.
func ToPanelState(files ordtree.Tree[Entry]) PanelState {
	return ordtree.Map(files, func(node *ordtree.Node[Entry]) *ordtree.Node[PanelEntry] {
		var value PanelEntry
		switch v := node.Value.(type) {
		case *Directory:
			value = &PanelDirectory{Directory: *v, Collapsed: true}
		case *File:
			value = &PanelFile{File: *v}
		case PanelEntry:
			value = v
		default:
			tracer().Errorf("collection: entry %q has unknown type %T", node.ID, node.Value)
			return nil
		}
		return &ordtree.Node[PanelEntry]{
			ID:       node.ID,
			Parent:   node.Parent,
			Children: node.Children,
			Value:    value,
		}
	})
}

// MergePanelStates carries the display state of oldState over to newState:
// entries of newState which are present in oldState with the same kind keep
// their selection and, for directories, their collapsed flag. The structure
// of the result is that of newState.
func MergePanelStates(oldState, newState PanelState) PanelState {
	return ordtree.MapValues(newState, func(value PanelEntry) PanelEntry {
		prev, ok := oldState.Value(value.EntryID())
		if !ok {
			return value
		}
		switch v := value.(type) {
		case *PanelDirectory:
			if p, ok := prev.(*PanelDirectory); ok {
				d := *v
				d.Collapsed, d.Selected = p.Collapsed, p.Selected
				return &d
			}
		case *PanelFile:
			if p, ok := prev.(*PanelFile); ok {
				f := *v
				f.Selected = p.Selected
				return &f
			}
		}
		return value
	})
}

// ToggleCollapsed flips the collapsed flag of directory id. Unknown ids and
// files leave state unchanged.
func ToggleCollapsed(state PanelState, id string) PanelState {
	value, ok := state.Value(id)
	if !ok {
		return state
	}
	dir, ok := value.(*PanelDirectory)
	if !ok {
		return state
	}
	d := *dir
	d.Collapsed = !d.Collapsed
	return state.SetValue(id, &d)
}

// SetSelected sets the selection of entry id and of all entries below it.
// Afterwards every ancestor of id is selected if and only if all of its
// children are selected. Unknown ids leave state unchanged.
func SetSelected(state PanelState, id string, selected bool) PanelState {
	if !state.Has(id) {
		return state
	}
	b := ordtree.NewBuilder(state)
	ids := append([]string{id}, state.DescendantIDs(id, ordtree.Unlimited)...)
	for _, n := range state.NodesOf(ids) {
		if n.Value.IsSelected() != selected {
			b.Set(withSelected(n, selected))
		}
	}
	tree := b.Tree()
	ancestors := tree.Ancestors(id)
	for i := len(ancestors) - 1; i >= 0; i-- {
		a := ancestors[i]
		all := true
		for _, c := range tree.Children(a.ID) {
			all = all && c.Value.IsSelected()
		}
		if a.Value.IsSelected() != all {
			b.Set(withSelected(a, all))
			tree = b.Tree()
		}
	}
	return tree
}

// ToggleSelected flips the selection of entry id, with the semantics of
// SetSelected.
func ToggleSelected(state PanelState, id string) PanelState {
	value, ok := state.Value(id)
	if !ok {
		return state
	}
	return SetSelected(state, id, !value.IsSelected())
}

// SetAllSelected selects or unselects every entry.
func SetAllSelected(state PanelState, selected bool) PanelState {
	b := ordtree.NewBuilder(state)
	for n := range state.All() {
		if n.Value.IsSelected() != selected {
			b.Set(withSelected(n, selected))
		}
	}
	return b.Tree()
}

// SelectedIDs returns the ids of all selected files, top-down. If withDirs is
// set, selected directories are included.
func SelectedIDs(state PanelState, withDirs bool) []string {
	var ids []string
	for _, n := range state.Descendants(ordtree.RootID, ordtree.Unlimited) {
		if !n.Value.IsSelected() {
			continue
		}
		if n.Value.Kind() == FileKind || withDirs {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

func withSelected(node *ordtree.Node[PanelEntry], selected bool) *ordtree.Node[PanelEntry] {
	var value PanelEntry
	switch v := node.Value.(type) {
	case *PanelDirectory:
		d := *v
		d.Selected = selected
		value = &d
	case *PanelFile:
		f := *v
		f.Selected = selected
		value = &f
	default:
		return node
	}
	return &ordtree.Node[PanelEntry]{
		ID:       node.ID,
		Parent:   node.Parent,
		Children: node.Children,
		Value:    value,
	}
}
