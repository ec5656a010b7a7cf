package domain

// NodeRole is the structural category of a folder node, assigned from its
// depth in the path and its name keywords.
type NodeRole string

const (
	RoleModule  NodeRole = "module"
	RolePage    NodeRole = "page"
	RoleSubpage NodeRole = "subpage"
	RoleAsset   NodeRole = "asset"
)

// NodeMetadata carries the optional descriptive attributes of a folder node.
// Every field is optional; empty means "not inferred".
type NodeMetadata struct {
	Description   string `json:"description,omitempty"`
	State         string `json:"state,omitempty"`
	Complexity    string `json:"complexity,omitempty"`
	Category      string `json:"category,omitempty"`
	ComponentType string `json:"component_type,omitempty"`
}

// FolderStructure is one node of the inferred folder hierarchy. Children are
// exclusively owned by their parent; Path is the slash-joined ancestor chain
// and is unique across the tree.
type FolderStructure struct {
	Name     string             `json:"name"`
	Role     NodeRole           `json:"role"`
	Path     string             `json:"path"`
	Children []*FolderStructure `json:"children"`
	Assets   []string           `json:"assets"`
	Metadata NodeMetadata       `json:"metadata"`
}

// IsEmpty reports whether the node has neither children nor attached assets,
// which makes it prunable.
func (f *FolderStructure) IsEmpty() bool {
	return len(f.Children) == 0 && len(f.Assets) == 0
}

// MergeState returns the state used as part of the sibling-similarity key.
// Nodes with no detected state merge under "default".
func (f *FolderStructure) MergeState() string {
	if f.Metadata.State == "" {
		return string(StateDefault)
	}
	return f.Metadata.State
}

// CountNodes returns the number of nodes in the subtree, including the
// receiver.
func (f *FolderStructure) CountNodes() int {
	total := 1
	for _, child := range f.Children {
		total += child.CountNodes()
	}
	return total
}

// CountAssets returns the number of assets attached anywhere in the subtree.
func (f *FolderStructure) CountAssets() int {
	total := len(f.Assets)
	for _, child := range f.Children {
		total += child.CountAssets()
	}
	return total
}
