package services

import (
	"path/filepath"
	"strings"

	"github.com/erslice/erslice-cli/internal/core/domain"
)

// StructureService infers a folder hierarchy from a batch of path-like
// filenames and post-optimizes the resulting tree. Like classification,
// structure inference is pure, synchronous and total.
type StructureService struct{}

// NewStructureService creates a new structure service
func NewStructureService() *StructureService {
	return &StructureService{}
}

// Build constructs the folder tree for a batch of filenames. Each filename
// is tokenized into folder names plus a trailing asset stem; folder prefixes
// are materialized exactly once via a path index, so construction stays
// linear in the number of distinct prefixes. Child order follows the first
// occurrence of each prefix across the batch.
func (s *StructureService) Build(filenames []string) *domain.FolderStructure {
	root := &domain.FolderStructure{
		Name: "root",
		Role: domain.RoleModule,
		Path: "",
	}
	index := map[string]*domain.FolderStructure{
		"": root,
	}

	for _, filename := range filenames {
		folders, stem := tokenizePath(filename)

		parent := root
		prefix := ""
		for depth, folder := range folders {
			if prefix == "" {
				prefix = folder
			} else {
				prefix = prefix + "/" + folder
			}

			node, ok := index[prefix]
			if !ok {
				node = newFolderNode(folder, depth, prefix)
				parent.Children = append(parent.Children, node)
				index[prefix] = node
			}
			parent = node
		}

		// Single-segment names land directly on the root.
		if stem != "" {
			parent.Assets = append(parent.Assets, stem)
		}
	}

	return root
}

// Optimize prunes structurally empty nodes bottom-up, then merges sibling
// nodes sharing a (role, state) similarity key. Running it again on its own
// output is a no-op.
func (s *StructureService) Optimize(root *domain.FolderStructure) *domain.FolderStructure {
	s.Prune(root)
	s.Merge(root)
	return root
}

// Prune removes descendants with no children and no assets. Children are
// pruned before their parent is judged, so emptiness propagates upward.
// The root itself is never removed.
func (s *StructureService) Prune(node *domain.FolderStructure) {
	var kept []*domain.FolderStructure
	for _, child := range node.Children {
		s.Prune(child)
		if !child.IsEmpty() {
			kept = append(kept, child)
		}
	}
	node.Children = kept
}

// mergeKey is the sibling similarity key. Nodes without a detected state
// share the "default" bucket, so two semantically distinct default-state
// siblings of the same role do merge; that over-merge is intended behavior.
type mergeKey struct {
	role  domain.NodeRole
	state string
}

// Merge collapses same-key sibling groups into their first member, keeping
// its identity and concatenating the others' children and assets in the
// original sibling order. Concatenated subtrees are merged recursively.
func (s *StructureService) Merge(node *domain.FolderStructure) {
	if len(node.Children) > 1 {
		seen := make(map[mergeKey]*domain.FolderStructure)
		var merged []*domain.FolderStructure

		for _, child := range node.Children {
			key := mergeKey{role: child.Role, state: child.MergeState()}
			if target, ok := seen[key]; ok {
				target.Children = append(target.Children, child.Children...)
				target.Assets = append(target.Assets, child.Assets...)
				continue
			}
			seen[key] = child
			merged = append(merged, child)
		}

		node.Children = merged
	}

	for _, child := range node.Children {
		s.Merge(child)
	}
}

// tokenizePath splits a filename into its folder names and asset stem.
// Slash-delimited paths split on the separator; flat names fall back to the
// underscore convention ("Desktop_UserMgmt_List_Default@2x.png"). Empty
// tokens from doubled or trailing separators are dropped.
func tokenizePath(filename string) (folders []string, stem string) {
	cleaned := strings.ReplaceAll(filename, "\\", "/")

	sep := "_"
	if strings.Contains(cleaned, "/") {
		sep = "/"
	}

	var parts []string
	for _, part := range strings.Split(cleaned, sep) {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return nil, ""
	}

	last := parts[len(parts)-1]
	stem = strings.TrimSuffix(last, filepath.Ext(last))
	return parts[:len(parts)-1], stem
}

// newFolderNode creates a folder node with its role and metadata derived
// from the zero-based depth and name keywords.
func newFolderNode(name string, depth int, path string) *domain.FolderStructure {
	role, meta := classifyFolder(name, depth)
	return &domain.FolderStructure{
		Name:     name,
		Role:     role,
		Path:     path,
		Metadata: meta,
	}
}

// classifyFolder assigns a structural role by depth and enriches metadata
// from name keywords: component hints at page level, interaction states at
// subpage level, complexity and category hints at module level.
func classifyFolder(name string, depth int) (domain.NodeRole, domain.NodeMetadata) {
	lower := strings.ToLower(name)
	meta := domain.NodeMetadata{}

	switch depth {
	case 0:
		meta.Description = name + " module"
		meta.Complexity = moduleComplexity(lower)
		meta.Category = moduleCategory(lower)
		return domain.RoleModule, meta

	case 1:
		meta.Description = name + " page"
		if component := componentType(lower); component != "" {
			meta.ComponentType = component
			meta.Description = name + " " + component
		}
		return domain.RolePage, meta

	case 2:
		meta.Description = name + " subpage"
		if state := subpageState(lower); state != "" {
			meta.State = state
			meta.Description = name + " (" + state + " state)"
		}
		return domain.RoleSubpage, meta

	default:
		meta.Description = name + " asset"
		return domain.RoleAsset, meta
	}
}

func moduleComplexity(lower string) string {
	if strings.Contains(lower, "mgmt") ||
		strings.Contains(lower, "management") ||
		strings.Contains(lower, "admin") {
		return "high"
	}
	return "medium"
}

func moduleCategory(lower string) string {
	if strings.Contains(lower, "system") ||
		strings.Contains(lower, "global") ||
		strings.Contains(lower, "common") ||
		strings.Contains(lower, "shared") {
		return "system"
	}
	return "business"
}

func componentType(lower string) string {
	switch {
	case strings.Contains(lower, "dialog"), strings.Contains(lower, "modal"):
		return "dialog"
	case strings.Contains(lower, "toast"), strings.Contains(lower, "notification"):
		return "toast"
	case strings.Contains(lower, "drawer"), strings.Contains(lower, "sidebar"):
		return "drawer"
	}
	return ""
}

func subpageState(lower string) string {
	switch {
	case strings.Contains(lower, "success"):
		return "success"
	case strings.Contains(lower, "error"), strings.Contains(lower, "fail"):
		return "error"
	case strings.Contains(lower, "loading"):
		return "loading"
	}
	return ""
}
