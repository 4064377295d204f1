package outline

import (
	"lister-cli/internal/lister"
	"lister-cli/internal/model"
)

// ToTrees converts nested notes to the export shape.
func ToTrees(elems []lister.Element[model.Note]) ([]model.Tree, error) {
	pairs, err := lister.Wrap(elems)
	if err != nil {
		return nil, err
	}
	return pairsToTrees(pairs), nil
}

func pairsToTrees(pairs []lister.Pair[model.Note]) []model.Tree {
	out := make([]model.Tree, 0, len(pairs))
	for _, p := range pairs {
		n := p.Head
		out = append(out, model.Tree{
			ID:       n.ID,
			Title:    n.Title,
			Body:     n.Body,
			Tags:     n.Tags,
			Done:     n.Done,
			Children: pairsToTrees(p.Children),
		})
	}
	return out
}

// FromTrees converts imported trees to outline rows starting at level base.
// Ids are dropped so every imported note is new.
func FromTrees(trees []model.Tree, base int) []model.OutlineRow {
	var out []model.OutlineRow
	var walk func(ts []model.Tree, level int)
	walk = func(ts []model.Tree, level int) {
		for _, t := range ts {
			out = append(out, model.OutlineRow{
				Note:  model.Note{Title: t.Title, Body: t.Body, Tags: t.Tags, Done: t.Done},
				Level: level,
			})
			walk(t.Children, level+1)
		}
	}
	walk(trees, base)
	return out
}
