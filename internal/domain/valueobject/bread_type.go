// Package valueobject defines immutable domain values shared across use cases.
package valueobject

// BreadType is the category tag attached to an order item. The set of known
// tags is closed; unrecognized tags pass through as their own display label.
type BreadType string

const (
	BreadTypeFrench     BreadType = "french"
	BreadTypeWholeWheat BreadType = "whole-wheat"
	BreadTypeSpecialty  BreadType = "specialty"
	BreadTypeSweet      BreadType = "sweet"
	BreadTypeSourdough  BreadType = "sourdough"
	BreadTypeBaguette   BreadType = "baguette"
	BreadTypeCroissant  BreadType = "croissant"
	BreadTypeBrioche    BreadType = "brioche"
	BreadTypeRye        BreadType = "rye"
	BreadTypeCiabatta   BreadType = "ciabatta"
	BreadTypeBagel      BreadType = "bagel"
	BreadTypeFocaccia   BreadType = "focaccia"
	BreadTypeCake       BreadType = "cake"
	BreadTypeOther      BreadType = "other"
)

// Label resolves the tag to its display label. Unknown tags are returned
// verbatim so new tags surface in compositions without failing.
func (t BreadType) Label() string {
	switch t {
	case BreadTypeFrench:
		return "French bread"
	case BreadTypeWholeWheat, "wholewheat":
		return "Whole-wheat bread"
	case BreadTypeSpecialty:
		return "Specialty bread"
	case BreadTypeSweet:
		return "Sweet bread"
	case BreadTypeSourdough:
		return "Sourdough"
	case BreadTypeBaguette:
		return "Baguette"
	case BreadTypeCroissant:
		return "Croissant"
	case BreadTypeBrioche:
		return "Brioche"
	case BreadTypeRye:
		return "Rye bread"
	case BreadTypeCiabatta:
		return "Ciabatta"
	case BreadTypeBagel:
		return "Bagel"
	case BreadTypeFocaccia:
		return "Focaccia"
	case BreadTypeCake:
		return "Cake"
	case BreadTypeOther:
		return "Other"
	default:
		return string(t)
	}
}
