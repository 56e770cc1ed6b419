package ast

// OwnerIndex maps each method declaration to the interface, category or
// protocol node that contains it. It is built once per translation unit
// and replaces repeated ancestor walks during code generation.
type OwnerIndex map[*MethodDeclaration]Node

// BuildOwnerIndex walks the translation unit and records the owner of
// every method declaration.
func BuildOwnerIndex(unit *TranslationUnit) OwnerIndex {
	idx := make(OwnerIndex)
	if unit == nil {
		return idx
	}
	for _, decl := range unit.Decls {
		switch d := decl.(type) {
		case *ClassInterface:
			for _, m := range d.Methods {
				idx[m] = d
			}
		case *CategoryInterface:
			for _, m := range d.Methods {
				idx[m] = d
			}
		case *ProtocolDeclaration:
			for _, m := range d.Methods {
				idx[m] = d
			}
		}
	}
	return idx
}

// FindClassImplementation returns the @implementation for the named
// class, or nil when the unit has none.
func FindClassImplementation(unit *TranslationUnit, name string) *ClassImplementation {
	if unit == nil {
		return nil
	}
	for _, decl := range unit.Decls {
		if impl, ok := decl.(*ClassImplementation); ok && impl.Name == name {
			return impl
		}
	}
	return nil
}

// FindCategoryImplementation returns the @implementation for the named
// class/category pair, or nil when the unit has none.
func FindCategoryImplementation(unit *TranslationUnit, className, categoryName string) *CategoryImplementation {
	if unit == nil {
		return nil
	}
	for _, decl := range unit.Decls {
		if impl, ok := decl.(*CategoryImplementation); ok &&
			impl.ClassName == className && impl.CategoryName == categoryName {
			return impl
		}
	}
	return nil
}

// SelectorName returns the selector text used for declaration/definition
// matching: the bare selector name, or the first keyword's label. A
// keyword slot with no explicit label uses its parameter name.
func (s *MethodSelector) SelectorName() string {
	if s == nil {
		return ""
	}
	if len(s.Keywords) == 0 {
		return s.Name
	}
	head := s.Keywords[0]
	if head.Selector != "" {
		return head.Selector
	}
	return head.Param
}
